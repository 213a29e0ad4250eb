package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from a JSON string such as
// "30s" or "5m".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for the "1h30m" string form.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-encoded durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		Backend        string   `json:"backend"`
		BaseURL        string   `json:"base_url"`
		AccessToken    string   `json:"access_token"`
		DSN            string   `json:"dsn"`
		UserID         string   `json:"user_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		Interval  Duration `json:"interval"`
		Debounce  Duration `json:"debounce"`
		ChunkSize int      `json:"chunk_size"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Remote: Remote{
			Backend:        jsonCfg.Remote.Backend,
			BaseURL:        jsonCfg.Remote.BaseURL,
			AccessToken:    jsonCfg.Remote.AccessToken,
			DSN:            jsonCfg.Remote.DSN,
			UserID:         jsonCfg.Remote.UserID,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			Interval:  time.Duration(jsonCfg.Sync.Interval),
			Debounce:  time.Duration(jsonCfg.Sync.Debounce),
			ChunkSize: jsonCfg.Sync.ChunkSize,
		},
	}

	return cfg, nil
}
