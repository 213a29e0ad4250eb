package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// changeChannel is the NOTIFY channel backend triggers publish table names on.
const changeChannel = "daybook_changes"

// reconnectDelay paces LISTEN reconnect attempts after a dropped connection.
const reconnectDelay = 5 * time.Second

type pgRemoteStore struct {
	db     *sql.DB
	dsn    string
	userID string
	logger *logger.Logger
}

// NewPostgresRemoteStore constructs the direct-PostgreSQL implementation of
// [RemoteStore]. The connection is opened lazily; an unreachable backend at
// startup is normal for a device-side client, Online gates every sync cycle.
func NewPostgresRemoteStore(cfg config.Remote, log *logger.Logger) (RemoteStore, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open remote postgres: %w", err)
	}

	db.SetMaxOpenConns(4)

	return &pgRemoteStore{
		db:     db,
		dsn:    cfg.DSN,
		userID: cfg.UserID,
		logger: log,
	}, nil
}

func (p *pgRemoteStore) UpsertBatch(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	columns := collectColumns(rows)

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(pgx.Identifier{table}.Sanitize())
	sb.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pgx.Identifier{col}.Sanitize())
	}
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j, col := range columns {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", len(args)+1)
			args = append(args, row[col])
		}
		sb.WriteString(")")
	}

	sb.WriteString(" ON CONFLICT (id) DO UPDATE SET ")
	first := true
	for _, col := range columns {
		if col == "id" {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		quoted := pgx.Identifier{col}.Sanitize()
		sb.WriteString(quoted)
		sb.WriteString(" = excluded.")
		sb.WriteString(quoted)
	}

	if _, err := p.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("upsert batch into %s: %w", table, mapPgError(err))
	}

	return nil
}

func (p *pgRemoteStore) DeleteByIDs(ctx context.Context, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	// DELETE of absent ids affects zero rows, which is the idempotent
	// success the deletion log relies on.
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ANY($1)", pgx.Identifier{table}.Sanitize())
	if _, err := p.db.ExecContext(ctx, query, ids); err != nil {
		return fmt.Errorf("delete from %s: %w", table, mapPgError(err))
	}

	return nil
}

func (p *pgRemoteStore) SelectChangedSince(ctx context.Context, table, timestampColumn string, since time.Time) ([]Row, error) {
	query := fmt.Sprintf(
		"SELECT row_to_json(t)::text FROM %s t WHERE %s > $1 ORDER BY %s",
		pgx.Identifier{table}.Sanitize(),
		pgx.Identifier{timestampColumn}.Sanitize(),
		pgx.Identifier{timestampColumn}.Sanitize(),
	)

	rows, err := p.db.QueryContext(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("select changed from %s: %w", table, mapPgError(err))
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan changed row from %s: %w", table, err)
		}
		var row Row
		if err = json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("decode changed row from %s: %w", table, err)
		}
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate changed rows from %s: %w", table, mapPgError(err))
	}

	return out, nil
}

// CurrentIdentity returns the identity configured for this device. The
// direct-database backend has no token to derive it from.
func (p *pgRemoteStore) CurrentIdentity(_ context.Context) (models.Identity, error) {
	return models.Identity{UserID: p.userID}, nil
}

func (p *pgRemoteStore) SubscribeToChanges(ctx context.Context, tables []string, callback func(table string)) (StopFunc, error) {
	subCtx, cancel := context.WithCancel(ctx)

	watched := make(map[string]struct{}, len(tables))
	for _, table := range tables {
		watched[table] = struct{}{}
	}

	go p.listenLoop(subCtx, watched, callback)

	return StopFunc(cancel), nil
}

// listenLoop holds a dedicated LISTEN connection and reconnects on failure
// until ctx is cancelled. Notifications carry the changed table name as
// payload.
func (p *pgRemoteStore) listenLoop(ctx context.Context, watched map[string]struct{}, callback func(table string)) {
	for {
		if ctx.Err() != nil {
			return
		}

		if err := p.listenOnce(ctx, watched, callback); err != nil && ctx.Err() == nil {
			p.logger.Warn().Err(err).Msg("change listener disconnected, reconnecting")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (p *pgRemoteStore) listenOnce(ctx context.Context, watched map[string]struct{}, callback func(table string)) error {
	conn, err := pgx.Connect(ctx, p.dsn)
	if err != nil {
		return fmt.Errorf("connect listener: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err = conn.Exec(ctx, "LISTEN "+changeChannel); err != nil {
		return fmt.Errorf("listen on %s: %w", changeChannel, err)
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		if _, ok := watched[notification.Payload]; ok {
			callback(notification.Payload)
		}
	}
}

func (p *pgRemoteStore) Online(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.db.PingContext(pingCtx) == nil
}

// collectColumns returns the sorted union of keys across rows, so every row
// binds the same parameter set even when optional columns are missing.
func collectColumns(rows []Row) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		for col := range row {
			set[col] = struct{}{}
		}
	}

	columns := make([]string, 0, len(set))
	for col := range set {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	return columns
}
