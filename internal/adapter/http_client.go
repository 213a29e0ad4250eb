package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// wireTimeLayout is the timestamp encoding used on the wire.
const wireTimeLayout = time.RFC3339Nano

// longPollWindow is how long one change-feed request hangs on the server
// before returning an empty batch.
const longPollWindow = 25 * time.Second

type upsertRequest struct {
	Rows   []Row `json:"rows"`
	Length int   `json:"length"`
}

type deleteRequest struct {
	IDs    []string `json:"ids"`
	Length int      `json:"length"`
}

type selectResponse struct {
	Rows []Row `json:"rows"`
}

type changeEvent struct {
	Table string `json:"table"`
}

type changesResponse struct {
	Events []changeEvent `json:"events"`
	Cursor string        `json:"cursor"`
}

type httpRemoteStore struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteStore constructs the REST implementation of [RemoteStore]
// against the backend API described by cfg.
func NewHTTPRemoteStore(cfg config.Remote, log *logger.Logger) RemoteStore {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpRemoteStore{
		client: cli,
		logger: log,
		token:  strings.TrimSpace(cfg.AccessToken),
	}
}

// SetToken replaces the bearer token, e.g. after a re-login.
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) currentToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) UpsertBatch(ctx context.Context, table string, rows []Row) error {
	resp, err := h.authedRequest(ctx).
		SetBody(upsertRequest{Rows: rows, Length: len(rows)}).
		Post("/api/sync/" + table + "/upsert")
	if err != nil {
		return fmt.Errorf("upsert request for %s: %w", table, errors.Join(ErrUnavailable, err))
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) DeleteByIDs(ctx context.Context, table string, ids []string) error {
	resp, err := h.authedRequest(ctx).
		SetBody(deleteRequest{IDs: ids, Length: len(ids)}).
		Post("/api/sync/" + table + "/delete")
	if err != nil {
		return fmt.Errorf("delete request for %s: %w", table, errors.Join(ErrUnavailable, err))
	}

	// Ids already gone remotely are a success, not an error.
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) SelectChangedSince(ctx context.Context, table, timestampColumn string, since time.Time) ([]Row, error) {
	var out selectResponse
	resp, err := h.authedRequest(ctx).
		SetQueryParam("ts_column", timestampColumn).
		SetQueryParam("changed_since", since.UTC().Format(wireTimeLayout)).
		SetResult(&out).
		Get("/api/sync/" + table)
	if err != nil {
		return nil, fmt.Errorf("select request for %s: %w", table, errors.Join(ErrUnavailable, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Rows, nil
}

// CurrentIdentity derives the signed-in principal from the bearer token's
// claims. The token is not verified here; the backend rejects forged tokens
// on every call, the client only needs the subject for session tracking.
func (h *httpRemoteStore) CurrentIdentity(_ context.Context) (models.Identity, error) {
	token := h.currentToken()
	if token == "" {
		return models.Identity{}, nil
	}

	identity, err := parseIdentityFromJWT(token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("parse access token: %w", err)
	}

	return identity, nil
}

func (h *httpRemoteStore) SubscribeToChanges(ctx context.Context, tables []string, callback func(table string)) (StopFunc, error) {
	subCtx, cancel := context.WithCancel(ctx)

	watched := make(map[string]struct{}, len(tables))
	for _, table := range tables {
		watched[table] = struct{}{}
	}

	go h.pollChanges(subCtx, watched, callback)

	return StopFunc(cancel), nil
}

// pollChanges long-polls the change feed until ctx is cancelled. Transport
// failures back off for one poll window; the feed is best-effort, so lost
// events are acceptable.
func (h *httpRemoteStore) pollChanges(ctx context.Context, watched map[string]struct{}, callback func(table string)) {
	cursor := ""
	for {
		if ctx.Err() != nil {
			return
		}

		var out changesResponse
		resp, err := h.authedRequest(ctx).
			SetQueryParam("cursor", cursor).
			SetQueryParam("timeout", longPollWindow.String()).
			SetResult(&out).
			Get("/api/sync/changes")
		if err != nil || mapHTTPError(resp) != nil {
			h.logger.Warn().Err(err).Msg("change feed poll failed, backing off")
			select {
			case <-ctx.Done():
				return
			case <-time.After(longPollWindow):
			}
			continue
		}

		cursor = out.Cursor
		for _, event := range out.Events {
			if _, ok := watched[event.Table]; ok {
				callback(event.Table)
			}
		}
	}
}

func (h *httpRemoteStore) Online(ctx context.Context) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health")
	return err == nil && resp.IsSuccess()
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.currentToken(); token != "" {
		req.SetAuthToken(token)
	}

	return req
}

func parseIdentityFromJWT(tokenString string) (models.Identity, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return models.Identity{}, err
	}
	if sub == "" {
		return models.Identity{}, errors.New("token has no subject")
	}

	email, _ := claims["email"].(string)

	return models.Identity{UserID: sub, Email: email}, nil
}
