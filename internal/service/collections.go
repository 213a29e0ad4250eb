// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/adapter"
	"github.com/daybook-app/daybook/models"
)

// wireTimeLayout is the ISO-8601 encoding used for timestamps on the wire.
const wireTimeLayout = time.RFC3339Nano

var errRowWithoutID = errors.New("remote row has no id")

// collectionCodec pairs one collection with its remote table and the
// explicit bidirectional field mapping between local and remote naming.
// One codec per collection keeps dispatch typed; the engine never indexes
// tables by free-form strings.
type collectionCodec struct {
	collection models.Collection

	// remoteTable is the backend table the collection syncs against.
	remoteTable string

	// timestampColumn orders changed-since queries. Collections without a
	// meaningful update timestamp use created_at as their change marker.
	timestampColumn string

	toRemote   func(rec models.Record, ownerID string) adapter.Row
	fromRemote func(row adapter.Row) (models.Record, error)
}

// syncCodecs returns every codec in the fixed dependency order: independent
// parents first, dependents after the collections they reference, fully
// independent collections last.
func syncCodecs() []collectionCodec {
	return []collectionCodec{
		{
			collection:      models.CollectionWallets,
			remoteTable:     "wallets",
			timestampColumn: "updated_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				row["name"] = rec.Field("name")
				row["currency"] = rec.Field("currency")
				row["balance"] = rec.Field("balance")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.Fields = map[string]any{
					"name":     rowString(row, "name"),
					"currency": rowString(row, "currency"),
					"balance":  rowFloat(row, "balance"),
				}
				return rec, nil
			},
		},
		{
			collection:      models.CollectionBudgets,
			remoteTable:     "budgets",
			timestampColumn: "updated_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				row["name"] = rec.Field("name")
				row["spending_limit"] = rec.Field("limit")
				row["period_end"] = rec.Field("periodEnd")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.Fields = map[string]any{
					"name":      rowString(row, "name"),
					"limit":     rowFloat(row, "spending_limit"),
					"periodEnd": rowString(row, "period_end"),
				}
				return rec, nil
			},
		},
		{
			collection:      models.CollectionTransactions,
			remoteTable:     "transactions",
			timestampColumn: "updated_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				row["wallet_id"] = rec.Field("walletId")
				row["category"] = rec.Field("category")
				row["note"] = rec.Field("note")
				row["amount"] = rec.Field("amount")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.Fields = map[string]any{
					"walletId": rowString(row, "wallet_id"),
					"category": rowString(row, "category"),
					"note":     rowString(row, "note"),
					"amount":   rowFloat(row, "amount"),
				}
				return rec, nil
			},
		},
		{
			collection:      models.CollectionBudgetAssignments,
			remoteTable:     "budget_assignments",
			timestampColumn: "updated_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				row["budget_id"] = rec.Field("budgetId")
				row["transaction_id"] = rec.Field("transactionId")
				row["amount"] = rec.Field("amount")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.Fields = map[string]any{
					"budgetId":      rowString(row, "budget_id"),
					"transactionId": rowString(row, "transaction_id"),
					"amount":        rowFloat(row, "amount"),
				}
				return rec, nil
			},
		},
		{
			collection:      models.CollectionPages,
			remoteTable:     "pages",
			timestampColumn: "updated_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				row["parent_page_id"] = nullableString(rec.ParentID)
				row["title"] = rec.Field("title")
				row["icon"] = rec.Field("icon")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.ParentID = rowString(row, "parent_page_id")
				rec.Fields = map[string]any{
					"title": rowString(row, "title"),
					"icon":  rowString(row, "icon"),
				}
				return rec, nil
			},
		},
		{
			collection:      models.CollectionBlocks,
			remoteTable:     "blocks",
			timestampColumn: "updated_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				row["page_id"] = rec.Field("pageId")
				row["kind"] = rec.Field("kind")
				row["content"] = rec.Field("content")
				row["position"] = rec.Field("position")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.Fields = map[string]any{
					"pageId":   rowString(row, "page_id"),
					"kind":     rowString(row, "kind"),
					"content":  rowString(row, "content"),
					"position": rowFloat(row, "position"),
				}
				return rec, nil
			},
		},
		{
			collection: models.CollectionScheduleEvents,
			// Schedule events are immutable once written, so created_at is
			// their change marker and no updated_at column exists remotely.
			remoteTable:     "schedule_events",
			timestampColumn: "created_at",
			toRemote: func(rec models.Record, ownerID string) adapter.Row {
				row := envelopeToRow(rec, ownerID)
				delete(row, "updated_at")
				row["title"] = rec.Field("title")
				row["starts_at"] = rec.Field("startsAt")
				row["ends_at"] = rec.Field("endsAt")
				row["all_day"] = rec.Field("allDay")
				return row
			},
			fromRemote: func(row adapter.Row) (models.Record, error) {
				rec, err := envelopeFromRow(row)
				if err != nil {
					return models.Record{}, err
				}
				rec.Fields = map[string]any{
					"title":    rowString(row, "title"),
					"startsAt": rowString(row, "starts_at"),
					"endsAt":   rowString(row, "ends_at"),
					"allDay":   rowBool(row, "all_day"),
				}
				return rec, nil
			},
		},
	}
}

// codecFor looks a codec up by collection.
func codecFor(collection models.Collection) (collectionCodec, bool) {
	for _, codec := range syncCodecs() {
		if codec.collection == collection {
			return codec, true
		}
	}
	return collectionCodec{}, false
}

// remoteTables lists every mapped backend table, in sync order. The change
// trigger subscribes to exactly this set.
func remoteTables() []string {
	codecs := syncCodecs()
	tables := make([]string, 0, len(codecs))
	for _, codec := range codecs {
		tables = append(tables, codec.remoteTable)
	}
	return tables
}

// collectionForTable resolves a backend table name back to its collection.
func collectionForTable(table string) (models.Collection, bool) {
	for _, codec := range syncCodecs() {
		if codec.remoteTable == table {
			return codec.collection, true
		}
	}
	return "", false
}

// envelopeToRow maps the record envelope to remote columns. The identity
// owner's id is injected when the record does not carry one.
func envelopeToRow(rec models.Record, ownerID string) adapter.Row {
	owner := rec.OwnerID
	if owner == "" {
		owner = ownerID
	}

	return adapter.Row{
		"id":         rec.ID,
		"user_id":    owner,
		"created_at": rec.CreatedAt.UTC().Format(wireTimeLayout),
		"updated_at": rec.ChangedAt().UTC().Format(wireTimeLayout),
	}
}

// envelopeFromRow maps remote envelope columns back to a Record. The caller
// fills Fields; the pull pipeline forces Status afterwards.
func envelopeFromRow(row adapter.Row) (models.Record, error) {
	id := rowString(row, "id")
	if id == "" {
		return models.Record{}, errRowWithoutID
	}

	createdAt, err := rowTime(row, "created_at")
	if err != nil {
		return models.Record{}, fmt.Errorf("row %s: %w", id, err)
	}

	updatedAt := createdAt
	if _, ok := row["updated_at"]; ok {
		if updatedAt, err = rowTime(row, "updated_at"); err != nil {
			return models.Record{}, fmt.Errorf("row %s: %w", id, err)
		}
	}

	return models.Record{
		ID:        id,
		OwnerID:   rowString(row, "user_id"),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func rowString(row adapter.Row, column string) string {
	if v, ok := row[column].(string); ok {
		return v
	}
	return ""
}

func rowFloat(row adapter.Row, column string) float64 {
	switch v := row[column].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func rowBool(row adapter.Row, column string) bool {
	v, _ := row[column].(bool)
	return v
}

func rowTime(row adapter.Row, column string) (time.Time, error) {
	raw, ok := row[column].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("column %s is not a timestamp string", column)
	}

	ts, err := time.Parse(wireTimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", column, err)
	}

	return ts, nil
}
