package validators

import (
	"context"
	"time"

	"github.com/daybook-app/daybook/models"
)

const (
	FieldID        = "id"
	FieldStatus    = "sync_status"
	FieldCreatedAt = "created_at"
	FieldParent    = "parent_id"
	FieldPayload   = "payload"
)

// EnvelopeFields is the scope the push pipeline checks before uploading:
// structural integrity only, no per-collection content rules.
func EnvelopeFields() []string {
	return []string{FieldID, FieldStatus, FieldCreatedAt, FieldParent}
}

// CollectionRecord couples a record with the collection it belongs to; the
// envelope itself does not carry one.
type CollectionRecord struct {
	Collection models.Collection
	Record     models.Record
}

type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.Record:
		return v.validateEnvelope(ctx, *value, fields...)

	case CollectionRecord:
		return v.validateCollectionRecord(ctx, value, fields...)
	case *CollectionRecord:
		return v.validateCollectionRecord(ctx, *value, fields...)

	case models.DeletionLogEntry:
		return v.validateDeletionEntry(ctx, value)
	case *models.DeletionLogEntry:
		return v.validateDeletionEntry(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateEnvelope(_ context.Context, rec models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = EnvelopeFields()
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if rec.ID == "" {
				return ErrInvalidID
			}
		case FieldStatus:
			switch rec.Status {
			case models.StatusCreated, models.StatusUpdated, models.StatusSynced:
			default:
				return ErrInvalidStatus
			}
		case FieldCreatedAt:
			if rec.CreatedAt.IsZero() {
				return ErrMissingCreatedAt
			}
		case FieldParent:
			if rec.ParentID != "" && rec.ParentID == rec.ID {
				return ErrSelfParent
			}
		case FieldPayload:
			// Payload rules need a collection; see CollectionRecord.
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCollectionRecord(ctx context.Context, cr CollectionRecord, fields ...string) error {
	if !cr.Collection.Valid() {
		return ErrInvalidCollection
	}

	if err := v.validateEnvelope(ctx, cr.Record, fields...); err != nil {
		return err
	}

	if len(fields) > 0 && !contains(fields, FieldPayload) {
		return nil
	}

	return v.validatePayload(cr.Collection, cr.Record)
}

func (v *RecordValidator) validatePayload(collection models.Collection, rec models.Record) error {
	switch collection {
	case models.CollectionWallets:
		if str(rec, "name") == "" {
			return ErrEmptyName
		}
		if str(rec, "currency") == "" {
			return ErrEmptyCurrency
		}

	case models.CollectionBudgets:
		if str(rec, "name") == "" {
			return ErrEmptyName
		}
		if limit, ok := rec.Field("limit").(float64); ok && limit < 0 {
			return ErrNegativeLimit
		}

	case models.CollectionTransactions:
		if str(rec, "walletId") == "" {
			return ErrMissingWallet
		}

	case models.CollectionBudgetAssignments:
		if str(rec, "budgetId") == "" {
			return ErrMissingBudget
		}
		if str(rec, "transactionId") == "" {
			return ErrMissingTx
		}

	case models.CollectionBlocks:
		if str(rec, "pageId") == "" {
			return ErrMissingPage
		}
		if str(rec, "kind") == "" {
			return ErrEmptyKind
		}

	case models.CollectionScheduleEvents:
		if str(rec, "title") == "" {
			return ErrEmptyTitle
		}
		if err := validInterval(str(rec, "startsAt"), str(rec, "endsAt")); err != nil {
			return err
		}

	case models.CollectionPages:
		// Untitled pages are allowed; the parent rule already ran in the
		// envelope scope.
	}

	return nil
}

func (v *RecordValidator) validateDeletionEntry(_ context.Context, entry models.DeletionLogEntry) error {
	if !entry.Collection.Valid() {
		return ErrInvalidCollection
	}
	if entry.RecordID == "" {
		return ErrInvalidID
	}
	if entry.Action != models.DeletionAction {
		return ErrInvalidAction
	}
	return nil
}

// validInterval rejects an event whose end precedes its start. Unparseable
// timestamps are left alone: the codec layer owns format errors.
func validInterval(startsAt, endsAt string) error {
	if startsAt == "" || endsAt == "" {
		return nil
	}

	start, err := time.Parse(time.RFC3339Nano, startsAt)
	if err != nil {
		return nil
	}
	end, err := time.Parse(time.RFC3339Nano, endsAt)
	if err != nil {
		return nil
	}

	if end.Before(start) {
		return ErrInvalidInterval
	}
	return nil
}

func str(rec models.Record, field string) string {
	s, _ := rec.Field(field).(string)
	return s
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
