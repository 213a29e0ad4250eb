package service

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/internal/store"
	"github.com/daybook-app/daybook/internal/utils"
	"github.com/daybook-app/daybook/internal/validators"
	"github.com/daybook-app/daybook/models"
)

// recordsService is the local write path. Every mutation leaves the record
// in a state the sync engine can pick up: creates and updates carry a dirty
// status, deletes enqueue a deletion log entry in the same transaction as
// the local removal.
type recordsService struct {
	replica   store.Replica
	validator validators.Validator
	uuid      *utils.UUIDGenerator
	logger    *logger.Logger

	now func() time.Time
}

func NewRecordsService(replica store.Replica, log *logger.Logger) Records {
	return &recordsService{
		replica:   replica,
		validator: validators.NewRecordValidator(),
		uuid:      utils.NewUUIDGenerator(),
		logger:    log,
		now:       time.Now,
	}
}

// Create implements Records. A missing id gets a fresh UUIDv7; the record is
// stored with StatusCreated regardless of what the caller set.
func (s *recordsService) Create(ctx context.Context, collection models.Collection, rec models.Record) (models.Record, error) {
	if rec.ID == "" {
		rec.ID = s.uuid.Generate()
	}

	now := s.now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Status = models.StatusCreated

	if err := s.validate(ctx, collection, rec); err != nil {
		return models.Record{}, err
	}

	if err := s.replica.Put(ctx, collection, rec); err != nil {
		return models.Record{}, fmt.Errorf("store new record: %w", err)
	}

	return rec, nil
}

// Update implements Records. A record that was never pushed keeps
// StatusCreated so the remote sees a single create, not a create followed by
// an update of something it does not have yet.
func (s *recordsService) Update(ctx context.Context, collection models.Collection, rec models.Record) (models.Record, error) {
	current, err := s.replica.Get(ctx, collection, rec.ID)
	if err != nil {
		return models.Record{}, fmt.Errorf("load current record: %w", err)
	}

	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = s.now().UTC()
	if current.Status == models.StatusCreated {
		rec.Status = models.StatusCreated
	} else {
		rec.Status = models.StatusUpdated
	}

	if err = s.validate(ctx, collection, rec); err != nil {
		return models.Record{}, err
	}

	if err = s.replica.Put(ctx, collection, rec); err != nil {
		return models.Record{}, fmt.Errorf("store updated record: %w", err)
	}

	return rec, nil
}

// Delete implements Records.
func (s *recordsService) Delete(ctx context.Context, collection models.Collection, id string) error {
	if !collection.Valid() {
		return validators.ErrInvalidCollection
	}
	if id == "" {
		return validators.ErrInvalidID
	}

	if err := s.replica.DeleteAndLog(ctx, collection, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}

// Get implements Records.
func (s *recordsService) Get(ctx context.Context, collection models.Collection, id string) (models.Record, error) {
	return s.replica.Get(ctx, collection, id)
}

// List implements Records.
func (s *recordsService) List(ctx context.Context, collection models.Collection, field, value string) ([]models.Record, error) {
	return s.replica.QueryByField(ctx, collection, field, value)
}

func (s *recordsService) validate(ctx context.Context, collection models.Collection, rec models.Record) error {
	err := s.validator.Validate(ctx, validators.CollectionRecord{Collection: collection, Record: rec})
	if err != nil {
		return fmt.Errorf("validate %s record: %w", collection, err)
	}
	return nil
}
