package models

import "time"

// SyncStatus tracks whether a record's current local content has been
// confirmed persisted on the remote side.
//
// The local replica is the sole owner of this flag; the remote store never
// stores it. Repositories set it to StatusCreated/StatusUpdated on every
// local mutation, the sync engine flips it to StatusSynced after a confirmed
// push and forces it to StatusSynced on every pulled record.
type SyncStatus string

const (
	// StatusCreated marks a record that has never been accepted remotely.
	StatusCreated SyncStatus = "created"

	// StatusUpdated marks a record that was synced at least once and then
	// mutated locally.
	StatusUpdated SyncStatus = "updated"

	// StatusSynced marks a record whose current local content matches what
	// the remote store last confirmed.
	StatusSynced SyncStatus = "synced"
)

// Dirty reports whether the record still has local changes the remote side
// has not confirmed.
func (s SyncStatus) Dirty() bool {
	return s == StatusCreated || s == StatusUpdated
}

// Record is the storage envelope every synchronizable entity travels in.
// Typed entities (Wallet, Page, ...) encode into and decode from it; the
// sync engine and the local replica only ever see this envelope.
//
// Fields holds the entity's domain payload under local field names. The
// engine never touches Fields except to translate them for the remote store;
// it only reads and flips Status.
type Record struct {
	// ID is the stable, client-generated identifier (UUIDv7).
	ID string `json:"id"`

	// ParentID is an optional same-collection parent reference.
	// Only pages use it; empty for every other collection.
	ParentID string `json:"parent_id,omitempty"`

	// OwnerID attributes the record to an authenticated identity. May be
	// empty locally; the push pipeline injects the current identity when
	// uploading.
	OwnerID string `json:"owner_id,omitempty"`

	Status SyncStatus `json:"sync_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fields map[string]any `json:"fields,omitempty"`
}

// Dirty reports whether the record needs to be pushed.
func (r Record) Dirty() bool {
	return r.Status.Dirty()
}

// ChangedAt returns the timestamp that orders this record in change queries.
// Entities without a meaningful update timestamp fall back to CreatedAt.
func (r Record) ChangedAt() time.Time {
	if r.UpdatedAt.IsZero() {
		return r.CreatedAt
	}
	return r.UpdatedAt
}

// Field returns the named domain payload value, or nil if absent.
func (r Record) Field(name string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[name]
}
