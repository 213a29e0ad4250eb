package models

import "time"

// DeletionAction is the only action the deletion log queues. Creates and
// updates are discoverable through SyncStatus on the record itself; only a
// deletion leaves no record behind to carry a marker.
const DeletionAction = "delete"

// DeletionLogEntry records the intent to delete a remote record whose local
// copy is already gone. Entries are written in the same transaction as the
// local delete and removed only after the remote delete is confirmed.
type DeletionLogEntry struct {
	Collection Collection `json:"collection"`
	RecordID   string     `json:"record_id"`
	Action     string     `json:"action"`
	CreatedAt  time.Time  `json:"created_at"`
}
