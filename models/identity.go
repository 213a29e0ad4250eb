package models

// Identity is the authenticated principal the remote store resolves for the
// device. The orchestrator compares UserID against the last-synced identity
// to detect account switches.
type Identity struct {
	// UserID is the backend's stable identifier for the authenticated user.
	UserID string `json:"user_id"`

	// Email is informational only; never used for identity comparison.
	Email string `json:"email,omitempty"`
}

// Zero reports whether no identity is resolvable (signed out).
func (i Identity) Zero() bool {
	return i.UserID == ""
}
