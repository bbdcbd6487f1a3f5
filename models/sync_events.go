package models

// SyncEvents is one page of changes for a share since a given event id.
// It is transient: consumed once by the sync loop and never persisted.
type SyncEvents struct {
	// LatestEventID is the cursor value to use for the next request.
	LatestEventID string `json:"latest_event_id"`

	// EventsPending is true when the server holds more events after
	// LatestEventID.
	EventsPending bool `json:"events_pending"`

	// NewRotationID is set when the share's key was rotated.
	NewRotationID *string `json:"new_rotation_id,omitempty"`

	UpdatedItems   []Item   `json:"updated_items"`
	DeletedItemIDs []string `json:"deleted_item_ids"`
}

// HasNewRotation reports whether the batch carries a non-empty rotation id.
func (e SyncEvents) HasNewRotation() bool {
	return e.NewRotationID != nil && *e.NewRotationID != ""
}
