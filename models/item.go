package models

import "time"

// ItemState is the lifecycle state of an item on the server.
type ItemState int

const (
	ItemStateActive ItemState = iota + 1
	ItemStateTrashed
)

// Item is an encrypted item record as returned by the event API. Content and
// ItemKey stay encrypted at rest; decrypting them is not the sync engine's job.
type Item struct {
	ItemID               string     `json:"item_id"`
	ShareID              string     `json:"share_id"`
	Revision             int64      `json:"revision"`
	ContentFormatVersion int64      `json:"content_format_version"`
	KeyRotation          int64      `json:"key_rotation"`
	Content              string     `json:"content"`
	ItemKey              *string    `json:"item_key,omitempty"`
	State                ItemState  `json:"state"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	ModifiedAt           *time.Time `json:"modified_at,omitempty"`
}
