package models

import "time"

// Share is a remote collection (vault) the user has access to. It is the
// unit of event-cursor tracking and key rotation.
//
// The server is authoritative: the local copy is only ever replaced by a
// re-fetched one, never edited in place.
type Share struct {
	// ShareID is the server-assigned identifier of the share.
	ShareID string `json:"share_id"`

	// VaultID identifies the vault the share points to. Several shares of
	// different users may point to the same vault.
	VaultID string `json:"vault_id"`

	// KeyRotation is the current key-rotation counter of the share.
	KeyRotation int64 `json:"key_rotation"`

	// Owner reports whether the current user owns the vault.
	Owner bool `json:"owner"`

	// Shared reports whether the vault has members other than its owner.
	Shared bool `json:"shared"`

	// Permission is the bitmask of the member's permissions on the share.
	Permission int64 `json:"permission"`

	// TargetMembers is the number of users the vault is shared with.
	TargetMembers int64 `json:"target_members"`

	// CreatedAt is the time the user gained access to the share.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ShareIDs returns the identifiers of shares in order.
func ShareIDs(shares []Share) []string {
	ids := make([]string, 0, len(shares))
	for _, s := range shares {
		ids = append(ids, s.ShareID)
	}
	return ids
}
