package models

import "time"

// ShareKey is a share's symmetric key for one rotation, wrapped with the
// user key. Key is base64(nonce || ciphertext).
type ShareKey struct {
	ShareID     string     `json:"share_id"`
	KeyRotation int64      `json:"key_rotation"`
	Key         string     `json:"key"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// LatestShareKey returns the key with the highest rotation and false if keys
// is empty.
func LatestShareKey(keys []ShareKey) (ShareKey, bool) {
	if len(keys) == 0 {
		return ShareKey{}, false
	}

	latest := keys[0]
	for _, k := range keys[1:] {
		if k.KeyRotation > latest.KeyRotation {
			latest = k
		}
	}
	return latest, true
}
