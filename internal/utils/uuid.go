package utils

import (
	"time"

	"github.com/google/uuid"
)

// PassIDs issues sync pass identifiers. They are UUIDv7 values, so string
// order follows start order and the creation time can be read back with
// [PassStartedAt].
type PassIDs struct{}

func NewPassIDs() *PassIDs {
	return &PassIDs{}
}

// Next returns a fresh pass id. When the v7 clock sequence cannot be read it
// falls back to a random v4 id, which stays unique but carries no time.
func (PassIDs) Next() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// PassStartedAt returns the millisecond timestamp embedded in a v7 pass id.
// ok is false for malformed ids and for ids of any other version.
func PassStartedAt(id string) (started time.Time, ok bool) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 7 {
		return time.Time{}, false
	}

	sec, nsec := parsed.Time().UnixTime()
	return time.Unix(sec, nsec), true
}
