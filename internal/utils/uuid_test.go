package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassIDs_NextIsV7(t *testing.T) {
	ids := NewPassIDs()

	id := ids.Next()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, ids.Next())
}

func TestPassIDs_OrderedByStart(t *testing.T) {
	ids := NewPassIDs()

	first := ids.Next()
	time.Sleep(2 * time.Millisecond)
	second := ids.Next()

	assert.Less(t, first, second)
}

func TestPassStartedAt(t *testing.T) {
	before := time.Now().Truncate(time.Millisecond)
	id := NewPassIDs().Next()
	after := time.Now()

	started, ok := PassStartedAt(id)
	require.True(t, ok)
	assert.False(t, started.Before(before), "started %v before %v", started, before)
	assert.False(t, started.After(after), "started %v after %v", started, after)

	tests := []struct {
		name string
		id   string
	}{
		{name: "malformed", id: "not-a-uuid"},
		{name: "v4", id: uuid.NewString()},
		{name: "empty", id: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := PassStartedAt(tt.id)
			assert.False(t, ok)
		})
	}
}
