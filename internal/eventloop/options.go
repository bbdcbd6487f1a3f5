package eventloop

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

// DefaultInterval is the period of the loop ticker.
const DefaultInterval = 30 * time.Second

// CursorCommit selects when a batch's cursor is persisted relative to
// applying its items.
type CursorCommit int

const (
	// CommitAfterApply stores the cursor once every change of the batch is
	// applied. An interrupted batch is fetched again on the next pass.
	CommitAfterApply CursorCommit = iota

	// CommitBeforeApply stores the cursor right after the fetch. An
	// interrupted batch is skipped on the next pass.
	CommitBeforeApply
)

func (c CursorCommit) String() string {
	if c == CommitBeforeApply {
		return config.CursorCommitBeforeApply
	}
	return config.CursorCommitAfterApply
}

// ParseCursorCommit maps a config value to a policy. Empty means
// CommitAfterApply.
func ParseCursorCommit(s string) (CursorCommit, error) {
	switch s {
	case "", config.CursorCommitAfterApply:
		return CommitAfterApply, nil
	case config.CursorCommitBeforeApply:
		return CommitBeforeApply, nil
	}
	return CommitAfterApply, fmt.Errorf("unknown cursor commit policy %q", s)
}

// Options tunes a SyncEventLoop. The zero value is usable: every field has a
// default applied by New.
type Options struct {
	// Interval between ticker triggers. Zero means DefaultInterval.
	Interval time.Duration

	// ShareConcurrency is how many shares are drained at once. Values below
	// one mean one.
	ShareConcurrency int

	// CursorCommit orders the cursor write against the batch apply. The
	// default is CommitAfterApply.
	CursorCommit CursorCommit

	// Logger defaults to a no-op logger.
	Logger *logger.Logger
}

// OptionsFromConfig builds Options from the workers section of the client
// config.
func OptionsFromConfig(cfg config.ClientWorkers, log *logger.Logger) (Options, error) {
	commit, err := ParseCursorCommit(cfg.CursorCommit)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Interval:         cfg.SyncInterval,
		ShareConcurrency: cfg.ShareConcurrency,
		CursorCommit:     commit,
		Logger:           log,
	}, nil
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.ShareConcurrency < 1 {
		o.ShareConcurrency = 1
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}
