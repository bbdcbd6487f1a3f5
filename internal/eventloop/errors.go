package eventloop

import (
	"errors"
	"fmt"
)

var (
	// ErrLoopAlreadyStarted is returned by Start when the loop is running.
	// Call Stop first.
	ErrLoopAlreadyStarted = errors.New("sync event loop already started")

	// ErrCursorDidNotAdvance is returned when the server reports pending
	// events but hands back the cursor it was asked with.
	ErrCursorDidNotAdvance = errors.New("events pending but cursor did not advance")
)

// Stage names the step of a pass that failed.
type Stage string

const (
	StageReachability Stage = "reachability"
	StageShares       Stage = "shares"
	StageKeys         Stage = "keys"
	StageEvents       Stage = "events"
	StageCursor       Stage = "cursor"
	StageItems        Stage = "items"
)

// PassError wraps a collaborator error with the stage and share it happened
// at. Use errors.As to inspect it and errors.Is for the wrapped sentinel.
type PassError struct {
	Stage   Stage
	ShareID string
	Err     error
}

func (e *PassError) Error() string {
	if e.ShareID == "" {
		return fmt.Sprintf("sync %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("sync %s of share %s: %v", e.Stage, e.ShareID, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, shareID string, err error) error {
	if err == nil {
		return nil
	}
	return &PassError{Stage: stage, ShareID: shareID, Err: err}
}
