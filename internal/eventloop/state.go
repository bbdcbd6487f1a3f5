package eventloop

import (
	"context"
	"sync"
)

// pass is the handle of an in-flight reconciliation pass.
type pass struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newPass(parent context.Context, id string) *pass {
	ctx, cancel := context.WithCancel(parent)
	return &pass{id: id, ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

// loopState is owned by one SyncEventLoop. All fields are guarded by mu.
type loopState struct {
	mu sync.Mutex

	running    bool
	loopCtx    context.Context
	cancelLoop context.CancelFunc

	ongoing *pass

	reachabilityReady bool
	lastReachability  bool
}

// tryBegin installs p as the ongoing pass unless one is already in flight.
func (s *loopState) tryBegin(p *pass) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ongoing != nil {
		return false
	}
	s.ongoing = p
	return true
}

// finish clears the ongoing handle if it is still p.
func (s *loopState) finish(p *pass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ongoing == p {
		s.ongoing = nil
	}
}

func (s *loopState) current() *pass {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ongoing
}

// parent returns the context new passes derive from: the loop context while
// running, otherwise a background context so ForceSync works before Start.
func (s *loopState) parent() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && s.loopCtx != nil {
		return s.loopCtx
	}
	return context.Background()
}

func (s *loopState) setReachable(v bool) (changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed = s.lastReachability != v
	s.lastReachability = v
	return changed
}
