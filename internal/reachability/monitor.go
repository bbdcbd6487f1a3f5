// Package reachability watches whether the pass API can be reached from this
// machine by checking it periodically.
package reachability

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
)

var (
	ErrNoPinger        = errors.New("reachability: no pinger configured")
	ErrInvalidInterval = errors.New("reachability: check interval must be positive")
)

// Pinger is the single check the monitor needs. adapter.ServerAdapter
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor checks the API every Interval and reports up/down transitions.
// Until the first check of a run completes the network is assumed reachable.
//
// A Monitor can be started again after Stop or after the context given to
// Start is cancelled; every run begins with an immediate check.
type Monitor struct {
	pinger       Pinger
	interval     time.Duration
	checkTimeout time.Duration
	logger       *logger.Logger

	mu        sync.Mutex
	run       *watchRun
	reachable bool
	subs      map[int]func(bool)
	nextSubID int
}

// watchRun is one lifetime of the check goroutine.
type watchRun struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor creates an idle monitor that checks pinger every interval. A
// zero checkTimeout falls back to interval. Nothing is checked until Start.
func NewMonitor(pinger Pinger, interval, checkTimeout time.Duration, log *logger.Logger) *Monitor {
	if checkTimeout <= 0 {
		checkTimeout = interval
	}
	return &Monitor{
		pinger:       pinger,
		interval:     interval,
		checkTimeout: checkTimeout,
		logger:       log,
		reachable:    true,
		subs:         make(map[int]func(bool)),
	}
}

// Start launches checking bound to ctx. While a run is active later calls
// return nil without doing anything. A run that ended, by Stop or by ctx
// cancellation, is replaced by a fresh one that assumes the network is
// reachable until its first check says otherwise.
//
// Returns [ErrNoPinger] or [ErrInvalidInterval] for a misconfigured monitor.
func (m *Monitor) Start(ctx context.Context) error {
	if m.pinger == nil {
		return ErrNoPinger
	}
	if m.interval <= 0 {
		return ErrInvalidInterval
	}

	m.mu.Lock()
	for m.run != nil {
		current := m.run
		if current.ctx.Err() == nil {
			m.mu.Unlock()
			return nil
		}
		// the run was cancelled from outside and is still unwinding
		m.mu.Unlock()
		<-current.done
		m.mu.Lock()
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &watchRun{ctx: runCtx, cancel: cancel, done: make(chan struct{})}
	m.run = run
	m.mu.Unlock()

	m.set(true)
	go m.checkLoop(run)

	return nil
}

func (m *Monitor) checkLoop(run *watchRun) {
	defer func() {
		m.mu.Lock()
		if m.run == run {
			m.run = nil
		}
		m.mu.Unlock()
		close(run.done)
	}()

	t := time.NewTicker(m.interval)
	defer t.Stop()

	m.check(run.ctx)
	for {
		select {
		case <-run.ctx.Done():
			return
		case <-t.C:
			m.check(run.ctx)
		}
	}
}

// Stop ends checking and waits for the check goroutine to exit. Safe to call
// when the monitor was never started; the monitor may be started again.
func (m *Monitor) Stop() {
	m.mu.Lock()
	run := m.run
	m.mu.Unlock()

	if run == nil {
		return
	}
	run.cancel()
	<-run.done
}

// IsReachable reports the result of the latest check, or true when the
// current run has not checked yet.
func (m *Monitor) IsReachable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reachable
}

// Subscribe registers fn for reachability transitions. fn runs on the check
// goroutine and must not block.
func (m *Monitor) Subscribe(fn func(reachable bool)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *Monitor) check(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, m.checkTimeout)
	err := m.pinger.Ping(pctx)
	cancel()

	// a check cut short by Stop says nothing about the network
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		m.logger.Debug().Err(err).Msg("reachability check failed")
	}
	m.set(err == nil)
}

func (m *Monitor) set(reachable bool) {
	m.mu.Lock()
	if m.reachable == reachable {
		m.mu.Unlock()
		return
	}
	m.reachable = reachable
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.logger.Info().Bool("reachable", reachable).Msg("network reachability changed")
	for _, fn := range subs {
		fn(reachable)
	}
}
