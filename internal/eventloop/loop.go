package eventloop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
)

// SyncEventLoop periodically reconciles the local replica of one user with
// the server. Create it with New.
type SyncEventLoop struct {
	userID string
	c      Collaborators
	opts   Options
	logger *logger.Logger
	ids    *utils.PassIDs

	state loopState

	observers     registry[Observer]
	pullToRefresh registry[PullToRefreshObserver]

	reachMu          sync.Mutex
	unsubscribeReach func()

	tickerWG sync.WaitGroup
}

// New creates a SyncEventLoop for userID on top of the given collaborators.
// Zero fields of opts take their defaults. The loop is idle until Start is
// called; observers may be registered before that.
func New(userID string, c Collaborators, opts Options) *SyncEventLoop {
	opts = opts.withDefaults()

	return &SyncEventLoop{
		userID: userID,
		c:      c,
		opts:   opts,
		logger: &logger.Logger{Logger: opts.Logger.With().Str("user_id", userID).Logger()},
		ids:    utils.NewPassIDs(),
	}
}

// Subscribe registers o for loop events. The returned func unsubscribes.
func (l *SyncEventLoop) Subscribe(o Observer) (unsubscribe func()) {
	return l.observers.add(o)
}

// SubscribePullToRefresh registers o for spinner-stop notifications.
func (l *SyncEventLoop) SubscribePullToRefresh(o PullToRefreshObserver) (unsubscribe func()) {
	return l.pullToRefresh.add(o)
}

// Start emits LoopStarted, arms the ticker and fires one trigger right away.
// ctx bounds the loop and every pass it starts.
func (l *SyncEventLoop) Start(ctx context.Context) error {
	l.state.mu.Lock()
	if l.state.running {
		l.state.mu.Unlock()
		return ErrLoopAlreadyStarted
	}
	loopCtx, cancel := context.WithCancel(ctx)
	l.state.running = true
	l.state.loopCtx = loopCtx
	l.state.cancelLoop = cancel
	l.tickerWG.Add(1)
	l.state.mu.Unlock()

	l.logger.Info().Dur("interval", l.opts.Interval).Msg("sync event loop started")
	l.emit(LoopStarted{})

	go l.tick(loopCtx)

	return nil
}

func (l *SyncEventLoop) tick(ctx context.Context) {
	defer l.tickerWG.Done()

	t := time.NewTicker(l.opts.Interval)
	defer t.Stop()

	l.trigger(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.trigger(ctx)
		}
	}
}

// ForceSync runs a trigger out of band. It is subject to the same guard as
// ticker triggers and may be called before Start.
func (l *SyncEventLoop) ForceSync() {
	l.trigger(l.state.parent())
}

// Stop disarms the ticker, cancels the in-flight pass, waits for it to
// unwind, detaches from the reachability monitor and emits LoopStopped. The
// monitor is started again by the first trigger after a new Start. On a loop that is not running it only
// cancels a pass started by ForceSync. Stop must not be called from an
// observer.
func (l *SyncEventLoop) Stop() {
	l.state.mu.Lock()
	wasRunning := l.state.running
	cancel := l.state.cancelLoop
	l.state.running = false
	l.state.cancelLoop = nil
	l.state.loopCtx = nil
	l.state.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.tickerWG.Wait()

	if p := l.state.current(); p != nil {
		p.cancel()
		<-p.done
	}

	l.releaseReachability()

	if wasRunning {
		l.logger.Info().Msg("sync event loop stopped")
		l.emit(LoopStopped{})
	}
}

// trigger is the single entry point shared by the ticker and ForceSync.
func (l *SyncEventLoop) trigger(parent context.Context) {
	if err := l.ensureReachability(parent); err != nil {
		l.logger.Err(err).Msg("reachability monitor failed to start")
		l.stopRefreshing()
		l.emit(PassFailed{Err: stageError(StageReachability, "", err)})
		return
	}

	if !l.isReachable() {
		l.logger.Debug().Str("reason", string(NoInternetConnection)).Msg("sync pass skipped")
		l.stopRefreshing()
		l.emit(PassSkipped{Reason: NoInternetConnection})
		return
	}

	p := newPass(parent, l.ids.Next())
	if !l.state.tryBegin(p) {
		p.cancel()
		l.logger.Debug().Str("reason", string(PreviousLoopNotFinished)).Msg("sync pass skipped")
		l.emit(PassSkipped{Reason: PreviousLoopNotFinished})
		return
	}

	go l.run(p)
}

func (l *SyncEventLoop) ensureReachability(ctx context.Context) error {
	if l.c.Reachability == nil {
		return nil
	}

	l.reachMu.Lock()
	defer l.reachMu.Unlock()

	l.state.mu.Lock()
	ready := l.state.reachabilityReady
	l.state.mu.Unlock()
	if ready {
		return nil
	}

	if err := l.c.Reachability.Start(ctx); err != nil {
		return fmt.Errorf("start reachability monitor: %w", err)
	}

	l.unsubscribeReach = l.c.Reachability.Subscribe(func(reachable bool) {
		if l.state.setReachable(reachable) {
			l.logger.Info().Bool("reachable", reachable).Msg("network reachability changed")
		}
	})

	l.state.mu.Lock()
	l.state.reachabilityReady = true
	l.state.lastReachability = l.c.Reachability.IsReachable()
	l.state.mu.Unlock()

	return nil
}

// releaseReachability drops the subscription and the ready flag so that the
// next trigger starts the monitor again. The monitor's check run may have
// ended together with the loop context.
func (l *SyncEventLoop) releaseReachability() {
	l.reachMu.Lock()
	defer l.reachMu.Unlock()

	if l.unsubscribeReach != nil {
		l.unsubscribeReach()
		l.unsubscribeReach = nil
	}

	l.state.mu.Lock()
	l.state.reachabilityReady = false
	l.state.mu.Unlock()
}

func (l *SyncEventLoop) isReachable() bool {
	if l.c.Reachability == nil {
		return true
	}
	reachable := l.c.Reachability.IsReachable()
	l.state.setReachable(reachable)
	return reachable
}

func (l *SyncEventLoop) run(p *pass) {
	log := &logger.Logger{Logger: l.logger.With().Str("pass_id", p.id).Logger()}
	ctx := log.WithContext(p.ctx)
	started, ok := utils.PassStartedAt(p.id)
	if !ok {
		started = time.Now()
	}

	defer func() {
		l.state.finish(p)
		l.stopRefreshing()
		p.cancel()
		close(p.done)
	}()

	l.emit(PassBegan{PassID: p.id})
	log.Debug().Msg("sync pass began")

	hasNewEvents, err := l.safeSync(ctx)

	if p.ctx.Err() != nil {
		log.Info().Dur("took", time.Since(started)).Msg("sync pass cancelled")
		return
	}

	if err != nil {
		log.Err(err).Dur("took", time.Since(started)).Msg("sync pass failed")
		l.emit(PassFailed{PassID: p.id, Err: err})
		return
	}

	log.Info().
		Bool("has_new_events", hasNewEvents).
		Dur("took", time.Since(started)).
		Msg("sync pass finished")
	l.emit(PassFinished{PassID: p.id, HasNewEvents: hasNewEvents})
}

// safeSync turns a collaborator panic into a pass failure.
func (l *SyncEventLoop) safeSync(ctx context.Context) (hasNewEvents bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sync pass panicked: %v", r)
		}
	}()
	return l.sync(ctx)
}

func (l *SyncEventLoop) emit(e Event) {
	for _, o := range l.observers.snapshot() {
		o.Notify(e)
	}
}

func (l *SyncEventLoop) stopRefreshing() {
	for _, o := range l.pullToRefresh.snapshot() {
		o.PullToRefreshShouldStopRefreshing()
	}
}
