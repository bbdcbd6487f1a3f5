package eventloop

import "sync"

// SkipReason tells why a trigger did not start a pass.
type SkipReason string

const (
	// NoInternetConnection means the reachability monitor reported the API
	// as down.
	NoInternetConnection SkipReason = "noInternetConnection"
	// PreviousLoopNotFinished means another pass still held the loop.
	PreviousLoopNotFinished SkipReason = "previousLoopNotFinished"
)

// Event is a notification emitted by the loop. The set of variants is
// closed: LoopStarted, LoopStopped, PassBegan, PassSkipped, PassFinished and
// PassFailed.
type Event interface {
	isEvent()
}

// LoopStarted is emitted once by Start, before the first trigger.
type LoopStarted struct{}

// LoopStopped is emitted by Stop on a running loop after the current pass
// has returned.
type LoopStopped struct{}

// PassBegan opens a pass. Every later event of the same pass carries the
// same PassID.
type PassBegan struct {
	PassID string
}

// PassSkipped is emitted when a trigger did not start a pass.
type PassSkipped struct {
	Reason SkipReason
}

// PassFinished closes a pass in which every share was drained.
type PassFinished struct {
	PassID string
	// HasNewEvents is true when any share had updated or deleted items or a
	// key rotation during the pass.
	HasNewEvents bool
}

// PassFailed carries the error that aborted a pass. PassID is empty when
// the failure happened before a pass could begin.
type PassFailed struct {
	PassID string
	Err    error
}

func (LoopStarted) isEvent()  {}
func (LoopStopped) isEvent()  {}
func (PassBegan) isEvent()    {}
func (PassSkipped) isEvent()  {}
func (PassFinished) isEvent() {}
func (PassFailed) isEvent()   {}

// Observer receives loop events synchronously on the emitting goroutine. It
// must not block and must not call Stop.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a plain function to [Observer].
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) { f(e) }

// PullToRefreshObserver is told when a refresh spinner may stop, whatever
// the outcome of the trigger was.
type PullToRefreshObserver interface {
	PullToRefreshShouldStopRefreshing()
}

// Delegate is the method-per-event form of [Observer].
type Delegate interface {
	SyncEventLoopDidStartLooping()
	SyncEventLoopDidStopLooping()
	SyncEventLoopDidBeginNewLoop()
	SyncEventLoopDidSkipLoop(reason SkipReason)
	SyncEventLoopDidFinishLoop(hasNewEvents bool)
	SyncEventLoopDidFailLoop(err error)
}

// DelegateObserver turns d into an [Observer].
func DelegateObserver(d Delegate) Observer {
	return ObserverFunc(func(e Event) {
		switch ev := e.(type) {
		case LoopStarted:
			d.SyncEventLoopDidStartLooping()
		case LoopStopped:
			d.SyncEventLoopDidStopLooping()
		case PassBegan:
			d.SyncEventLoopDidBeginNewLoop()
		case PassSkipped:
			d.SyncEventLoopDidSkipLoop(ev.Reason)
		case PassFinished:
			d.SyncEventLoopDidFinishLoop(ev.HasNewEvents)
		case PassFailed:
			d.SyncEventLoopDidFailLoop(ev.Err)
		}
	})
}

type subscription[T any] struct {
	id int
	v  T
}

// registry keeps subscribers in registration order.
type registry[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription[T]
}

func (r *registry[T]) add(v T) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs = append(r.subs, subscription[T]{id: id, v: v})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, s := range r.subs {
				if s.id == id {
					r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (r *registry[T]) snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, s.v)
	}
	return out
}
