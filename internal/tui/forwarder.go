package tui

import (
	"sync"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

const eventBufferSize = 64

// sender is satisfied by *tea.Program.
type sender interface {
	Send(msg tea.Msg)
}

// forwarder moves loop notifications onto the UI program. Notify never
// blocks the loop: when the buffer is full the message is dropped.
type forwarder struct {
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once
	log  *logger.Logger
}

func newForwarder(size int, log *logger.Logger) *forwarder {
	return &forwarder{
		msgs: make(chan tea.Msg, size),
		done: make(chan struct{}),
		log:  log,
	}
}

func (f *forwarder) Notify(e eventloop.Event) {
	f.forward(loopEventMsg{event: e})
}

func (f *forwarder) PullToRefreshShouldStopRefreshing() {
	f.forward(stopRefreshingMsg{})
}

func (f *forwarder) forward(msg tea.Msg) {
	select {
	case <-f.done:
		return
	default:
	}

	select {
	case f.msgs <- msg:
	default:
		f.log.Warn().Type("msg", msg).Msg("ui event buffer is full, dropping message")
	}
}

// pump delivers buffered messages to s until the returned stop is called.
func (f *forwarder) pump(s sender) (stop func()) {
	quit := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		for {
			select {
			case <-quit:
				return
			case <-f.done:
				return
			case msg := <-f.msgs:
				s.Send(msg)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			<-finished
		})
	}
}

func (f *forwarder) close() {
	f.once.Do(func() { close(f.done) })
}
