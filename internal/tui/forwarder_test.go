// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitSent(t *testing.T, s *fakeSender, n int) []tea.Msg {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.got:
		case <-time.After(time.Second):
			t.Fatalf("expected %d messages, got %d", n, i)
		}
	}
	return s.all()
}

func TestForwarder_BuffersUntilPumped(t *testing.T) {
	f := newForwarder(eventBufferSize, logger.Nop())

	f.Notify(eventloop.LoopStarted{})
	f.PullToRefreshShouldStopRefreshing()

	s := newFakeSender()
	stop := f.pump(s)
	defer stop()

	msgs := waitSent(t, s, 2)
	assert.Equal(t, []tea.Msg{
		loopEventMsg{event: eventloop.LoopStarted{}},
		stopRefreshingMsg{},
	}, msgs)
}

func TestForwarder_DropsWhenFull(t *testing.T) {
	f := newForwarder(1, logger.Nop())

	f.Notify(eventloop.PassBegan{PassID: "p1"})
	f.Notify(eventloop.PassBegan{PassID: "p2"})

	require.Len(t, f.msgs, 1)
	assert.Equal(t, loopEventMsg{event: eventloop.PassBegan{PassID: "p1"}}, <-f.msgs)
}

func TestForwarder_IgnoresAfterClose(t *testing.T) {
	f := newForwarder(eventBufferSize, logger.Nop())
	f.close()
	f.close()

	f.Notify(eventloop.LoopStopped{})
	assert.Empty(t, f.msgs)
}

func TestForwarder_StopIsIdempotent(t *testing.T) {
	f := newForwarder(eventBufferSize, logger.Nop())
	stop := f.pump(newFakeSender())
	stop()
	stop()
}

func TestNew_SubscribesAndCloseDetaches(t *testing.T) {
	loop := &fakeLoop{}
	services := &service.ClientServices{ShareService: &fakeShares{}, ItemService: &fakeItems{}}

	ui := New(loop, services, "u1", models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.Len(t, loop.observers, 1)
	require.Len(t, loop.refreshers, 1)

	loop.observers[0].Notify(eventloop.LoopStarted{})
	loop.refreshers[0].PullToRefreshShouldStopRefreshing()
	assert.Len(t, ui.fwd.msgs, 2)

	ui.Close()
	assert.Equal(t, int32(2), loop.unsubscribed.Load())
}
