package tui

import (
	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/models"
)

// loopEventMsg wraps an event emitted by the sync event loop.
type loopEventMsg struct {
	event eventloop.Event
}

// stopRefreshingMsg is sent when the loop says the refresh spinner may stop.
type stopRefreshingMsg struct{}

type shareRow struct {
	shareID    string
	owner      bool
	shared     bool
	itemCount  int
	countError bool
}

type sharesLoadedMsg struct {
	rows []shareRow
	err  error
}

type itemsLoadedMsg struct {
	shareID string
	items   []models.Item
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
