// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the client: an unlock prompt and
// a status screen that follows the sync event loop and hosts pull-to-refresh.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

// SyncLoop is the part of the sync event loop the UI drives.
type SyncLoop interface {
	ForceSync()
	Subscribe(o eventloop.Observer) (unsubscribe func())
	SubscribePullToRefresh(o eventloop.PullToRefreshObserver) (unsubscribe func())
}

// TUI is the terminal front end of the client: the unlock prompt followed by
// the status screen. It drives a [SyncLoop] but never owns it.
type TUI struct {
	loop   SyncLoop
	shares service.ShareService
	items  service.ItemService
	userID string
	info   models.AppBuildInfo
	log    *logger.Logger

	fwd         *forwarder
	unsubscribe []func()
}

// New subscribes the UI to loop right away, so notifications emitted before
// Run are buffered and shown once the screen is up.
func New(loop SyncLoop, services *service.ClientServices, userID string, info models.AppBuildInfo, log *logger.Logger) *TUI {
	fwd := newForwarder(eventBufferSize, log)

	return &TUI{
		loop:   loop,
		shares: services.ShareService,
		items:  services.ItemService,
		userID: userID,
		info:   info,
		log:    log,
		fwd:    fwd,
		unsubscribe: []func(){
			loop.Subscribe(fwd),
			loop.SubscribePullToRefresh(fwd),
		},
	}
}

// Unlock prompts for the master password. It returns [ErrUserQuit] when the
// user leaves the prompt.
func (t *TUI) Unlock() (string, error) {
	finalModel, err := tea.NewProgram(newUnlockModel(t.userID), tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(unlockModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit {
		return "", ErrUserQuit
	}

	return result.password, nil
}

// Run shows the status screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.loop, t.shares, t.items, t.userID, t.info)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	stop := t.fwd.pump(p)
	defer stop()

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(statusModel); !ok {
		return tea.ErrProgramKilled
	}

	t.log.Debug().Msg("status screen closed by user")
	return nil
}

// Close detaches the UI from the loop.
func (t *TUI) Close() {
	for _, unsubscribe := range t.unsubscribe {
		unsubscribe()
	}
	t.fwd.close()
}
