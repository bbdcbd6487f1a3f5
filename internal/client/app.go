package client

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/adapter"
	"github.com/MKhiriev/go-pass-sync/internal/config"
	"github.com/MKhiriev/go-pass-sync/internal/crypto"
	"github.com/MKhiriev/go-pass-sync/internal/eventloop"
	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/reachability"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/internal/tui"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
	"github.com/MKhiriev/go-pass-sync/internal/workers"
	"github.com/MKhiriev/go-pass-sync/models"
)

var ErrInvalidKeySalt = errors.New("key salt is not valid base64")

// App is the pass sync client: it wires storage, services and the event loop
// from the config and drives them from the terminal UI.
type App struct {
	cfg  *config.ClientConfig
	info models.AppBuildInfo
	log  *logger.Logger
}

// NewApp creates an App for cfg. Nothing is opened or dialed until Run is
// called.
//
// Returns an error if cfg is nil.
func NewApp(cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil client config")
	}
	return &App{cfg: cfg, info: info, log: log}, nil
}

// runtime holds everything built from the config for one Run.
type runtime struct {
	userID   string
	storages *store.ClientStorages
	services *service.ClientServices
	keychain crypto.KeyChainService
	monitor  *reachability.Monitor
	loop     *eventloop.SyncEventLoop
}

func (a *App) wire(ctx context.Context) (*runtime, error) {
	userID, err := utils.ParseSubject(a.cfg.App.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("read user id from access token: %w", err)
	}
	if expiresAt, ok := utils.TokenExpiresAt(a.cfg.App.AccessToken); ok && time.Now().After(expiresAt) {
		a.log.Warn().Time("expires_at", expiresAt).Msg("access token is expired, sync passes will fail until it is renewed")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(a.cfg.Adapter, a.log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	serverAdapter.SetToken(a.cfg.App.AccessToken)

	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	keychain := crypto.NewKeyChainService()
	services := service.NewClientServices(storages, serverAdapter, keychain, a.log)

	opts, err := eventloop.OptionsFromConfig(a.cfg.Workers, a.log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("event loop options: %w", err)
	}

	monitor := reachability.NewMonitor(serverAdapter, a.cfg.Workers.ReachabilityInterval, a.cfg.Adapter.RequestTimeout, a.log)
	loop := eventloop.New(userID, eventloop.Collaborators{
		Shares:       services.ShareService,
		EventIDs:     services.EventIDService,
		Events:       services.RemoteSyncEventsService,
		Items:        services.ItemService,
		Keys:         services.ShareKeysService,
		Reachability: monitor,
	}, opts)

	return &runtime{
		userID:   userID,
		storages: storages,
		services: services,
		keychain: keychain,
		monitor:  monitor,
		loop:     loop,
	}, nil
}

// unlock derives the user key from password and hands it to the key service.
func (a *App) unlock(rt *runtime, password string) error {
	salt, err := base64.StdEncoding.DecodeString(a.cfg.App.KeySalt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeySalt, err)
	}

	rt.services.ShareKeysService.SetUserKey(rt.keychain.DeriveUserKey(password, salt))
	return nil
}

// Run wires the client, asks for the master password unless it is
// configured, starts the background workers and shows the status screen.
func (a *App) Run(ctx context.Context) error {
	a.log.Info().Str("build", a.info.String()).Msg("starting pass sync client")

	rt, err := a.wire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.storages.Close(); closeErr != nil {
			a.log.Err(closeErr).Msg("close local storage")
		}
	}()

	ui := tui.New(rt.loop, rt.services, rt.userID, a.info, a.log)
	defer ui.Close()

	password := a.cfg.App.MasterPassword
	if password == "" {
		password, err = ui.Unlock()
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unlock: %w", err)
		}
	}
	if err = a.unlock(rt, password); err != nil {
		return err
	}

	w := workers.NewWorkers(rt.monitor, rt.loop)
	if err = w.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}
	defer w.Stop()

	a.log.Info().Str("user_id", rt.userID).Msg("client started")
	return ui.Run(ctx)
}
