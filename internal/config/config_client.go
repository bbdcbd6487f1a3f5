package config

import (
	"fmt"
	"time"
)

// Cursor commit policies accepted in Workers.CursorCommit.
const (
	CursorCommitAfterApply  = "after_apply"
	CursorCommitBeforeApply = "before_apply"
)

const (
	defaultSyncInterval         = 30 * time.Second
	defaultReachabilityInterval = 10 * time.Second
	defaultRequestTimeout       = 15 * time.Second
	defaultShareConcurrency     = 1
)

// ClientApp holds session settings of the client.
type ClientApp struct {
	AccessToken    string
	KeySalt        string
	MasterPassword string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync event loop fires.
	SyncInterval time.Duration
	// ReachabilityInterval defines how often the network is checked.
	ReachabilityInterval time.Duration
	// ShareConcurrency bounds how many shares are drained in parallel.
	ShareConcurrency int
	// CursorCommit selects when the event cursor is persisted.
	CursorCommit string
}

// ClientLog contains log file settings.
type ClientLog struct {
	File      string
	MaxSizeMB int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig maps the structured config onto the client view and fills
// in defaults for optional worker and adapter settings.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AccessToken:    cfg.App.AccessToken,
			KeySalt:        cfg.App.KeySalt,
			MasterPassword: cfg.App.MasterPassword,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval:         cfg.Workers.SyncInterval,
			ReachabilityInterval: cfg.Workers.ReachabilityInterval,
			ShareConcurrency:     cfg.Workers.ShareConcurrency,
			CursorCommit:         cfg.Workers.CursorCommit,
		},
		Log: ClientLog{
			File:      cfg.Log.File,
			MaxSizeMB: cfg.Log.MaxSizeMB,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Workers.SyncInterval == 0 {
		clientCfg.Workers.SyncInterval = defaultSyncInterval
	}
	if clientCfg.Workers.ReachabilityInterval == 0 {
		clientCfg.Workers.ReachabilityInterval = defaultReachabilityInterval
	}
	if clientCfg.Workers.ShareConcurrency == 0 {
		clientCfg.Workers.ShareConcurrency = defaultShareConcurrency
	}
	if clientCfg.Workers.CursorCommit == "" {
		clientCfg.Workers.CursorCommit = CursorCommitAfterApply
	}

	return clientCfg
}
