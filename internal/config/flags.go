package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-a api address, e.g. localhost:8080 or https://pass.example.com
//	-d sqlite database path
//	-c/-config json file path with configs
//	-token access token
//	-salt user key salt
//	-request-timeout request timeout (e.g., "15s")
//	-sync-interval event loop period (e.g., "30s")
//	-share-concurrency number of shares drained in parallel
//	-cursor-commit after_apply or before_apply
//	-log-file log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address          string
		databaseDSN      string
		jsonConfigPath   string
		accessToken      string
		keySalt          string
		requestTimeout   time.Duration
		syncInterval     time.Duration
		shareConcurrency int
		cursorCommit     string
		logFile          string
	)

	fs := flag.NewFlagSet("go-pass-sync", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "API address")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessToken, "token", "", "Access token")
	fs.StringVar(&keySalt, "salt", "", "User key salt")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Sync interval (e.g., 30s)")
	fs.IntVar(&shareConcurrency, "share-concurrency", 0, "Shares drained in parallel")
	fs.StringVar(&cursorCommit, "cursor-commit", "", "Cursor commit policy: after_apply or before_apply")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccessToken: accessToken,
			KeySalt:     keySalt,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			SyncInterval:     syncInterval,
			ShareConcurrency: shareConcurrency,
			CursorCommit:     cursorCommit,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}
