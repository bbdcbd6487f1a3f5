// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment using the caarlos0/env
// library. Keys are built from the `envPrefix` and `env` tags of
// [StructuredConfig], e.g. Workers.SyncInterval is WORKERS_SYNC_INTERVAL.
//
// Fields tagged with the "unset" option are removed from the environment once
// read. APP_ACCESS_TOKEN and APP_MASTER_PASSWORD carry it, so the clipboard
// helper and any other child process never inherit the session secrets.
//
// Returns a wrapped error if env.Parse fails (e.g. a duration or an integer
// cannot be converted to the target type).
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
