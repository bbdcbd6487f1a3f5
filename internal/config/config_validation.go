// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.ReachabilityInterval < 0 || cfg.Workers.ShareConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Workers.CursorCommit {
	case CursorCommitAfterApply, CursorCommitBeforeApply:
	default:
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.AccessToken == "" || cfg.App.KeySalt == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
