// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Field-level requirements
// are enforced on the client view by [ClientConfig.validate]; here only
// negative durations are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.RetryInitialDelay < 0 || cfg.Workers.RetryMaxDelay < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.Key) == "" || cfg.App.Secret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RetryInitialDelay <= 0 || cfg.Workers.RetryMaxDelay < cfg.Workers.RetryInitialDelay {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
