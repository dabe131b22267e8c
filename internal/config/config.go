// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the channel
// user client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application credentials used against the device API.
	App App `envPrefix:"APP_"`

	// Adapter holds the device API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds retry settings for the background registration job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level credentials.
type App struct {
	// Key is the application key, sent as the basic-auth username when
	// creating users.
	// Env: APP_KEY
	Key string `env:"KEY"`

	// Secret is the application secret paired with Key. Must be kept
	// confidential.
	// Env: APP_SECRET
	Secret string `env:"SECRET"`

	// DeviceType is the platform of the registered channels
	// (e.g. "ios", "android").
	// Env: APP_DEVICE_TYPE
	DeviceType string `env:"DEVICE_TYPE"`
}

// Adapter holds configuration of the outbound transport session.
type Adapter struct {
	// HTTPAddress is the device API base URL
	// (e.g. "https://device-api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the retry policy applied to recoverable failures by the
// user service.
type Workers struct {
	// Env: WORKERS_RETRY_INITIAL_DELAY
	RetryInitialDelay time.Duration `env:"RETRY_INITIAL_DELAY"`
	// Env: WORKERS_RETRY_MAX_DELAY
	RetryMaxDelay time.Duration `env:"RETRY_MAX_DELAY"`
	// RetryMaxAttempts is nil when the layer does not set it, so an explicit
	// zero (no retries) is told apart from "unset".
	// Env: WORKERS_RETRY_MAX_ATTEMPTS
	RetryMaxAttempts *uint64 `env:"RETRY_MAX_ATTEMPTS"`
}

const defaultRetryMaxAttempts uint64 = 5

// MaxAttempts returns the configured retry budget or the built-in default
// when no layer set one.
func (w Workers) MaxAttempts() uint64 {
	if w.RetryMaxAttempts == nil {
		return defaultRetryMaxAttempts
	}
	return *w.RetryMaxAttempts
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

// defaults returns the lowest-priority layer of the configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{DeviceType: "ios"},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			RetryInitialDelay: time.Second,
			RetryMaxDelay:     time.Minute,
			RetryMaxAttempts:  uint64Ptr(defaultRetryMaxAttempts),
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields; the retry budget is taken from the
// last source that sets it, zero included):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Built-in defaults fill whatever no source sets.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
