package config

import (
	"fmt"
	"time"
)

// ClientApp holds the application credentials and channel platform.
type ClientApp struct {
	// Key is the application key (basic-auth username for user creation).
	Key string
	// Secret is the application secret (basic-auth password for user creation).
	Secret string
	// DeviceType is sent with every channel association.
	DeviceType string
}

// ClientAdapter holds network settings used by the transport session.
type ClientAdapter struct {
	// HTTPAddress is the device API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers holds the retry policy for recoverable failures.
type ClientWorkers struct {
	RetryInitialDelay time.Duration
	RetryMaxDelay     time.Duration
	// RetryMaxAttempts is the number of retries after the first attempt.
	// Zero means a single attempt.
	RetryMaxAttempts uint64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Key:        cfg.App.Key,
			Secret:     cfg.App.Secret,
			DeviceType: cfg.App.DeviceType,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			RetryInitialDelay: cfg.Workers.RetryInitialDelay,
			RetryMaxDelay:     cfg.Workers.RetryMaxDelay,
			RetryMaxAttempts:  cfg.Workers.MaxAttempts(),
		},
	}
}
