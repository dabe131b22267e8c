package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() ClientConfig {
	return ClientConfig{
		App:     ClientApp{Key: "key", Secret: "secret", DeviceType: "ios"},
		Adapter: ClientAdapter{HTTPAddress: "https://device-api.example.com", RequestTimeout: time.Second},
		Workers: ClientWorkers{RetryInitialDelay: time.Second, RetryMaxDelay: time.Minute, RetryMaxAttempts: 3},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = " " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty key", mutate: func(c *ClientConfig) { c.App.Key = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty secret", mutate: func(c *ClientConfig) { c.App.Secret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero initial delay", mutate: func(c *ClientConfig) { c.Workers.RetryInitialDelay = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "max below initial", mutate: func(c *ClientConfig) { c.Workers.RetryMaxDelay = time.Millisecond }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero attempts allowed", mutate: func(c *ClientConfig) { c.Workers.RetryMaxAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
