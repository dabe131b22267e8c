package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient()

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_RetriesDisabled(t *testing.T) {
	client := NewHTTPClient()
	assert.Equal(t, 0, client.RetryCount)
}

func TestNewHTTPClientWithBase(t *testing.T) {
	client := NewHTTPClientWithBase("https://device-api.example.com", 3*time.Second)
	require.NotNil(t, client)

	assert.Equal(t, "https://device-api.example.com", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClientWithBase_ZeroTimeoutKeepsDefault(t *testing.T) {
	client := NewHTTPClientWithBase("https://device-api.example.com", 0)
	assert.Equal(t, time.Duration(0), client.GetClient().Timeout)
}
