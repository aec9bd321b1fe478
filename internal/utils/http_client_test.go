package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", 5*time.Second)

	if client.BaseURL != "http://localhost:3000" {
		t.Errorf("expected base url to be set, got %q", client.BaseURL)
	}
	if got := client.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected json content type, got %q", got)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
