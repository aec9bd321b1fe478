package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"token_cookie_name": "session",
			"require_token_on_remove": true,
			"log_level": "debug",
			"password_hashing": {
				"memory": 19456,
				"iterations": 2,
				"parallelism": 1,
				"salt_length": 16,
				"key_length": 32
			}
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"read_header_timeout": 2000000000,
			"shutdown_timeout": "15s",
			"allowed_origins": ["https://app.example"]
		},
		"storage": {
			"db": { "dsn": "file:users.db", "driver": "sqlite3" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "session", cfg.App.TokenCookieName)
	assert.True(t, cfg.App.RequireTokenOnRemove)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, uint32(19456), cfg.App.PasswordHashing.Memory)
	assert.Equal(t, uint32(2), cfg.App.PasswordHashing.Iterations)
	assert.Equal(t, uint8(1), cfg.App.PasswordHashing.Parallelism)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"https://app.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "file:users.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"token_duration": "soon"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bool", input: `true`, wantErr: true},
		{name: "bad string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m0s"`, string(b))
}
