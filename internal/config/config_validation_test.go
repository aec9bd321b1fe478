package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := Defaults()
		cfg.App.TokenSignKey = "secret"
		cfg.Storage.DB.DSN = "postgres://localhost/users"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with key and dsn", mutate: func(*StructuredConfig) {}},
		{
			name:   "sqlite driver",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite },
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero hashing memory",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashing.Memory = 0 },
			wantErr: ErrInvalidHashingConfigs,
		},
		{
			name:    "short salt",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashing.SaltLength = 4 },
			wantErr: ErrInvalidHashingConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "address without port",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "localhost" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "0.0.0.0:99999" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:   "grpc address set",
			mutate: func(cfg *StructuredConfig) { cfg.Server.GRPCAddress = "127.0.0.1:9090" },
		},
		{
			name:    "bad grpc address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.GRPCAddress = "9090" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
