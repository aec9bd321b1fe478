package config

import "time"

// Default values applied when no other source sets the field.
const (
	DefaultHTTPAddress       = "0.0.0.0:3000"
	DefaultTokenIssuer       = "user-accounts"
	DefaultTokenDuration     = 7 * 24 * time.Hour
	DefaultTokenCookieName   = "token"
	DefaultLogLevel          = "info"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second

	DefaultHashMemory      uint32 = 64 * 1024
	DefaultHashIterations  uint32 = 1
	DefaultHashParallelism uint8  = 4
	DefaultHashSaltLength  uint32 = 16
	DefaultHashKeyLength   uint32 = 32
)

// Defaults returns the lowest-priority configuration layer.
// TokenSignKey and the database DSN have no default and must be provided.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     DefaultTokenIssuer,
			TokenDuration:   DefaultTokenDuration,
			TokenCookieName: DefaultTokenCookieName,
			LogLevel:        DefaultLogLevel,
			PasswordHashing: PasswordHashing{
				Memory:      DefaultHashMemory,
				Iterations:  DefaultHashIterations,
				Parallelism: DefaultHashParallelism,
				SaltLength:  DefaultHashSaltLength,
				KeyLength:   DefaultHashKeyLength,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			RequestTimeout:    DefaultRequestTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
			AllowedOrigins:    []string{"*"},
		},
	}
}
