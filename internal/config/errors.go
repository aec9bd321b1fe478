package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a malformed address or a zero timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidHashingConfigs indicates Argon2id parameters that are zero
	// or too small.
	ErrInvalidHashingConfigs = errors.New("invalid password hashing configuration")
)
