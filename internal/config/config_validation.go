// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package config

import (
	"fmt"
	"net"
	"strconv"
)

// minSaltLength and minKeyLength follow the Argon2 RFC 9106 recommendations.
const (
	minSaltLength = 8
	minKeyLength  = 16
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the service.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if err := cfg.Storage.DB.validate(); err != nil {
		return err
	}

	return cfg.Server.validate()
}

func (a *App) validate() error {
	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if a.TokenCookieName == "" {
		return fmt.Errorf("%w: token cookie name is required", ErrInvalidAppConfigs)
	}

	h := a.PasswordHashing
	if h.Memory == 0 || h.Iterations == 0 || h.Parallelism == 0 {
		return fmt.Errorf("%w: argon2 cost parameters must be positive", ErrInvalidHashingConfigs)
	}

	if h.SaltLength < minSaltLength || h.KeyLength < minKeyLength {
		return fmt.Errorf("%w: salt must be at least %d bytes and key at least %d bytes",
			ErrInvalidHashingConfigs, minSaltLength, minKeyLength)
	}

	return nil
}

func (d *DB) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch d.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, d.Driver)
	}
}

func (s *Server) validate() error {
	if err := validateAddress(s.HTTPAddress); err != nil {
		return err
	}

	if s.GRPCAddress != "" {
		if err := validateAddress(s.GRPCAddress); err != nil {
			return err
		}
	}

	if s.RequestTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func validateAddress(address string) error {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: bad address %q: %v", ErrInvalidServerConfigs, address, err)
	}

	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535", ErrInvalidServerConfigs)
	}
	return nil
}
