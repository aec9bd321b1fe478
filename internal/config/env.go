// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// A bare PORT variable is turned into a 0.0.0.0:PORT listen address when no
// SERVER_ADDRESS is set.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Port != 0 {
		cfg.Server.HTTPAddress = "0.0.0.0:" + strconv.Itoa(cfg.Port)
	}

	return nil
}
