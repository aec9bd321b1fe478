// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListen is returned when the listen address cannot be bound.
	ErrListen = errors.New("cannot listen on address")
)
