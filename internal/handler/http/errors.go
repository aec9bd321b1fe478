// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package http

import (
	"errors"

	"github.com/Raphalinho91/user-accounts/internal/app"
)

// Sentinel errors produced while reading a request, before the service
// layer is reached. Callers can match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the body is not a single JSON object
	// or carries fields the endpoint does not accept.
	ErrInvalidJSON = errors.New(app.MsgInvalidDataProvided)

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New(app.MsgInvalidUserID)
)
