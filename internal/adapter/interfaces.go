// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

// Package adapter provides a Go client for the user-accounts REST API.
//
// [AccountsClient] hides the HTTP details: request encoding, the bearer
// token obtained at login and the mapping of error statuses to the sentinel
// errors of this package, so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Raphalinho91/user-accounts/models"
)

// AccountsClient talks to a user-accounts server. Implementations are safe
// for concurrent use.
type AccountsClient interface {
	// SetToken stores the token attached as a bearer to authenticated calls.
	SetToken(token string)

	// Token returns the stored token, or "" before the first login.
	Token() string

	// SignUp registers a new account.
	SignUp(ctx context.Context, username, password string) (models.PublicUser, error)

	// LogIn authenticates and stores the returned token via SetToken.
	LogIn(ctx context.Context, username, password string) (models.LoginResponse, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the account with userID.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser changes the account with userID using the stored token.
	UpdateUser(ctx context.Context, userID int64, update models.UpdateRequest) (models.PublicUser, error)

	// DeleteUser removes the account with userID.
	DeleteUser(ctx context.Context, userID int64) error

	// Health returns nil when the server and its database are up.
	Health(ctx context.Context) error

	// Version returns the server build info.
	Version(ctx context.Context) (models.VersionResponse, error)
}
