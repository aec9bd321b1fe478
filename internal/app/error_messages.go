// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

// Package app contains shared application-layer constants used across the
// user-accounts HTTP handlers, middleware and client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or contains fields that are not accepted.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUserID is returned when the :id path segment is missing,
	// zero or not a positive integer.
	MsgInvalidUserID = "invalid user id"

	// MsgInvalidUsernamePassword is returned when a login attempt supplies
	// a password that does not match the stored hash.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the access token is
	// missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgIdentityMismatch is returned when a valid token is presented for an
	// account other than the one it was issued for.
	MsgIdentityMismatch = "identity mismatch"

	// MsgUsernameAlreadyExists is returned when a signup or rename is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgUserNotFound is returned when the addressed account does not exist.
	MsgUserNotFound = "user not found"

	// MsgDatabaseUnavailable is returned by the health endpoint when the
	// database cannot be reached.
	MsgDatabaseUnavailable = "database unavailable"
)
