// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which the token middleware stores the raw
// access token found in the request cookie or Authorization header.
var TokenCtxKey = contextKey("token")

// TraceIDCtxKey is the key under which the trace id of a request is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the raw access token from the context.
//
// Returns ok == false when no token was attached or it is empty.
//
// Example usage:
//
//	token, ok := utils.GetTokenFromContext(r.Context())
//	if !ok {
//	    // fall back to the token in the request body
//	}
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// GetTraceIDFromContext retrieves the request trace id from the context.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
