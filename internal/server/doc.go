// Package server runs the transports of the user-accounts service: the HTTP
// API and, when configured, the gRPC health endpoint.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout. The first transport to fail
// stops the others.
package server
