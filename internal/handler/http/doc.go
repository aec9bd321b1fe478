// Package http implements the HTTP transport layer of the user-accounts
// service.
//
// It exposes route wiring, request handlers and middleware for the REST
// API. Tracing, access logging, security headers, CORS, compression and
// token extraction are handled in this package before requests are
// delegated to the service layer.
package http
