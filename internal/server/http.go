package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/rs/zerolog"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			ErrorLog:          log.New(logger.Level(zerolog.WarnLevel), "", 0),
		},
		logger: logger,
	}
}

func (h *httpServer) name() string { return "HTTP" }

func (h *httpServer) addr() string { return h.server.Addr }

// serve blocks until the server is shut down. A regular shutdown is not an
// error.
func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
