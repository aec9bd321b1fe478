package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/config"
	myGRPC "github.com/Raphalinho91/user-accounts/internal/handler/grpc"
	"github.com/Raphalinho91/user-accounts/internal/logger"
)

// transport is one listener of the server: the HTTP API or the gRPC health
// endpoint.
type transport interface {
	name() string
	addr() string
	serve(ln net.Listener) error
	shutdown(ctx context.Context) error
}

type server struct {
	transports      []transport
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates the HTTP server and, when cfg.GRPCAddress is set and
// grpcHandler is not nil, the gRPC health server next to it.
func NewServer(httpHandler http.Handler, grpcHandler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && httpHandler != nil {
		s.transports = append(s.transports, newHTTPServer(httpHandler, cfg, logger))
	}
	if cfg.GRPCAddress != "" && grpcHandler != nil {
		s.transports = append(s.transports, newGRPCServer(grpcHandler, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listeners := make([]net.Listener, 0, len(s.transports))
	for _, t := range s.transports {
		ln, err := net.Listen("tcp", t.addr())
		if err != nil {
			for _, opened := range listeners {
				opened.Close()
			}
			return fmt.Errorf("%w %s: %w", ErrListen, t.addr(), err)
		}
		listeners = append(listeners, ln)
	}

	serveErr := make(chan error, len(s.transports))
	for i, t := range s.transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func(ln net.Listener) {
			serveErr <- t.serve(ln)
		}(listeners[i])
	}

	var runErr error
	running := len(s.transports)
	select {
	case runErr = <-serveErr:
		running--
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	errs := []error{runErr, s.Shutdown(shutdownCtx)}
	for ; running > 0; running-- {
		errs = append(errs, <-serveErr)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, t := range s.transports {
		errs = append(errs, t.shutdown(ctx))
	}
	return errors.Join(errs...)
}
