package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/config"
	myGRPC "github.com/Raphalinho91/user-accounts/internal/handler/grpc"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type grpcServer struct {
	address string
	server  *grpc.Server
	logger  *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	g := &grpcServer{
		address: cfg.GRPCAddress,
		logger:  logger,
	}
	g.server = grpc.NewServer(grpc.ChainUnaryInterceptor(g.loggingInterceptor))
	handler.Register(g.server)

	return g
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) addr() string { return g.address }

func (g *grpcServer) serve(ln net.Listener) error {
	g.logger.Info().Str("address", ln.Addr().String()).Msg("gRPC server listening")

	if err := g.server.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown waits for in-flight RPCs and forces the stop once ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}

func (g *grpcServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	g.logger.Info().
		Str("method", info.FullMethod).
		Stringer("code", status.Code(err)).
		Dur("duration", time.Since(start)).
		Msg("gRPC request")

	return resp, err
}
