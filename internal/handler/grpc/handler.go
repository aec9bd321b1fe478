// Package grpc exposes the standard gRPC health checking protocol for the
// user-accounts service. The service is reported SERVING while the user
// store answers a ping.
package grpc

import (
	"context"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name health clients may ask about besides the
// server-wide empty name.
const ServiceName = "user-accounts"

// Handler implements grpc_health_v1.HealthServer. Watch and List are left
// unimplemented.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	pinger store.Pinger
	logger *logger.Logger
}

func NewHandler(pinger store.Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Register attaches the health service to srv.
func (h *Handler) Register(srv *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(srv, h)
}

func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContextOr(ctx, h.logger).Warn().Err(err).Msg("health check: database ping failed")
		return &grpc_health_v1.HealthCheckResponse{
			Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
		}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}
