package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		service    string
		pingErr    error
		wantStatus grpc_health_v1.HealthCheckResponse_ServingStatus
	}{
		{name: "server wide", service: "", wantStatus: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "named service", service: ServiceName, wantStatus: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "database down", service: "", pingErr: errors.New("connection refused"), wantStatus: grpc_health_v1.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pinger := mock.NewMockPinger(ctrl)
			pinger.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			resp, err := NewHandler(pinger, logger.Nop()).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: tt.service})

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.GetStatus())
		})
	}
}

func TestHandler_CheckUnknownService(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(mock.NewMockPinger(ctrl), logger.Nop())

	_, err := h.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: "billing"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}
