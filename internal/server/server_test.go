package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Raphalinho91/user-accounts/internal/config"
	myGRPC "github.com/Raphalinho91/user-accounts/internal/handler/grpc"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func testServerConfig(addr string) config.Server {
	return config.Server{
		HTTPAddress:       addr,
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
})

func newHealthHandler(t *testing.T, pingErr error) *myGRPC.Handler {
	t.Helper()
	pinger := mock.NewMockPinger(gomock.NewController(t))
	pinger.EXPECT().PingContext(gomock.Any()).Return(pingErr).AnyTimes()
	return myGRPC.NewHandler(pinger, logger.Nop())
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(okHandler, nil, testServerConfig(""), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, nil, testServerConfig("127.0.0.1:0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	cfg := testServerConfig("")
	cfg.GRPCAddress = "127.0.0.1:0"
	_, err = NewServer(nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_Transports(t *testing.T) {
	cfg := testServerConfig("127.0.0.1:0")
	cfg.GRPCAddress = "127.0.0.1:0"

	srv, err := NewServer(okHandler, newHealthHandler(t, nil), cfg, logger.Nop())
	require.NoError(t, err)

	transports := srv.(*server).transports
	require.Len(t, transports, 2)
	assert.Equal(t, "HTTP", transports[0].name())
	assert.Equal(t, "gRPC", transports[1].name())
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	srv := newHTTPServer(okHandler, testServerConfig("127.0.0.1:0"), logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	require.NoError(t, srv.shutdown(context.Background()))
	assert.NoError(t, <-done, "a regular shutdown is not an error")
}

func TestGRPCServer_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    grpc_health_v1.HealthCheckResponse_ServingStatus
	}{
		{name: "database up", want: grpc_health_v1.HealthCheckResponse_SERVING},
		{name: "database down", pingErr: errors.New("down"), want: grpc_health_v1.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newGRPCServer(newHealthHandler(t, tt.pingErr), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())

			ln, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)

			done := make(chan error, 1)
			go func() { done <- srv.serve(ln) }()

			conn, err := grpc.NewClient(ln.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
			require.NoError(t, err)
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: myGRPC.ServiceName})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetStatus())

			require.NoError(t, srv.shutdown(context.Background()))
			assert.NoError(t, <-done)
		})
	}
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	cfg := testServerConfig("127.0.0.1:0")
	cfg.GRPCAddress = "127.0.0.1:0"

	srv, err := NewServer(okHandler, newHealthHandler(t, nil), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	t.Run("http address taken", func(t *testing.T) {
		srv, err := NewServer(okHandler, nil, testServerConfig(busy.Addr().String()), logger.Nop())
		require.NoError(t, err)

		assert.ErrorIs(t, srv.RunServer(context.Background()), ErrListen)
	})

	t.Run("grpc address taken", func(t *testing.T) {
		cfg := testServerConfig("127.0.0.1:0")
		cfg.GRPCAddress = busy.Addr().String()

		srv, err := NewServer(okHandler, newHealthHandler(t, nil), cfg, logger.Nop())
		require.NoError(t, err)

		assert.ErrorIs(t, srv.RunServer(context.Background()), ErrListen)
	})
}
