package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/mock"
	"github.com/Raphalinho91/user-accounts/internal/service"
	"github.com/Raphalinho91/user-accounts/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	handler  *Handler
	router   http.Handler
	accounts *mock.MockAccountService
	appInfo  *mock.MockAppInfoService
	pinger   *mock.MockPinger
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		accounts: mock.NewMockAccountService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		pinger:   mock.NewMockPinger(ctrl),
	}

	cfg := config.Defaults()
	cfg.App.TokenSignKey = "test-key"

	services := &service.Services{
		AccountService: f.accounts,
		TokenService:   mock.NewMockTokenService(ctrl),
		AppInfoService: f.appInfo,
	}
	f.handler = NewHandler(services, f.pinger, cfg, logger.Nop())
	f.router = f.handler.Init()

	return f
}

// do sends a request through the full router.
func (f *handlerFixture) do(method, path, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func withHeader(name, value string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(name, value) }
}

func withCookie(name, value string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v))
	return v
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr)
}
