package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Raphalinho91/user-accounts/internal/app"
	"github.com/Raphalinho91/user-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealth(t *testing.T) {
	f := newHandlerFixture(t)
	f.pinger.EXPECT().PingContext(gomock.Any()).Return(nil)

	rr := f.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHealth_DatabaseDown(t *testing.T) {
	f := newHandlerFixture(t)
	f.pinger.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

	rr := f.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, app.MsgDatabaseUnavailable, body.Message)
	assert.NotContains(t, rr.Body.String(), "refused")
}

func TestVersion(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.2", "2026-10-01", "f00dbabe"))

	rr := f.do(http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.4.2","date":"2026-10-01","commit":"f00dbabe"}`, rr.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decodeError(t, rr).Message)
}
