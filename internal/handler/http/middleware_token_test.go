package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestWithToken(t *testing.T) {
	tests := []struct {
		name      string
		cookie    string
		header    string
		wantToken string
		wantFound bool
	}{
		{name: "nothing", wantFound: false},
		{name: "cookie", cookie: "c-token", wantToken: "c-token", wantFound: true},
		{name: "bearer", header: "Bearer h-token", wantToken: "h-token", wantFound: true},
		{name: "lowercase scheme", header: "bearer h-token", wantToken: "h-token", wantFound: true},
		{name: "cookie first", cookie: "c-token", header: "Bearer h-token", wantToken: "c-token", wantFound: true},
		{name: "basic scheme ignored", header: "Basic abc", wantFound: false},
		{name: "scheme without token ignored", header: "Bearer", wantFound: false},
		{name: "empty cookie falls through", cookie: "", header: "Bearer h-token", wantToken: "h-token", wantFound: true},
	}

	h := &Handler{cookieName: "token", logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotToken string
				gotFound bool
				called   bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotToken, gotFound = utils.GetTokenFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPut, "/users/1", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			h.withToken(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.True(t, called, "the middleware never rejects")
			assert.Equal(t, tt.wantFound, gotFound)
			assert.Equal(t, tt.wantToken, gotToken)
		})
	}
}

func TestWithToken_CustomCookieName(t *testing.T) {
	h := &Handler{cookieName: "session", logger: logger.Nop()}

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTokenFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPut, "/users/1", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "ignored"})
	req.AddCookie(&http.Cookie{Name: "session", Value: "used"})

	h.withToken(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "used", got)
}
