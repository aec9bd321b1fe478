package http

import (
	"net/http"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/utils"
)

// withToken looks up the caller's access token and stores it in the request
// context under [utils.TokenCtxKey]. The token cookie wins over an
// "Authorization: Bearer" header.
//
// The middleware never rejects a request: a missing or malformed token is
// left for the service layer to refuse, and handlers may still fall back to
// a token in the request body.
func (h *Handler) withToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
			next.ServeHTTP(w, r.WithContext(utils.WithToken(r.Context(), cookie.Value)))
			return
		}

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			token, err := utils.ParseBearerToken(authHeader)
			if err != nil {
				log.Debug().Err(err).Msg("ignoring authorization header")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithToken(r.Context(), token)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
