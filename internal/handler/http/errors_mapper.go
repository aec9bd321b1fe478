package http

import (
	"errors"
	"net/http"

	"github.com/Raphalinho91/user-accounts/internal/app"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/service"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/Raphalinho91/user-accounts/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrBadRequest:         http.StatusBadRequest,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidToken:       http.StatusUnauthorized,
	service.ErrConflict:           http.StatusConflict,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrInternal:           http.StatusInternalServerError,

	validators.ErrInvalidRequest:  http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusBadRequest,

	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidUserID: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its status and writes the error body. Messages of
// 5xx responses never carry the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message)
}
