package http

import (
	"net/http"

	"github.com/Raphalinho91/user-accounts/internal/app"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/Raphalinho91/user-accounts/models"
)

// health answers 200 while the database responds to a ping and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Msg("health check failed")
			utils.WriteError(w, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable)
			return
		}
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())
	utils.WriteJSON(w, info.Response(), http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "")
}
