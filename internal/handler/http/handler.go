package http

import (
	"time"

	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/service"
	"github.com/Raphalinho91/user-accounts/internal/store"
	"github.com/Raphalinho91/user-accounts/internal/utils"
	"github.com/Raphalinho91/user-accounts/internal/validators"
)

type Handler struct {
	services  *service.Services
	pinger    store.Pinger
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	cookieName     string
	tokenDuration  time.Duration
	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger store.Pinger, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		pinger:         pinger,
		validator:      validators.NewRequestValidator(),
		traceIDs:       utils.NewUUIDGenerator(),
		cookieName:     cfg.App.TokenCookieName,
		tokenDuration:  cfg.App.TokenDuration,
		requestTimeout: cfg.Server.RequestTimeout,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
