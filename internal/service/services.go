package service

import (
	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/crypto"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/store"
	"github.com/Raphalinho91/user-accounts/models"
)

// Services bundles the use-case services consumed by the transport layer.
type Services struct {
	AccountService AccountService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokens := NewTokenService(cfg.App, logger)
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashing)

	return &Services{
		AccountService: NewAccountService(storages.UserRepository, hasher, tokens, cfg.App, logger),
		TokenService:   tokens,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
