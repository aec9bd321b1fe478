package service

import (
	"context"

	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] reporting buildInfo.
// Missing fields are reported as "N/A".
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: models.NewAppBuildInfo(
			orNA(buildInfo.BuildVersion()),
			orNA(buildInfo.BuildDate()),
			orNA(buildInfo.BuildCommit()),
		),
		logger: logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
