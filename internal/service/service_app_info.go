package service

import (
	"context"

	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/logger"
)

// appInfoService serves static facts about the running build: the version
// reported by the health endpoint and the staff review shown on v2 items.
type appInfoService struct {
	appVersion  string
	staffReview string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		staffReview: cfg.StaffReview,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetStaffReview(ctx context.Context) string {
	return s.staffReview
}
