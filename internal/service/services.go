package service

import (
	"fmt"

	"github.com/MKhiriev/go-site-keeper/internal/assembler"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/metrics"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
)

type Services struct {
	SiteConfigService SiteConfigService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

// NewServices builds the service layer. A nil m leaves SiteConfigService
// without the metrics wrapper.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	asm := assembler.New(validators.NewSiteConfigValidator(NewModuleRegistry(cfg.Site)))

	var siteConfig SiteConfigService = NewSiteConfigService(asm, storages.RevisionRepository, cfg.Site, logger)
	if m != nil {
		siteConfig = NewSiteConfigMetricsService(m).Wrap(siteConfig)
	}

	return &Services{
		SiteConfigService: siteConfig,
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfo,
	}, nil
}

// NewModuleRegistry returns the default registry extended with the modules
// listed in cfg.ExtraModules.
func NewModuleRegistry(cfg config.Site) *validators.ModuleRegistry {
	registry := validators.DefaultModuleRegistry()
	for _, name := range cfg.ExtraModules {
		registry.Register(name)
	}
	return registry
}
