package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-site-keeper/internal/metrics"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

// SiteConfigMetricsService counts builds, violations and publishes of the
// wrapped SiteConfigService. Reads pass through untouched.
type SiteConfigMetricsService struct {
	SiteConfigService
	metrics *metrics.Metrics
}

func NewSiteConfigMetricsService(m *metrics.Metrics) SiteConfigServiceWrapper {
	return &SiteConfigMetricsService{metrics: m}
}

func (s *SiteConfigMetricsService) Wrap(inner SiteConfigService) SiteConfigService {
	s.SiteConfigService = inner
	return s
}

func (s *SiteConfigMetricsService) Validate(ctx context.Context, sections models.Sections) (models.Configuration, error) {
	cfg, err := s.SiteConfigService.Validate(ctx, sections)
	s.observeBuild(err)
	return cfg, err
}

func (s *SiteConfigMetricsService) Publish(ctx context.Context, sections models.Sections, author string) (models.Revision, bool, error) {
	rev, created, err := s.SiteConfigService.Publish(ctx, sections, author)

	var cfgErr *validators.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		s.observeBuild(err)
		s.metrics.PublishesTotal.WithLabelValues(metrics.ResultRejected).Inc()
	case err != nil:
		s.metrics.PublishesTotal.WithLabelValues(metrics.ResultError).Inc()
	case created:
		s.observeBuild(nil)
		s.metrics.PublishesTotal.WithLabelValues(metrics.ResultCreated).Inc()
		s.metrics.LatestRevision.Set(float64(rev.Number))
	default:
		s.observeBuild(nil)
		s.metrics.PublishesTotal.WithLabelValues(metrics.ResultUnchanged).Inc()
	}

	return rev, created, err
}

func (s *SiteConfigMetricsService) observeBuild(err error) {
	var cfgErr *validators.ConfigError
	switch {
	case err == nil:
		s.metrics.BuildsTotal.WithLabelValues(metrics.ResultOK).Inc()
	case errors.As(err, &cfgErr):
		s.metrics.BuildsTotal.WithLabelValues(metrics.ResultRejected).Inc()
		for _, v := range cfgErr.Violations {
			s.metrics.ViolationsTotal.WithLabelValues(string(v.Kind)).Inc()
		}
	default:
		s.metrics.BuildsTotal.WithLabelValues(metrics.ResultError).Inc()
	}
}
