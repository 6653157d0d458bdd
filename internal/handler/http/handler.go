package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/metrics"
	"github.com/MKhiriev/go-site-keeper/internal/service"
)

// maxBodyBytes caps the size of a submitted site document.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	// metrics is optional; a nil value disables request instrumentation.
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	rateLimit      int
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil gatherer serves the metrics of
// [prometheus.DefaultGatherer].
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		gatherer:       gatherer,
		rateLimit:      cfg.RateLimit,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
