package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/site-config", func(r chi.Router) {
		r.Get("/latest", h.latest)
		r.Get("/latest/head", h.head)
		r.Get("/revisions", h.history)
		r.Get("/revisions/{id}", h.revision)

		// writes are rate limited per client IP
		r.Group(func(r chi.Router) {
			r.Use(h.writeRateLimit())
			r.Post("/validate", h.validate)

			r.With(h.auth).Post("/", h.publish)
		})
	})

	router.Get("/preview", h.preview)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

// writeRateLimit allows h.rateLimit write requests per minute and client IP.
func (h *Handler) writeRateLimit() func(http.Handler) http.Handler {
	limit := h.rateLimit
	if limit < 1 {
		limit = 1
	}

	return httprate.Limit(limit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if h.metrics != nil {
				h.metrics.RateLimitedTotal.Inc()
			}
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusTooManyRequests)}, http.StatusTooManyRequests)
		}),
	)
}
