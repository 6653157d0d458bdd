package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/metrics"
	"github.com/MKhiriev/go-site-keeper/internal/mock"
	"github.com/MKhiriev/go-site-keeper/internal/service"
)

type testHandler struct {
	*Handler
	router     http.Handler
	siteConfig *mock.MockSiteConfigService
	auth       *mock.MockAuthService
	appInfo    *mock.MockAppInfoService
	metrics    *metrics.Metrics
}

func newTestHandler(t *testing.T, rateLimit int) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		siteConfig: mock.NewMockSiteConfigService(ctrl),
		auth:       mock.NewMockAuthService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	reg := prometheus.NewRegistry()
	th.metrics = metrics.New(reg)
	th.Handler = NewHandler(&service.Services{
		SiteConfigService: th.siteConfig,
		AuthService:       th.auth,
		AppInfoService:    th.appInfo,
	}, config.Server{RateLimit: rateLimit, RequestTimeout: 5 * time.Second}, th.metrics, reg, logger.Nop())
	th.router = th.Init()

	return th
}

func (th *testHandler) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	th.router.ServeHTTP(rr, req)
	return rr
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
