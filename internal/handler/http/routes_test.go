package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-keeper/models"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func TestInit_Version(t *testing.T) {
	th := newTestHandler(t, 100)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := th.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	th := newTestHandler(t, 100)

	for _, path := range []string{"/", "/api", "/api/site-config/nope", "/api/user/login"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, th.do(httptest.NewRequest(http.MethodGet, path, nil)).Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	th := newTestHandler(t, 100)

	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/api/version/"},
		{method: http.MethodDelete, path: "/api/site-config/latest"},
		{method: http.MethodPut, path: "/api/site-config/revisions/0190b1d2-7c3e-7000-8000-000000000001"},
		{method: http.MethodGet, path: "/api/site-config/validate"},
		{method: http.MethodGet, path: "/api/site-config/"},
		{method: http.MethodDelete, path: "/api/site-config/"},
		{method: http.MethodPost, path: "/preview"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := th.do(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	th := newTestHandler(t, 100)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").Times(2)

	rr := th.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr = th.do(req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	th := newTestHandler(t, 100)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v")

	th.do(httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(th.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/version/", "200")))

	rr := th.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "site_keeper_http_requests_total")
}

func TestInit_WritesAreRateLimited(t *testing.T) {
	th := newTestHandler(t, 2)
	th.siteConfig.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(models.Configuration{}, nil).Times(2)

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, th.do(newJSONRequest(http.MethodPost, "/api/site-config/validate", `{}`)).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1.0, testutil.ToFloat64(th.metrics.RateLimitedTotal))
}

func TestInit_ReadsAreNotRateLimited(t *testing.T) {
	th := newTestHandler(t, 1)
	th.siteConfig.EXPECT().Latest(gomock.Any()).Return(models.Revision{}, nil).Times(3)

	for range 3 {
		assert.Equal(t, http.StatusOK, th.do(httptest.NewRequest(http.MethodGet, "/api/site-config/latest", nil)).Code)
	}
}
