package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.BuildsTotal.WithLabelValues(ResultOK).Inc()
	m.ViolationsTotal.WithLabelValues("UnknownModule").Add(2)
	m.PublishesTotal.WithLabelValues(ResultCreated).Inc()
	m.LatestRevision.Set(3)
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/version/", "200").Inc()
	m.HTTPRequestDuration.WithLabelValues("GET", "/api/version/").Observe(0.01)
	m.RateLimitedTotal.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ViolationsTotal.WithLabelValues("UnknownModule")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.LatestRevision))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
