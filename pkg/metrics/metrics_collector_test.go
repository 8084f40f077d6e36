package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsCollector(reg)

	m.RecordHTTPRequest(http.MethodGet, "/feeds", 200, 15*time.Millisecond, 512)
	m.RecordHTTPRequest(http.MethodGet, "/feeds", 200, 5*time.Millisecond, 0)
	m.RecordStatusBatch("liked", 5, time.Millisecond)
	m.RecordStatusBatch("bookmarked", 5, time.Millisecond)
	m.RecordStatusBatch("liked", 3, time.Millisecond)

	assert.Equal(t, float64(2), counterValue(t, reg, "http_requests_total",
		map[string]string{"method": "GET", "endpoint": "/feeds", "status": "200"}))
	assert.Equal(t, float64(2), counterValue(t, reg, "feed_status_batch_total", map[string]string{"kind": "liked"}))
	assert.Equal(t, float64(1), counterValue(t, reg, "feed_status_batch_total", map[string]string{"kind": "bookmarked"}))
}
