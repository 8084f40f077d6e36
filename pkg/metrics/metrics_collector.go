package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector 指标收集器
type MetricsCollector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpResponseSize    *prometheus.HistogramVec

	// 状态聚合指标
	statusBatchTotal    *prometheus.CounterVec
	statusBatchIDs      *prometheus.HistogramVec
	statusBatchDuration *prometheus.HistogramVec

	reg prometheus.Registerer
}

// NewMetricsCollector 创建指标收集器，reg 为 nil 时使用默认注册表
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &MetricsCollector{
		reg: reg,

		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpResponseSize: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "endpoint"},
		),

		statusBatchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_status_batch_total",
				Help: "Number of batched liked/bookmarked membership lookups",
			},
			[]string{"kind"},
		),

		statusBatchIDs: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "feed_status_batch_ids",
				Help:    "Feed ids per batched membership lookup",
				Buckets: []float64{1, 5, 10, 20, 50, 100},
			},
			[]string{"kind"},
		),

		statusBatchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "feed_status_batch_duration_seconds",
				Help:    "Batched membership lookup duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"kind"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration, responseSize int) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	if responseSize > 0 {
		m.httpResponseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
	}
}

// RecordStatusBatch 记录一次批量点赞/收藏状态查询
func (m *MetricsCollector) RecordStatusBatch(kind string, ids int, duration time.Duration) {
	m.statusBatchTotal.WithLabelValues(kind).Inc()
	m.statusBatchIDs.WithLabelValues(kind).Observe(float64(ids))
	m.statusBatchDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// WatchDB 导出连接池统计
func (m *MetricsCollector) WatchDB(db *sql.DB, name string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, name))
}
