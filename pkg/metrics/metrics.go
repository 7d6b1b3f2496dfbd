// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：请求总数、耗时、处理中的请求数（由middleware.Metrics记录）
//   - 目录指标：仓储提交结果、图片旁路操作结果
//
// 使用示例：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// CommitsTotal 仓储提交次数
	// 标签：entity（author/book/user）、result（success/no_rows/error）
	CommitsTotal *prometheus.CounterVec

	// ImageOperationsTotal 图片旁路操作次数
	// 标签：op（write/delete/read）、result（success/failure）
	ImageOperationsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标，重复调用无副作用
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 图书列表会内联图片，上限放宽到10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CommitsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_commits_total",
				Help: "仓储提交次数",
			},
			[]string{"entity", "result"},
		)

		ImageOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_image_operations_total",
				Help: "图片旁路操作次数",
			},
			[]string{"op", "result"},
		)
	})
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}

// RecordCommit 记录一次仓储提交
func RecordCommit(entity string, affected int64, err error) {
	result := "success"
	switch {
	case err != nil:
		result = "error"
	case affected == 0:
		result = "no_rows"
	}
	IncCounterVec(CommitsTotal, map[string]string{"entity": entity, "result": result})
}

// RecordImageOp 记录一次图片旁路操作
func RecordImageOp(op string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	IncCounterVec(ImageOperationsTotal, map[string]string{"op": op, "result": result})
}
