package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/nao1215/paygate/internal/admission"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics は受付判定の結果件数を保持する。
// サーバーごとにレジストリを持つため、テストで複数のサーバーを生成しても衝突しない。
type metrics struct {
	registry *prometheus.Registry
	// outcomes は操作・結果種別ごとの件数。
	outcomes *prometheus.CounterVec
	// internalErrors は操作ごとの内部障害件数。
	internalErrors *prometheus.CounterVec
	// tokensIssued は発行したトークン数。
	tokensIssued prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Name:      "admission_outcomes_total",
			Help:      "Number of admission pipeline outcomes by operation and code.",
		}, []string{"operation", "code"}),
		internalErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Name:      "admission_internal_errors_total",
			Help:      "Number of admission pipeline runs aborted by an internal fault.",
		}, []string{"operation"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "paygate",
			Name:      "tokens_issued_total",
			Help:      "Number of access tokens issued.",
		}),
	}
	m.registry.MustRegister(
		m.outcomes,
		m.internalErrors,
		m.tokensIssued,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// observe は結果を1件記録する。
func (m *metrics) observe(operation string, code admission.Code) {
	m.outcomes.WithLabelValues(operation, code.String()).Inc()
}

// handler は /metrics のハンドラを返す。
func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
