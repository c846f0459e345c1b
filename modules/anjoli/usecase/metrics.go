package usecase

import (
	"time"

	"github.com/durgadao/anjoli-custody/modules/anjoli/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
)

const metricsNamespace = "anjoli"

type metrics struct {
	invocations       *prometheus.CounterVec
	invocationSeconds *prometheus.HistogramVec
	tokensDistributed prometheus.Counter
	valueReceived     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "invocations_total",
			Help:      "Number of contract invocations by operation and result code",
		}, []string{"operation", "result"}),
		invocationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "invocation_duration_seconds",
			Help:      "Duration of contract invocations including commit",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		tokensDistributed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tokens_distributed_total",
			Help:      "Asset units sent to donors by committed donations",
		}),
		valueReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "value_received_total",
			Help:      "Value units received by committed donations",
		}),
	}
	reg.MustRegister(m.invocations, m.invocationSeconds, m.tokensDistributed, m.valueReceived)
	return m
}

func (m *metrics) observeInvocation(op entity.Operation, code string, duration time.Duration) {
	m.invocations.WithLabelValues(string(op), lo.Ternary(code == "", "ok", code)).Inc()
	m.invocationSeconds.WithLabelValues(string(op)).Observe(duration.Seconds())
}

func (m *metrics) observeDonation(donation entity.Donation) {
	m.tokensDistributed.Add(float64(donation.Tokens))
	m.valueReceived.Add(float64(donation.Amount))
}
