package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "token_srv"

	modeDecode = "decode"
	modeAccess = "access"

	resultValid   = "valid"
	resultExpired = "expired"
	resultInvalid = "invalid"
)

type metrics struct {
	issued        prometheus.Counter
	verifications *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		issued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tokens_issued_total",
			Help:      "Number of tokens issued.",
		}),
		verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "token_verifications_total",
			Help:      "Number of token verifications by mode and result.",
		}, []string{"mode", "result"}),
	}
}

func (m *metrics) observeVerification(mode, result string) {
	m.verifications.WithLabelValues(mode, result).Inc()
}
