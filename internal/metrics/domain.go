package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"feedback_service/internal/domain"
)

// DomainMetrics counts classification and moderation outcomes.
type DomainMetrics struct {
	Classifications *prometheus.CounterVec
	Moderations     *prometheus.CounterVec
	ReviewBacklog   prometheus.Gauge
}

func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	m := &DomainMetrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Total number of classified feedback bodies, by sentiment.",
		}, []string{"sentiment"}),
		Moderations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderations_total",
			Help:      "Total number of committed moderation decisions, by action.",
		}, []string{"action"}),
		ReviewBacklog: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "review_backlog",
			Help:      "Feedback items under review past the backlog threshold at the last worker run.",
		}),
	}

	reg.MustRegister(m.Classifications, m.Moderations, m.ReviewBacklog)
	return m
}

func (m *DomainMetrics) ObserveClassification(sentiment domain.Sentiment) {
	m.Classifications.WithLabelValues(string(sentiment)).Inc()
}

func (m *DomainMetrics) ObserveModeration(action domain.ModerationAction) {
	m.Moderations.WithLabelValues(string(action)).Inc()
}

func (m *DomainMetrics) SetReviewBacklog(n int) {
	m.ReviewBacklog.Set(float64(n))
}
