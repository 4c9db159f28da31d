package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess    = "success"
	OutcomeIncomplete = "incomplete"
	OutcomeInvalidPDF = "invalid_pdf"
	OutcomeEmptyText  = "empty_vocabulary"
	OutcomeError      = "error"
)

// Metrics holds the analyser's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	analyses       *prometheus.CounterVec
	scores         prometheus.Histogram
	adviceMatched  *prometheus.CounterVec
	videosAttached prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_analyser_analyses_total",
			Help: "Total resume analyses by outcome",
		}, []string{"outcome"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "resume_analyser_match_score",
			Help:    "Distribution of TF-IDF match scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
		adviceMatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_analyser_advice_matched_total",
			Help: "Advice items returned, by advice text",
		}, []string{"advice"}),
		videosAttached: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resume_analyser_videos_attached_total",
			Help: "Videos attached to advice items",
		}),
	}

	reg.MustRegister(m.analyses, m.scores, m.adviceMatched, m.videosAttached)
	return m
}

func (m *Metrics) RecordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordResult(score float64, advice []string, videos int) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(OutcomeSuccess).Inc()
	m.scores.Observe(score)
	for _, a := range advice {
		m.adviceMatched.WithLabelValues(a).Inc()
	}
	m.videosAttached.Add(float64(videos))
}
