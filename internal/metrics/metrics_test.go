package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordResult(0.42, []string{"a", "b"}, 1)
	m.RecordResult(0.9, []string{"a"}, 1)
	m.RecordOutcome(OutcomeInvalidPDF)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues(OutcomeInvalidPDF)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.adviceMatched.WithLabelValues("a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adviceMatched.WithLabelValues("b")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.videosAttached))
	assert.Equal(t, 1, testutil.CollectAndCount(m.scores))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordOutcome(OutcomeError)
		m.RecordResult(1, []string{"a"}, 1)
	})
}
