package metrics

import (
	"errors"
	"testing"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	c.Observe(simulation.Outcome{Success: true, StepsTaken: 12, Cleaned: []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}}})
	c.Observe(simulation.Outcome{
		StepsTaken: 100,
		Cleaned:    []grid.Position{{Row: 2, Col: 2}},
		Remaining:  []grid.Position{{Row: 3, Col: 3}, {Row: 4, Col: 4}},
		SinkErr:    errors.New("closed pipe"),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(OutcomeCleaned)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(OutcomeExhausted)))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.spotsClean))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.spotsLeft))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sinkErrors))
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	t.Run("Registering twice fails", func(t *testing.T) {
		_, err := New(reg)
		assert.Error(t, err)
	})
}
