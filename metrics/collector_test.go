package metrics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("accumulates counts across a run", func(t *testing.T) {
		c := NewCollector()
		c.Start()

		c.AddIteration()
		c.AddIteration()
		c.AddExpansion(3)
		c.AddExpansion(2)
		c.AddEvaluation()
		c.AddRetry()
		c.SetDegraded(true)
		c.SetTreeSize(6)

		metric := c.Complete()
		require.Equal(t, 2, metric.Iterations, "Iterations should accumulate")
		require.Equal(t, 5, metric.Expansions, "Expansions should sum created children")
		require.Equal(t, 1, metric.Evaluations, "Evaluations should accumulate")
		require.Equal(t, 1, metric.Retries, "Retries should accumulate")
		require.Equal(t, 6, metric.TreeSize, "Tree size should be recorded")
		require.True(t, metric.Degraded, "Degradation should be recorded")
		require.NotEqual(t, uuid.Nil, metric.RunID, "Each collector should carry a run id")
		require.GreaterOrEqual(t, metric.Duration.Nanoseconds(), int64(0),
			"Duration should be measured from Start")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddIteration()
		c.SetDegraded(true)

		require.Equal(t, SearchMetric{}, c.Complete(),
			"Dummy collector should stay zero")
	})
}
