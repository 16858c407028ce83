package heuristic

import (
	"context"
	"testing"

	"ponder/searcher"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("extends the state with branch indices", func(t *testing.T) {
		caps := New()

		children, err := caps.Generate(context.Background(), "task", Root(), 3)

		require.NoError(t, err, "Generation should succeed")
		require.Equal(t, []searcher.State{"0", "1", "2"}, children,
			"Root children should be bare branch indices")

		grandchildren, err := caps.Generate(context.Background(), "task", children[1], 2)
		require.NoError(t, err, "Generation should succeed")
		require.Equal(t, []searcher.State{"1.0", "1.1"}, grandchildren,
			"Deeper children should append to the lineage")
	})

	t.Run("returns no candidates past the depth limit", func(t *testing.T) {
		caps := New(WithMaxDepth(2))

		children, err := caps.Generate(context.Background(), "task", "0.1", 3)

		require.NoError(t, err, "A natural leaf is not an error")
		require.Empty(t, children, "Depth-limited states should not expand")
	})

	t.Run("rejects a foreign state type", func(t *testing.T) {
		caps := New()

		_, err := caps.Generate(context.Background(), "task", 42, 3)

		require.ErrorIs(t, err, searcher.ErrGeneration,
			"Foreign states should fail as generation failures")
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("is deterministic for a fixed task, state and seed", func(t *testing.T) {
		caps := New(WithSeed(7))

		first, err := caps.Evaluate(context.Background(), "task", "0.1")
		require.NoError(t, err, "Evaluation should succeed")
		second, err := caps.Evaluate(context.Background(), "task", "0.1")
		require.NoError(t, err, "Evaluation should succeed")

		require.Equal(t, first, second, "Same input should score the same")
		require.GreaterOrEqual(t, first, 0.0, "Scores should stay in range")
		require.Less(t, first, 1.0, "Scores should stay in range")
	})

	t.Run("varies across states and seeds", func(t *testing.T) {
		caps := New(WithSeed(7))
		other := New(WithSeed(8))

		a, err := caps.Evaluate(context.Background(), "task", "0")
		require.NoError(t, err, "Evaluation should succeed")
		b, err := caps.Evaluate(context.Background(), "task", "1")
		require.NoError(t, err, "Evaluation should succeed")
		c, err := other.Evaluate(context.Background(), "task", "0")
		require.NoError(t, err, "Evaluation should succeed")

		require.NotEqual(t, a, b, "Different states should score differently")
		require.NotEqual(t, a, c, "Different seeds should score differently")
	})
}

func TestSynthesize(t *testing.T) {
	t.Run("renders the path as a trace", func(t *testing.T) {
		caps := New()

		got, err := caps.Synthesize(context.Background(), "task",
			[]searcher.State{"", "1", "1.0", "1.0.2"})

		require.NoError(t, err, "Synthesis should succeed")
		require.Equal(t, "task: 1 -> 1.0 -> 1.0.2", got,
			"Trace should skip the root and join the choices")
	})

	t.Run("handles a root-only path", func(t *testing.T) {
		caps := New()

		got, err := caps.Synthesize(context.Background(), "task", []searcher.State{""})

		require.NoError(t, err, "Synthesis should succeed")
		require.Equal(t, "task: no expansion possible", got,
			"A bare root should say so")
	})
}
