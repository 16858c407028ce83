package searcher

import "context"

// The searcher never produces or interprets reasoning text itself; it drives
// three externally supplied capabilities. Any backing implementation works:
// a remote model call, a local heuristic, or a test double.

// Generator proposes up to width candidate continuations of a reasoning
// state. Returning zero candidates signals a natural leaf, not an error.
type Generator interface {
	Generate(ctx context.Context, task string, state State, width int) ([]State, error)
}

// Evaluator scores how promising a candidate state is. Scores are expected
// in [0, 1]; the evaluation stage clamps anything outside that range.
type Evaluator interface {
	Evaluate(ctx context.Context, task string, state State) (float64, error)
}

// Synthesizer turns the best root-to-leaf path of states into the final
// user-facing answer. It is invoked exactly once, after the search completes.
type Synthesizer interface {
	Synthesize(ctx context.Context, task string, path []State) (string, error)
}
