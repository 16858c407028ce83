package agent

import (
	"context"
	"fmt"

	"ponder/searcher"
)

// Reasoner runs a budgeted tree search over a task and hands the best path
// to a synthesizer for the final user-facing answer.
type Reasoner struct {
	searcher    *searcher.Searcher
	synthesizer searcher.Synthesizer
}

// Answer is the synthesized result together with the search statistics a
// caller may want to surface.
type Answer struct {
	Text     string
	Value    float64
	Path     []searcher.NodeID
	Degraded bool
}

func New(s *searcher.Searcher, synthesizer searcher.Synthesizer) *Reasoner {
	if s == nil || synthesizer == nil {
		panic("Must supply a searcher and a synthesizer")
	}
	return &Reasoner{searcher: s, synthesizer: synthesizer}
}

// Solve searches from the given root state and synthesizes the best path.
// The synthesizer is invoked exactly once, after the search completes; a
// degraded search still synthesizes whatever path the partial tree yields.
func (r *Reasoner) Solve(ctx context.Context, task string, root searcher.State) (Answer, error) {
	result, err := r.searcher.Run(ctx, task, root)
	if err != nil {
		return Answer{}, fmt.Errorf("search failed: %w", err)
	}

	text, err := r.synthesizer.Synthesize(ctx, task, result.States)
	if err != nil {
		return Answer{}, fmt.Errorf("synthesis failed: %w", err)
	}

	return Answer{
		Text:     text,
		Value:    result.Value,
		Path:     result.Path,
		Degraded: result.Degraded,
	}, nil
}
