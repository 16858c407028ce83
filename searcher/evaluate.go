package searcher

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// evaluation is one scored child ready for backpropagation.
type evaluation struct {
	id    NodeID
	score float64
}

// evaluate scores each newly created child independently. Scores are clamped
// to [0, 1]. A child whose evaluation fails after all retries is recorded as
// a single bad trial (terminal, visits=1, value=0) so it loses future
// selection competitions without invalidating its siblings.
//
// The second return value reports whether any child failed; the run is
// flagged degraded but keeps going unless the whole batch failed, in which
// case the batch escalates as a StageFailure.
func (s *Searcher) evaluate(ctx context.Context, task string, children []NodeID) ([]evaluation, bool, error) {
	if len(children) == 0 {
		return nil, false, nil
	}

	scores := make([]float64, len(children))
	errs := make([]error, len(children))
	if s.evalWorkers > 1 {
		// Children are mutually independent, so scoring fans out to a
		// bounded pool. The Wait below is the barrier: backpropagation
		// must not start until the full sibling batch is scored.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.evalWorkers)
		for i, id := range children {
			i, id := i, id
			g.Go(func() error {
				scores[i], errs[i] = s.scoreChild(gctx, task, id)
				return nil
			})
		}
		_ = g.Wait() // workers record per-child errors, never fail the group
	} else {
		for i, id := range children {
			scores[i], errs[i] = s.scoreChild(ctx, task, id)
		}
	}

	// Arena mutation happens only here, after the barrier, in insertion
	// order, keeping runs deterministic regardless of worker scheduling.
	scored := make([]evaluation, 0, len(children))
	failed := 0
	var lastErr error
	for i, id := range children {
		if errs[i] != nil {
			n := s.tree.get(id)
			n.terminal = true
			n.visits = 1
			n.value = 0
			failed++
			lastErr = errs[i]
			log.Warn().Msgf("evaluator gave up on node %d: %v", id, errs[i])
			continue
		}
		s.metrics.AddEvaluation()
		scored = append(scored, evaluation{id: id, score: clamp(scores[i])})
	}

	if failed == len(children) {
		return nil, true, &StageFailure{Stage: "evaluation", Err: lastErr}
	}
	return scored, failed > 0, nil
}

func (s *Searcher) scoreChild(ctx context.Context, task string, id NodeID) (float64, error) {
	state := s.tree.get(id).state
	var score float64
	var err error
	for attempt := 0; ; attempt++ {
		score, err = s.evaluator.Evaluate(ctx, task, state)
		if err == nil {
			return score, nil
		}
		if attempt >= s.maxRetries {
			return 0, err
		}
		s.metrics.AddRetry()
		log.Warn().Msgf("evaluator failed on node %d (attempt %d/%d), retrying: %v",
			id, attempt+1, s.maxRetries+1, err)
	}
}

func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
