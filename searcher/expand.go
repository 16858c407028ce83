package searcher

import (
	"context"

	"github.com/rs/zerolog/log"
)

// expand asks the generator for candidate continuations of the target node
// and materializes each as a new child. It requests only the slots left
// under the expansion width, so a node never exceeds width children.
//
// Children are created only after a successful generator call: a failed call
// never leaves partial children in the tree. Zero candidates marks the node
// terminal, which is a natural leaf rather than an error.
func (s *Searcher) expand(ctx context.Context, task string, target NodeID) ([]NodeID, error) {
	n := s.tree.get(target)
	if n.terminal {
		return nil, nil
	}
	want := s.width - len(n.children)
	if want <= 0 {
		return nil, nil
	}

	var candidates []State
	var err error
	for attempt := 0; ; attempt++ {
		candidates, err = s.generator.Generate(ctx, task, n.state, want)
		if err == nil {
			break
		}
		if attempt >= s.maxRetries {
			return nil, &StageFailure{Stage: "expansion", Err: err}
		}
		s.metrics.AddRetry()
		log.Warn().Msgf("generator failed (attempt %d/%d), retrying: %v",
			attempt+1, s.maxRetries+1, err)
	}

	if len(candidates) == 0 {
		n.terminal = true
		return nil, nil
	}
	if len(candidates) > want {
		candidates = candidates[:want]
	}

	children := make([]NodeID, 0, len(candidates))
	for _, state := range candidates {
		id, err := s.tree.createChild(target, state)
		if err != nil {
			return nil, err
		}
		children = append(children, id)
	}
	s.metrics.AddExpansion(len(children))
	return children, nil
}
