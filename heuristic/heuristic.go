// Package heuristic provides deterministic local Generator, Evaluator and
// Synthesizer implementations. They stand in for a real reasoning backend in
// the CLI, the sweeps and the tests: candidate states are branch-choice
// strings and scores are pseudo-random but fixed for a fixed state and seed.
package heuristic

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"ponder/searcher"

	"golang.org/x/exp/rand"
)

const DefaultMaxDepth = 6

type Option func(*Capabilities)

// Capabilities implements all three searcher capabilities over a synthetic
// branching task.
type Capabilities struct {
	maxDepth int
	seed     uint64
}

func WithMaxDepth(depth int) Option {
	return func(c *Capabilities) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *Capabilities) {
		c.seed = seed
	}
}

func New(options ...Option) *Capabilities {
	c := &Capabilities{
		maxDepth: DefaultMaxDepth,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Root is the initial state descriptor for any task.
func Root() searcher.State {
	return ""
}

// Generate proposes width continuations by appending a branch index to the
// state. Past maxDepth it returns no candidates, which the searcher treats
// as a natural leaf.
func (c *Capabilities) Generate(ctx context.Context, task string, state searcher.State, width int) ([]searcher.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", searcher.ErrGeneration, err)
	}
	s, ok := state.(string)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected state type %T", searcher.ErrGeneration, state)
	}
	if depth(s) >= c.maxDepth {
		return nil, nil
	}

	candidates := make([]searcher.State, 0, width)
	for i := 0; i < width; i++ {
		candidates = append(candidates, extend(s, i))
	}
	return candidates, nil
}

// Evaluate maps a state to a score in [0, 1) that is fixed for a fixed
// task, state and seed.
func (c *Capabilities) Evaluate(ctx context.Context, task string, state searcher.State) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", searcher.ErrEvaluation, err)
	}
	s, ok := state.(string)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected state type %T", searcher.ErrEvaluation, state)
	}

	h := fnv.New64a()
	h.Write([]byte(task))
	h.Write([]byte{'|'})
	h.Write([]byte(s))
	rng := rand.New(rand.NewSource(h.Sum64() ^ c.seed))
	return rng.Float64(), nil
}

// Synthesize renders the chosen path as a human-readable trace.
func (c *Capabilities) Synthesize(ctx context.Context, task string, path []searcher.State) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	steps := make([]string, 0, len(path))
	for _, state := range path {
		s, ok := state.(string)
		if !ok {
			return "", fmt.Errorf("unexpected state type %T", state)
		}
		if s == "" {
			continue // root carries no choice
		}
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		return fmt.Sprintf("%s: no expansion possible", task), nil
	}
	return fmt.Sprintf("%s: %s", task, strings.Join(steps, " -> ")), nil
}

func depth(state string) int {
	if state == "" {
		return 0
	}
	return strings.Count(state, ".") + 1
}

func extend(state string, branch int) string {
	if state == "" {
		return fmt.Sprintf("%d", branch)
	}
	return fmt.Sprintf("%s.%d", state, branch)
}
