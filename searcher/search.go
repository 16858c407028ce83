package searcher

import (
	"context"
	"errors"

	"ponder/metrics"

	"github.com/rs/zerolog/log"
)

// DefaultExpansionWidth bounds how many children one expansion may create.
const DefaultExpansionWidth = 3

// DefaultStageRetries is how many times a stage re-asks a failing capability
// before escalating.
const DefaultStageRetries = 1

type Option func(*Searcher)

// Searcher drives a budgeted best-first search over a tree of reasoning
// states: select a target, expand it through the generator, score the new
// children through the evaluator, and backpropagate each score to the root.
// One Searcher owns one tree per run and must not be shared across
// concurrent runs.
type Searcher struct {
	generator   Generator
	evaluator   Evaluator
	iterations  int
	width       int
	exploration float64
	maxRetries  int
	evalWorkers int
	metrics     metrics.Collector

	tree  *arena
	phase phase
}

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseExhausted
	phaseFailed
	phaseCompleted
)

func WithIterations(iterations int) Option {
	return func(s *Searcher) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

func WithExpansionWidth(width int) Option {
	return func(s *Searcher) {
		if width > 0 {
			s.width = width
		}
	}
}

func WithExplorationConstant(c float64) Option {
	return func(s *Searcher) {
		if c >= 0 {
			s.exploration = c
		}
	}
}

func WithStageRetries(retries int) Option {
	return func(s *Searcher) {
		if retries >= 0 {
			s.maxRetries = retries
		}
	}
}

// WithEvalWorkers bounds the worker pool for sibling evaluation. Values
// above 1 enable parallel scoring; backpropagation still waits for the
// whole batch.
func WithEvalWorkers(workers int) Option {
	return func(s *Searcher) {
		if workers > 0 {
			s.evalWorkers = workers
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func NewSearcher(generator Generator, evaluator Evaluator, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		generator:   generator,
		evaluator:   evaluator,
		width:       DefaultExpansionWidth,
		exploration: DefaultExplorationConstant,
		maxRetries:  DefaultStageRetries,
		evalWorkers: 1,
		metrics:     metrics.NewDummyCollector(),
		phase:       phaseIdle,
	}
	for _, option := range options {
		option(s)
	}
	if s.generator == nil || s.evaluator == nil {
		panic("Must supply a generator and an evaluator")
	}
	if s.iterations <= 0 {
		panic("Must specify a positive iteration budget")
	}
	return s
}

// SearchResult is the controller's output: the root-to-leaf node ids of the
// best path, the matching states, and the leaf's average value. Degraded
// marks a result extracted from a partial tree after a stage failure.
type SearchResult struct {
	Path     []NodeID
	States   []State
	Value    float64
	Degraded bool
}

// Run executes the full search over a fresh tree seeded with the task's
// initial state, then extracts the best path. Cancellation is checked once
// per iteration boundary and completes the run over whatever tree exists,
// exactly like budget exhaustion.
//
// A StageFailure never surfaces as a hard error: the run degrades to a
// best-effort result over the partial tree. Only arena misuse
// (UnknownNodeError) fails hard.
func (s *Searcher) Run(ctx context.Context, task string, root State) (SearchResult, error) {
	s.tree = newArena()
	rootID, err := s.tree.createRoot(root)
	if err != nil {
		return SearchResult{}, err
	}
	s.phase = phaseRunning
	s.metrics.Start()

	degraded := false
	for i := 0; i < s.iterations; i++ {
		if ctx.Err() != nil {
			log.Info().Msgf("search cancelled after %d iterations", i)
			break
		}
		if err := s.step(ctx, task, rootID, &degraded); err != nil {
			var stage *StageFailure
			if !errors.As(err, &stage) {
				return SearchResult{}, err
			}
			degraded = true
			s.phase = phaseFailed
			log.Warn().Msgf("degrading to best-effort result: %v", err)
			break
		}
		s.metrics.AddIteration()
	}
	if s.phase == phaseRunning {
		s.phase = phaseExhausted
	}

	result, err := s.bestPath(rootID)
	if err != nil {
		return SearchResult{}, err
	}
	result.Degraded = degraded

	s.metrics.SetDegraded(degraded)
	s.metrics.SetTreeSize(s.tree.size())
	s.phase = phaseCompleted
	log.Info().Msgf("search completed: %d nodes, path depth %d, leaf value %.3f",
		s.tree.size(), len(result.Path), result.Value)
	return result, nil
}

// step runs one select/expand/evaluate/backpropagate cycle.
func (s *Searcher) step(ctx context.Context, task string, root NodeID, degraded *bool) error {
	target := s.selectTarget(root)

	children, err := s.expand(ctx, task, target)
	if err != nil {
		return err
	}

	scored, anyFailed, err := s.evaluate(ctx, task, children)
	if anyFailed {
		*degraded = true
	}
	if err != nil {
		return err
	}

	for _, e := range scored {
		if err := s.backpropagate(e.id, e.score); err != nil {
			return err
		}
	}
	return nil
}

// bestPath walks from the root following the child with the highest visit
// count at each level, stopping at a childless or terminal node. Visits
// rather than average value decide the walk, favoring well-sampled branches
// over lucky-but-rarely-tried ones; ties resolve to the first-inserted
// child.
func (s *Searcher) bestPath(root NodeID) (SearchResult, error) {
	id := root
	for {
		n := s.tree.get(id)
		if n.terminal || len(n.children) == 0 {
			break
		}
		best := n.children[0]
		bestVisits := s.tree.get(best).visits
		for _, cid := range n.children[1:] {
			if v := s.tree.get(cid).visits; v > bestVisits {
				best, bestVisits = cid, v
			}
		}
		id = best
	}

	path, err := s.tree.pathFromRoot(id)
	if err != nil {
		return SearchResult{}, err
	}
	states := make([]State, len(path))
	for i, nid := range path {
		states[i] = s.tree.get(nid).state
	}
	return SearchResult{
		Path:   path,
		States: states,
		Value:  s.tree.get(id).averageValue(),
	}, nil
}
