package metrics

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// SearchMetric summarizes one search run.
type SearchMetric struct {
	RunID       uuid.UUID
	Duration    time.Duration
	Iterations  int
	Expansions  int // nodes created by the expansion stage
	Evaluations int // children successfully scored
	Retries     int // capability calls that had to be retried
	TreeSize    int
	Degraded    bool
}

type Collector interface {
	Start()
	AddIteration()
	AddExpansion(children int)
	AddEvaluation()
	AddRetry()
	SetDegraded(value bool)
	SetTreeSize(size int)
	Complete() SearchMetric
}

// collector counts with atomics: the evaluation stage may report from a
// worker pool.
type collector struct {
	runID       uuid.UUID
	startTime   time.Time
	iterations  atomic.Int64
	expansions  atomic.Int64
	evaluations atomic.Int64
	retries     atomic.Int64
	treeSize    atomic.Int64
	degraded    atomic.Bool
}

func NewCollector() Collector {
	return &collector{runID: uuid.New()}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) AddExpansion(children int) {
	c.expansions.Add(int64(children))
}

func (c *collector) AddEvaluation() {
	c.evaluations.Add(1)
}

func (c *collector) AddRetry() {
	c.retries.Add(1)
}

func (c *collector) SetDegraded(value bool) {
	c.degraded.Store(value)
}

func (c *collector) SetTreeSize(size int) {
	c.treeSize.Store(int64(size))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		RunID:       c.runID,
		Duration:    time.Since(c.startTime),
		Iterations:  int(c.iterations.Load()),
		Expansions:  int(c.expansions.Load()),
		Evaluations: int(c.evaluations.Load()),
		Retries:     int(c.retries.Load()),
		TreeSize:    int(c.treeSize.Load()),
		Degraded:    c.degraded.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for runs that do not record
// metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start()                 {}
func (d *dummyCollector) AddIteration()          {}
func (d *dummyCollector) AddExpansion(int)       {}
func (d *dummyCollector) AddEvaluation()         {}
func (d *dummyCollector) AddRetry()              {}
func (d *dummyCollector) SetDegraded(bool)       {}
func (d *dummyCollector) SetTreeSize(int)        {}
func (d *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
