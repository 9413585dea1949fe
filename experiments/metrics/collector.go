package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Budget    time.Duration
	Duration  time.Duration
	MaxDepth  int   // Depth cap the search was allowed
	Depth     int   // Deepest iteration that scanned every root move
	Nodes     int64 // Positions expanded or evaluated
	Cutoffs   int64 // Alpha-beta cuts
	TieBreaks int64 // Equal-score root moves that replaced the incumbent
	Score     int   // Score of the returned move from the mover's perspective
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(budget time.Duration, maxDepth int)
	AddNode()
	AddCutoff()
	AddTieBreak()
	CompleteDepth(depth int)
	Complete(score int) SearchMetric
}

type collector struct {
	budget    time.Duration
	maxDepth  int
	startTime time.Time
	depth     atomic.Int32
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	tieBreaks atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(budget time.Duration, maxDepth int) {
	m.startTime = time.Now()
	m.budget = budget
	m.maxDepth = maxDepth
	m.depth.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.tieBreaks.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddTieBreak() {
	m.tieBreaks.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Budget:    m.budget,
		Duration:  time.Since(m.startTime),
		MaxDepth:  m.maxDepth,
		Depth:     int(m.depth.Load()),
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		TieBreaks: m.tieBreaks.Load(),
		Score:     score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(budget time.Duration, maxDepth int) {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) AddCutoff()                               {}
func (m *dummyCollector) AddTieBreak()                             {}
func (m *dummyCollector) CompleteDepth(depth int)                  {}
func (m *dummyCollector) Complete(score int) SearchMetric          { return SearchMetric{Score: score} }
