package frontier

import (
	"container/heap"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

// Greedy orders nodes by heuristic value alone, ignoring path cost so far.
// Fast in practice but neither optimal nor complete under an inadmissible
// heuristic.
type Greedy struct {
	pq  priorityQueue
	tie int
}

// NewGreedy returns an empty Greedy frontier.
func NewGreedy() *Greedy { return &Greedy{} }

// Add implements Strategy.
func (g *Greedy) Add(node *core.Node, h heuristic.Heuristic) {
	score := h.Calculate(node.State)
	g.tie++
	heap.Push(&g.pq, &pqItem{f: score, h: score, tie: g.tie, node: node})
}

// Next implements Strategy.
func (g *Greedy) Next() *core.Node {
	return heap.Pop(&g.pq).(*pqItem).node
}

// HasNext implements Strategy.
func (g *Greedy) HasNext() bool { return g.pq.Len() > 0 }

// Size implements Strategy.
func (g *Greedy) Size() int { return g.pq.Len() }

// NeedsHeuristic implements Strategy.
func (g *Greedy) NeedsHeuristic() bool { return true }

// CacheCost implements Strategy.
func (g *Greedy) CacheCost() bool { return false }

// Name implements Strategy.
func (g *Greedy) Name() string { return "GREEDY" }
