package frontier

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

// AStar orders nodes by f = g + h, the path cost so far plus the heuristic
// estimate of what remains. Optimal whenever h is admissible. A node whose
// heuristic evaluates to +Inf is a provable dead end and is dropped on Add
// rather than ever entering the queue.
type AStar struct {
	pq  priorityQueue
	tie int
}

// NewAStar returns an empty A* frontier.
func NewAStar() *AStar { return &AStar{} }

// Add implements Strategy.
func (a *AStar) Add(node *core.Node, h heuristic.Heuristic) {
	hVal := h.Calculate(node.State)
	if math.IsInf(hVal, 1) {
		return
	}

	a.tie++
	heap.Push(&a.pq, &pqItem{f: float64(node.G) + hVal, h: hVal, tie: a.tie, node: node})
}

// Next implements Strategy.
func (a *AStar) Next() *core.Node {
	return heap.Pop(&a.pq).(*pqItem).node
}

// HasNext implements Strategy.
func (a *AStar) HasNext() bool { return a.pq.Len() > 0 }

// Size implements Strategy.
func (a *AStar) Size() int { return a.pq.Len() }

// NeedsHeuristic implements Strategy.
func (a *AStar) NeedsHeuristic() bool { return true }

// CacheCost implements Strategy.
func (a *AStar) CacheCost() bool { return true }

// Name implements Strategy.
func (a *AStar) Name() string { return "ASTAR" }
