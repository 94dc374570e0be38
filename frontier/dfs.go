package frontier

import (
	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

// DFS explores the most recently added node first: a LIFO stack. It finds a
// solution quickly in deep search spaces but gives no optimality guarantee.
type DFS struct {
	stack []*core.Node
}

// NewDFS returns an empty DFS frontier.
func NewDFS() *DFS { return &DFS{} }

// Add implements Strategy.
func (d *DFS) Add(node *core.Node, _ heuristic.Heuristic) {
	d.stack = append(d.stack, node)
}

// Next implements Strategy.
func (d *DFS) Next() *core.Node {
	n := len(d.stack) - 1
	node := d.stack[n]
	d.stack[n] = nil
	d.stack = d.stack[:n]

	return node
}

// HasNext implements Strategy.
func (d *DFS) HasNext() bool { return len(d.stack) > 0 }

// Size implements Strategy.
func (d *DFS) Size() int { return len(d.stack) }

// NeedsHeuristic implements Strategy.
func (d *DFS) NeedsHeuristic() bool { return false }

// CacheCost implements Strategy.
func (d *DFS) CacheCost() bool { return false }

// Name implements Strategy.
func (d *DFS) Name() string { return "DFS" }
