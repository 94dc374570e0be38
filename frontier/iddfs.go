package frontier

import (
	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

const (
	iddfsInitialDepthLimit = 50
	iddfsDepthIncrement    = 5
)

// IDDFS is iterative-deepening depth-first search: a depth-bounded LIFO
// stack. Nodes deeper than the current limit are not discarded — they are
// deferred into an overflow bucket keyed by depth. Once the active stack
// drains, the limit grows by iddfsDepthIncrement and every bucket at or
// below the new limit is reloaded onto the stack in one pass. This trades
// the repeated full re-exploration of textbook IDDFS for bookkeeping: a
// node is only ever generated once, just visited in multiple waves.
type IDDFS struct {
	stack       []*core.Node
	depthLimit  int
	overflow    map[int][]*core.Node
	hasOverflow bool
}

// NewIDDFS returns an empty IDDFS frontier starting at the initial depth
// limit.
func NewIDDFS() *IDDFS {
	return &IDDFS{depthLimit: iddfsInitialDepthLimit, overflow: make(map[int][]*core.Node)}
}

// Add implements Strategy.
func (d *IDDFS) Add(node *core.Node, _ heuristic.Heuristic) {
	if node.G <= d.depthLimit {
		d.stack = append(d.stack, node)

		return
	}

	d.overflow[node.G] = append(d.overflow[node.G], node)
	d.hasOverflow = true
}

// Next implements Strategy.
func (d *IDDFS) Next() *core.Node {
	if len(d.stack) == 0 && d.hasOverflow {
		d.depthLimit += iddfsDepthIncrement
		d.hasOverflow = false
		d.reloadUpToLimit()
	}

	n := len(d.stack) - 1
	node := d.stack[n]
	d.stack[n] = nil
	d.stack = d.stack[:n]

	return node
}

// HasNext implements Strategy.
func (d *IDDFS) HasNext() bool { return len(d.stack) > 0 || d.hasOverflow }

// Size implements Strategy.
func (d *IDDFS) Size() int {
	total := len(d.stack)
	for _, bucket := range d.overflow {
		total += len(bucket)
	}

	return total
}

// NeedsHeuristic implements Strategy.
func (d *IDDFS) NeedsHeuristic() bool { return false }

// CacheCost implements Strategy.
func (d *IDDFS) CacheCost() bool { return false }

// Name implements Strategy.
func (d *IDDFS) Name() string { return "IDDFS" }

func (d *IDDFS) reloadUpToLimit() {
	for depth := 0; depth <= d.depthLimit; depth++ {
		bucket, ok := d.overflow[depth]
		if !ok {
			continue
		}
		d.stack = append(d.stack, bucket...)
		delete(d.overflow, depth)
	}
}
