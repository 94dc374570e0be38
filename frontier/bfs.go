package frontier

import (
	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

// BFS explores nodes in the order they were added: a FIFO queue. It finds
// the shortest action sequence (in edge count) whenever one exists.
type BFS struct {
	queue []*core.Node
	head  int
}

// NewBFS returns an empty BFS frontier.
func NewBFS() *BFS { return &BFS{} }

// Add implements Strategy.
func (b *BFS) Add(node *core.Node, _ heuristic.Heuristic) {
	b.queue = append(b.queue, node)
}

// Next implements Strategy.
func (b *BFS) Next() *core.Node {
	node := b.queue[b.head]
	b.queue[b.head] = nil
	b.head++
	if b.head > 64 && b.head*2 > len(b.queue) {
		b.queue = append([]*core.Node(nil), b.queue[b.head:]...)
		b.head = 0
	}

	return node
}

// HasNext implements Strategy.
func (b *BFS) HasNext() bool { return b.head < len(b.queue) }

// Size implements Strategy.
func (b *BFS) Size() int { return len(b.queue) - b.head }

// NeedsHeuristic implements Strategy.
func (b *BFS) NeedsHeuristic() bool { return false }

// CacheCost implements Strategy.
func (b *BFS) CacheCost() bool { return false }

// Name implements Strategy.
func (b *BFS) Name() string { return "BFS" }
