package frontier

import "github.com/katalvlaran/sokosolve/core"

// pqItem is one entry in a priority queue ordered by (f, h, tie): f first,
// then h to prefer the node closer to the goal among equal-f entries, then
// insertion order so that equal-(f,h) nodes still come out in a
// deterministic, FIFO-within-tier order rather than whatever container/heap
// happens to leave on top.
type pqItem struct {
	f    float64
	h    float64
	tie  int
	node *core.Node
}

// priorityQueue is a container/heap min-heap of *pqItem. Modeled on the
// teacher's nodePQ shape (dijkstra's []*nodeItem with Len/Less/Swap/Push/Pop),
// generalized from a single int distance field to the (f, h, tie) ordering
// key A*/Greedy need.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].tie < pq[j].tie
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
