package deadlock

import "github.com/katalvlaran/sokosolve/core"

// isAisleEnd implements D4: pos sits on a cell that was pruned by the
// fixed-point "dead-end aisle" pass, and pos is not itself a goal.
func (d *Detector) isAisleEnd(pos core.Position, board *core.Board) bool {
	if board.IsGoal(pos) {
		return false
	}

	return d.prunedCells(board)[pos]
}

// prunedCells returns (computing and caching on first use) the set of
// non-goal floor cells that D4 prunes for board: starting from the walls,
// repeatedly mark any non-goal floor cell with 3 or more blocked neighbours
// (walls or already-marked cells) until no more cells change, a fixed-point
// flood fill grounded on gridgraph's ConnectedComponents/ExpandIsland
// iterate-to-fixed-point style over the board's bounding rectangle. Cached per
// board under a read-write lock so concurrent searches sharing a board
// compute it once.
func (d *Detector) prunedCells(board *core.Board) map[core.Position]bool {
	d.mu.RLock()
	if cached, ok := d.aisle[board]; ok {
		d.mu.RUnlock()

		return toBoolSet(cached)
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	if cached, ok := d.aisle[board]; ok {
		return toBoolSet(cached)
	}

	pruned := computeAislePrunedCells(board)
	if d.aisle == nil {
		d.aisle = make(map[*core.Board]map[core.Position]struct{})
	}
	d.aisle[board] = pruned

	return toBoolSet(pruned)
}

func toBoolSet(m map[core.Position]struct{}) map[core.Position]bool {
	out := make(map[core.Position]bool, len(m))
	for p := range m {
		out[p] = true
	}

	return out
}

var neighborDirs = [4]core.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// computeAislePrunedCells runs the D4 fixed-point scan once for board.
func computeAislePrunedCells(board *core.Board) map[core.Position]struct{} {
	minR, maxR, minC, maxC := board.Bounds()

	blocked := make(map[core.Position]struct{})
	for _, w := range board.Walls() {
		blocked[w] = struct{}{}
	}

	var floor []core.Position
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			p := core.Position{Row: r, Col: c}
			if !board.IsWall(p) {
				floor = append(floor, p)
			}
		}
	}

	isBlockedNeighbor := func(p core.Position) bool {
		if p.Row < minR || p.Row > maxR || p.Col < minC || p.Col > maxC {
			return true
		}
		_, ok := blocked[p]

		return ok
	}

	for changed := true; changed; {
		changed = false
		var toAdd []core.Position
		for _, p := range floor {
			if _, ok := blocked[p]; ok {
				continue
			}
			if board.IsGoal(p) {
				continue
			}
			count := 0
			for _, d := range neighborDirs {
				if isBlockedNeighbor(core.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}) {
					count++
				}
			}
			if count >= 3 {
				toAdd = append(toAdd, p)
			}
		}
		if len(toAdd) > 0 {
			for _, p := range toAdd {
				blocked[p] = struct{}{}
			}
			changed = true
		}
	}

	pruned := make(map[core.Position]struct{})
	for p := range blocked {
		if !board.IsWall(p) {
			pruned[p] = struct{}{}
		}
	}

	return pruned
}
