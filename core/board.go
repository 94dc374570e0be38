package core

import "sort"

// Board is the static part of a puzzle: the set of wall positions and the
// set of goal positions. A Board never changes once built and is shared by
// reference across every State derived from it — it is not part of State
// identity (see State.Equal).
type Board struct {
	walls map[Position]struct{}
	goals map[Position]struct{}
}

// NewBoard builds a Board from the given wall and goal sets. The slices are
// copied into internal sets; the caller's slices may be reused afterwards.
func NewBoard(walls, goals []Position) *Board {
	b := &Board{
		walls: make(map[Position]struct{}, len(walls)),
		goals: make(map[Position]struct{}, len(goals)),
	}
	for _, p := range walls {
		b.walls[p] = struct{}{}
	}
	for _, p := range goals {
		b.goals[p] = struct{}{}
	}

	return b
}

// IsWall reports whether p is a wall cell.
func (b *Board) IsWall(p Position) bool {
	_, ok := b.walls[p]

	return ok
}

// IsGoal reports whether p is a goal cell.
func (b *Board) IsGoal(p Position) bool {
	_, ok := b.goals[p]

	return ok
}

// NumGoals returns |G|, the number of goal cells.
func (b *Board) NumGoals() int {
	return len(b.goals)
}

// Goals returns the goal positions in row-major sorted order.
func (b *Board) Goals() []Position {
	out := make([]Position, 0, len(b.goals))
	for p := range b.goals {
		out = append(out, p)
	}
	sortPositions(out)

	return out
}

// Walls returns the wall positions in row-major sorted order.
func (b *Board) Walls() []Position {
	out := make([]Position, 0, len(b.walls))
	for p := range b.walls {
		out = append(out, p)
	}
	sortPositions(out)

	return out
}

// Bounds returns the minimal axis-aligned rectangle enclosing every wall and
// goal cell: (minRow, maxRow, minCol, maxCol). Used by the deadlock oracle's
// wall-segment and aisle scans to bound their walks.
func (b *Board) Bounds() (minRow, maxRow, minCol, maxCol int) {
	first := true
	consider := func(p Position) {
		if first {
			minRow, maxRow, minCol, maxCol = p.Row, p.Row, p.Col, p.Col
			first = false

			return
		}
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	for p := range b.walls {
		consider(p)
	}
	for p := range b.goals {
		consider(p)
	}

	return minRow, maxRow, minCol, maxCol
}

func sortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}
