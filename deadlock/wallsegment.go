package deadlock

import "github.com/katalvlaran/sokosolve/core"

// isWallSegmentDeadlock implements D3: a box flush against a wall on one
// side is a deadlock if the wall segment it is part of closes off (reaches
// a perpendicular corner) on both ends without ever passing a goal cell.
//
// The horizontal scan (rowSegmentNoDoor) and the vertical scan
// (colSegmentDoorless) follow the same rule: each stops walking a side at a
// perpendicular corner, and each bails out (no deadlock) as soon as the side
// wall shows a gap ("door").
func isWallSegmentDeadlock(pos core.Position, board *core.Board) bool {
	r, c := pos.Row, pos.Col
	minR, maxR, minC, maxC := board.Bounds()

	if board.IsWall(core.Position{Row: r - 1, Col: c}) && rowSegmentNoDoor(board, r, c, -1, minC, maxC) {
		return true
	}
	if board.IsWall(core.Position{Row: r + 1, Col: c}) && rowSegmentNoDoor(board, r, c, +1, minC, maxC) {
		return true
	}
	if board.IsWall(core.Position{Row: r, Col: c - 1}) && colSegmentDoorless(board, c, r, -1, minR, maxR) {
		return true
	}
	if board.IsWall(core.Position{Row: r, Col: c + 1}) && colSegmentDoorless(board, c, r, +1, minR, maxR) {
		return true
	}

	return false
}

// rowSegmentNoDoor walks columns at the box's own row, requiring the wall
// at row+wallRowOffset to hold with no gap ("door") the entire way until
// the floor row itself turns into a wall (a corner) on each side.
func rowSegmentNoDoor(board *core.Board, row, colStart, wallRowOffset, minCol, maxCol int) bool {
	left := colStart
	for {
		if !board.IsWall(core.Position{Row: row + wallRowOffset, Col: left}) {
			return false // door found
		}
		if board.IsWall(core.Position{Row: row, Col: left - 1}) {
			break
		}
		left--
		if left < minCol-2 {
			return false
		}
	}

	right := colStart
	for {
		if !board.IsWall(core.Position{Row: row + wallRowOffset, Col: right}) {
			return false
		}
		if board.IsWall(core.Position{Row: row, Col: right + 1}) {
			break
		}
		right++
		if right > maxCol+2 {
			return false
		}
	}

	for cc := left; cc <= right; cc++ {
		if board.IsGoal(core.Position{Row: row, Col: cc}) {
			return false
		}
	}

	return true
}

// colSegmentDoorless walks rows at the box's own column, requiring the wall
// at col+adjColDelta to hold with no gap ("door") the entire way until a
// perpendicular corner is reached on each side.
func colSegmentDoorless(board *core.Board, col, rowStart, adjColDelta, minRow, maxRow int) bool {
	up := rowStart
	for {
		if !board.IsWall(core.Position{Row: up, Col: col + adjColDelta}) {
			return false // door found
		}
		if board.IsWall(core.Position{Row: up - 1, Col: col}) {
			break // superior corner
		}
		up--
		if up < minRow-2 {
			return false
		}
	}

	down := rowStart
	for {
		if !board.IsWall(core.Position{Row: down, Col: col + adjColDelta}) {
			return false
		}
		if board.IsWall(core.Position{Row: down + 1, Col: col}) {
			break // inferior corner
		}
		down++
		if down > maxRow+2 {
			return false
		}
	}

	for rr := up; rr <= down; rr++ {
		if board.IsGoal(core.Position{Row: rr, Col: col}) {
			return false
		}
	}

	return true
}
