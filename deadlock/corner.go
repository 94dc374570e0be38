package deadlock

import "github.com/katalvlaran/sokosolve/core"

// isCornerDeadlock implements D1: box is wedged into one of the four
// L-shaped wall corners around it.
func isCornerDeadlock(pos core.Position, board *core.Board) bool {
	r, c := pos.Row, pos.Col

	corners := [4][2]core.Position{
		{{Row: r - 1, Col: c}, {Row: r, Col: c - 1}}, // top-left
		{{Row: r - 1, Col: c}, {Row: r, Col: c + 1}}, // top-right
		{{Row: r + 1, Col: c}, {Row: r, Col: c - 1}}, // bottom-left
		{{Row: r + 1, Col: c}, {Row: r, Col: c + 1}}, // bottom-right
	}
	for _, pair := range corners {
		if board.IsWall(pair[0]) && board.IsWall(pair[1]) {
			return true
		}
	}

	return false
}
