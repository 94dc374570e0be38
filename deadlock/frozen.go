package deadlock

import "github.com/katalvlaran/sokosolve/core"

// isFrozenSquareDeadlock implements D2: pos participates in a 2x2 block
// where all four cells hold a box and none is a goal.
func isFrozenSquareDeadlock(pos core.Position, boxes []core.Position, board *core.Board) bool {
	r, c := pos.Row, pos.Col
	squares := [4][4]core.Position{
		{{r, c}, {r, c + 1}, {r + 1, c}, {r + 1, c + 1}},         // pos top-left
		{{r - 1, c - 1}, {r - 1, c}, {r, c - 1}, {r, c}},         // pos bottom-right
		{{r - 1, c}, {r - 1, c + 1}, {r, c}, {r, c + 1}},         // pos bottom-left
		{{r, c - 1}, {r, c}, {r + 1, c - 1}, {r + 1, c}},         // pos top-right
	}

	for _, square := range squares {
		allBoxes := true
		anyGoal := false
		for _, p := range square {
			if !containsPosition(boxes, p) {
				allBoxes = false
				break
			}
			if board.IsGoal(p) {
				anyGoal = true
			}
		}
		if allBoxes && !anyGoal {
			return true
		}
	}

	return false
}

func containsPosition(ps []core.Position, target core.Position) bool {
	for _, p := range ps {
		if p == target {
			return true
		}
	}

	return false
}
