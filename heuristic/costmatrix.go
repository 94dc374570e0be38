package heuristic

import "github.com/katalvlaran/sokosolve/core"

// costMatrix is a row-major, flat-slice integer matrix holding L1 box-goal
// distances: the handful of dense-matrix plumbing that H2/H3/H4 need,
// without pulling in a general-purpose linear-algebra package for it.
type costMatrix struct {
	rows, cols int
	data       []int
}

func newCostMatrix(boxes, goals []core.Position) *costMatrix {
	m := &costMatrix{rows: len(boxes), cols: len(goals), data: make([]int, len(boxes)*len(goals))}
	for i, b := range boxes {
		for j, g := range goals {
			m.set(i, j, manhattan(b, g))
		}
	}

	return m
}

func (m *costMatrix) at(i, j int) int { return m.data[i*m.cols+j] }
func (m *costMatrix) set(i, j, v int) { m.data[i*m.cols+j] = v }

// unmatchedBoxesAndGoals returns the boxes not already on a goal and the
// full goal list; every heuristic here treats a box already on a goal as
// contributing zero to the estimate.
func unmatchedBoxesAndGoals(state *core.State) (boxes, goals []core.Position) {
	board := state.Board()
	for _, b := range state.Boxes() {
		if !board.IsGoal(b) {
			boxes = append(boxes, b)
		}
	}

	return boxes, board.Goals()
}
