package heuristic

import "github.com/katalvlaran/sokosolve/core"

// GreedyMatch is H2: repeatedly pick the smallest remaining box-goal L1
// distance, add it to the total, and forbid that box's row and that goal's
// column from further consideration. Not guaranteed to find the minimum
// matching and not admissible in general.
type GreedyMatch struct{}

// Calculate implements Heuristic.
func (GreedyMatch) Calculate(state *core.State) float64 {
	boxes, goals := unmatchedBoxesAndGoals(state)
	if len(boxes) == 0 {
		return 0
	}

	m := newCostMatrix(boxes, goals)
	rowUsed := make([]bool, m.rows)
	colUsed := make([]bool, m.cols)

	total := 0
	for matched := 0; matched < len(boxes) && matched < len(goals); matched++ {
		bestRow, bestCol, bestCost := -1, -1, -1
		for i := 0; i < m.rows; i++ {
			if rowUsed[i] {
				continue
			}
			for j := 0; j < m.cols; j++ {
				if colUsed[j] {
					continue
				}
				c := m.at(i, j)
				if bestRow < 0 || c < bestCost {
					bestRow, bestCol, bestCost = i, j, c
				}
			}
		}
		if bestRow < 0 {
			break
		}
		rowUsed[bestRow] = true
		colUsed[bestCol] = true
		total += bestCost
	}

	return float64(total)
}

// Name implements Heuristic.
func (GreedyMatch) Name() string { return "GREEDY_MATCH" }
