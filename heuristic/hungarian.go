package heuristic

import (
	"math"

	"github.com/katalvlaran/sokosolve/core"
)

// Hungarian is H3: the minimum-cost perfect bipartite matching between
// unmatched boxes and goals under L1 distance. Tighter (and more expensive)
// than GreedyMatch; admissible, since it is the true minimum-cost matching
// and every solution must move each box to some distinct goal.
type Hungarian struct{}

// Calculate implements Heuristic.
func (Hungarian) Calculate(state *core.State) float64 {
	boxes, goals := unmatchedBoxesAndGoals(state)
	if len(boxes) == 0 {
		return 0
	}

	return float64(minCostMatching(newCostMatrix(boxes, goals)))
}

// Name implements Heuristic.
func (Hungarian) Name() string { return "PERFECTMATCH" }

// minCostMatching solves the square assignment problem with the classical
// O(n^3) dual-potential augmenting-path algorithm: pad the rectangular
// box-goal cost matrix to square with zero-cost dummy rows/columns, run the
// shortest-augmenting-path iteration (the same potential/slack/trail shape
// as a textbook Hungarian-algorithm solver over a square cost matrix), then
// sum only the costs of real box-to-real-goal pairs.
func minCostMatching(m *costMatrix) int {
	n := m.rows
	if m.cols > n {
		n = m.cols
	}
	if n == 0 {
		return 0
	}

	cost := make([][]int, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i < m.rows && j < m.cols {
				cost[i][j] = m.at(i, j)
			}
		}
	}

	const inf = math.MaxInt32 / 2
	u := make([]int, n+1)
	v := make([]int, n+1)
	// matchOfCol[j] = row matched to column j (1-indexed), 0 means unmatched.
	matchOfCol := make([]int, n+1)
	for row := 1; row <= n; row++ {
		matchOfCol[0] = row
		col := 0
		dist := make([]int, n+1)
		prevCol := make([]int, n+1)
		visited := make([]bool, n+1)
		for j := range dist {
			dist[j] = inf
		}

		for {
			visited[col] = true
			r := matchOfCol[col]
			bestDelta := inf
			bestCol := -1
			for j := 1; j <= n; j++ {
				if visited[j] {
					continue
				}
				c := cost[r-1][j-1] - u[r] - v[j]
				if c < dist[j] {
					dist[j] = c
					prevCol[j] = col
				}
				if dist[j] < bestDelta {
					bestDelta = dist[j]
					bestCol = j
				}
			}
			for j := 0; j <= n; j++ {
				if visited[j] {
					u[matchOfCol[j]] += bestDelta
					v[j] -= bestDelta
				} else {
					dist[j] -= bestDelta
				}
			}
			col = bestCol
			if matchOfCol[col] == 0 {
				break
			}
		}

		for col != 0 {
			p := prevCol[col]
			matchOfCol[col] = matchOfCol[p]
			col = p
		}
	}

	total := 0
	for j := 1; j <= n; j++ {
		r := matchOfCol[j] - 1
		c := j - 1
		if r < m.rows && c < m.cols {
			total += cost[r][c]
		}
	}

	return total
}
