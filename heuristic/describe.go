package heuristic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sokosolve/core"
)

// Describe renders a per-box, per-goal position dump followed by h's
// estimate for state, in the same shape the diagnostic standalone path of
// the original implementation prints before a full search ever runs.
func Describe(state *core.State, h Heuristic) string {
	var b strings.Builder

	for i, box := range state.Boxes() {
		fmt.Fprintf(&b, "Box %d pos= (%d,%d)\n", i, box.Row, box.Col)
	}
	for i, goal := range state.Board().Goals() {
		fmt.Fprintf(&b, "Goal %d pos= (%d,%d)\n", i, goal.Row, goal.Col)
	}
	fmt.Fprintf(&b, "h=%v\n", h.Calculate(state))

	return b.String()
}
