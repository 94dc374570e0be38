package result

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sokosolve/search"
)

// Summary is a human-readable rendering of a search.Result, distinct from
// the JSON metrics document ExportMetrics writes.
type Summary struct {
	res search.Result
}

// NewSummary wraps res for console rendering.
func NewSummary(res search.Result) Summary {
	return Summary{res: res}
}

// String renders the summary as a multi-line report.
func (s Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s Search Result ===\n", s.res.StrategyName)
	fmt.Fprintf(&b, "Success: %t\n", s.res.Success)
	if s.res.Success {
		fmt.Fprintf(&b, "Solution cost: %d\n", s.res.G)
		fmt.Fprintf(&b, "Path length: %d states\n", len(s.res.States))
	} else {
		b.WriteString("No solution found.\n")
	}
	fmt.Fprintf(&b, "Nodes expanded: %d\n", s.res.NodesExpanded)
	fmt.Fprintf(&b, "Max frontier size: %d\n", s.res.MaxFrontierSize)
	fmt.Fprintf(&b, "Processing time: %.4f seconds\n", s.res.Time.Seconds())
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n")

	return b.String()
}
