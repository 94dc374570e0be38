package search

import (
	"time"

	"github.com/katalvlaran/sokosolve/core"
)

// Result is the outcome of one Engine.Search call. Success is false for a
// failed search, in which case States, Actions and G carry no meaning and
// are left at their zero values.
type Result struct {
	Success bool

	// States and Actions are parallel and of equal length; States[0] is the
	// initial state, Actions[0] is core.Start, and States[len-1] satisfies
	// IsGoal. Nil when Success is false.
	States  []*core.State
	Actions []core.Action

	// G is the path cost: len(States) - 1. Zero when Success is false.
	G int

	NodesExpanded   int
	MaxFrontierSize int
	Time            time.Duration
	StrategyName    string
}

func newSuccess(node *core.Node, nodesExpanded, maxFrontierSize int, elapsed time.Duration, strategyName string) Result {
	states, actions := node.Path()

	return Result{
		Success:         true,
		States:          states,
		Actions:         actions,
		G:               len(states) - 1,
		NodesExpanded:   nodesExpanded,
		MaxFrontierSize: maxFrontierSize,
		Time:            elapsed,
		StrategyName:    strategyName,
	}
}

func newFailure(nodesExpanded, maxFrontierSize int, elapsed time.Duration, strategyName string) Result {
	return Result{
		NodesExpanded:   nodesExpanded,
		MaxFrontierSize: maxFrontierSize,
		Time:            elapsed,
		StrategyName:    strategyName,
	}
}
