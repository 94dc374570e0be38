package search

import (
	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

// Options holds Engine construction parameters. Pruning is a
// construction-time parameter rather than a process-wide toggle so that
// core.State.Successors itself stays a pure function of its arguments.
type Options struct {
	Heuristic heuristic.Heuristic
	Prune     core.DeadlockPredicate
}

// Option configures Engine construction.
type Option func(*Options)

// DefaultOptions returns an Options with no heuristic and no pruning.
func DefaultOptions() Options {
	return Options{}
}

// WithHeuristic sets the heuristic passed to the strategy on every Add.
// Required when the strategy's NeedsHeuristic is true, rejected otherwise.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithPruning enables deadlock pruning: prune is consulted on every push and
// a configuration it would produce is never added as a successor.
func WithPruning(prune core.DeadlockPredicate) Option {
	return func(o *Options) { o.Prune = prune }
}
