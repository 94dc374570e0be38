package search

import (
	"time"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/frontier"
)

// Engine drives a frontier.Strategy over a core.State graph to a Result.
// The zero value is not usable; build one with NewEngine.
type Engine struct {
	strategy frontier.Strategy
	opts     Options
}

// NewEngine validates strategy against opts and returns a ready Engine.
// Rejects a nil strategy (ErrNilStrategy), a heuristic-needing strategy
// with no heuristic configured (ErrMissingHeuristic), and a heuristic
// configured for a strategy that does not need one (ErrUnwantedHeuristic).
func NewEngine(strategy frontier.Strategy, opts ...Option) (*Engine, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if strategy.NeedsHeuristic() && cfg.Heuristic == nil {
		return nil, ErrMissingHeuristic
	}
	if !strategy.NeedsHeuristic() && cfg.Heuristic != nil {
		return nil, ErrUnwantedHeuristic
	}

	return &Engine{strategy: strategy, opts: cfg}, nil
}

// Search runs the configured strategy from initial to completion, returning
// a successful Result with a path or a failed Result with metrics only.
func (e *Engine) Search(initial *core.State) Result {
	start := time.Now()
	nodesExpanded := 0
	maxFrontierSize := 0

	root := core.NewRoot(initial)
	if initial.IsGoal() {
		return newSuccess(root, nodesExpanded, maxFrontierSize, time.Since(start), e.strategy.Name())
	}

	e.strategy.Add(root, e.opts.Heuristic)
	if sz := e.strategy.Size(); sz > maxFrontierSize {
		maxFrontierSize = sz
	}

	if e.strategy.CacheCost() {
		return e.searchWithCostCaching(initial, start, &nodesExpanded, &maxFrontierSize)
	}

	return e.searchPlain(initial, start, &nodesExpanded, &maxFrontierSize)
}

func (e *Engine) searchPlain(initial *core.State, start time.Time, nodesExpanded, maxFrontierSize *int) Result {
	closed := map[uint64]bool{initial.Hash(): true}

	for e.strategy.HasNext() {
		node := e.strategy.Next()
		if node.State.IsGoal() {
			return newSuccess(node, *nodesExpanded, *maxFrontierSize, time.Since(start), e.strategy.Name())
		}

		*nodesExpanded++
		for _, succ := range node.State.Successors(e.opts.Prune) {
			h := succ.State.Hash()
			if closed[h] {
				continue
			}
			closed[h] = true

			child := node.Child(succ)
			e.strategy.Add(child, e.opts.Heuristic)
			if sz := e.strategy.Size(); sz > *maxFrontierSize {
				*maxFrontierSize = sz
			}
		}
	}

	return newFailure(*nodesExpanded, *maxFrontierSize, time.Since(start), e.strategy.Name())
}

func (e *Engine) searchWithCostCaching(initial *core.State, start time.Time, nodesExpanded, maxFrontierSize *int) Result {
	best := map[uint64]int{initial.Hash(): 0}

	for e.strategy.HasNext() {
		node := e.strategy.Next()
		h := node.State.Hash()
		if g, ok := best[h]; ok && node.G > g {
			continue
		}

		if node.State.IsGoal() {
			return newSuccess(node, *nodesExpanded, *maxFrontierSize, time.Since(start), e.strategy.Name())
		}

		*nodesExpanded++
		for _, succ := range node.State.Successors(e.opts.Prune) {
			sh := succ.State.Hash()
			gPrime := node.G + 1
			if known, ok := best[sh]; ok && gPrime >= known {
				continue
			}

			best[sh] = gPrime

			child := node.Child(succ)
			e.strategy.Add(child, e.opts.Heuristic)
			if sz := e.strategy.Size(); sz > *maxFrontierSize {
				*maxFrontierSize = sz
			}
		}
	}

	return newFailure(*nodesExpanded, *maxFrontierSize, time.Since(start), e.strategy.Name())
}
