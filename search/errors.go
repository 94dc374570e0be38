package search

import "errors"

// Sentinel errors for Engine construction.
var (
	// ErrNilStrategy is returned when NewEngine is given a nil frontier.Strategy.
	ErrNilStrategy = errors.New("search: strategy is nil")

	// ErrMissingHeuristic is returned when the strategy needs a heuristic
	// and none was provided.
	ErrMissingHeuristic = errors.New("search: strategy requires a heuristic")

	// ErrUnwantedHeuristic is returned when a heuristic was provided for a
	// strategy that does not use one.
	ErrUnwantedHeuristic = errors.New("search: strategy does not accept a heuristic")
)
