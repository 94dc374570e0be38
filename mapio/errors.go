package mapio

import "errors"

// Sentinel errors for map parsing.
var (
	// ErrUnknownTile is returned for any character outside the recognised tile set.
	ErrUnknownTile = errors.New("mapio: unknown tile character")

	// ErrNoPlayer is returned when no '@' or '+' tile appears in the map.
	ErrNoPlayer = errors.New("mapio: no player tile found")

	// ErrNoBoxes is returned when the map contains no boxes.
	ErrNoBoxes = errors.New("mapio: no boxes found")

	// ErrNoGoals is returned when the map contains no goals.
	ErrNoGoals = errors.New("mapio: no goals found")

	// ErrBoxGoalMismatch is returned when the box and goal counts differ.
	ErrBoxGoalMismatch = errors.New("mapio: box count does not match goal count")
)
