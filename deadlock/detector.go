package deadlock

import (
	"sync"

	"github.com/katalvlaran/sokosolve/core"
)

// Detector evaluates D1-D4 against a board, caching the D4 aisle-pruned
// cell set per board so repeated queries during one search (or concurrent
// searches sharing the same board) don't recompute the fixed-point scan.
// The zero value is ready to use.
type Detector struct {
	mu    sync.RWMutex
	aisle map[*core.Board]map[core.Position]struct{}
}

// NewDetector returns a ready-to-use Detector.
func NewDetector() *Detector {
	return &Detector{aisle: make(map[*core.Board]map[core.Position]struct{})}
}

// IsDeadlock reports whether placing a box at pos, given the full resulting
// box set boxes, is unrecoverable. A box on a goal is never a deadlock.
// Combines D1 (corner), D2 (frozen 2x2), D3 (wall segment without a goal)
// and D4 (dead-end aisle): any one firing is sufficient.
func (d *Detector) IsDeadlock(pos core.Position, boxes []core.Position, board *core.Board) bool {
	if board.IsGoal(pos) {
		return false
	}
	if isCornerDeadlock(pos, board) {
		return true
	}
	if isFrozenSquareDeadlock(pos, boxes, board) {
		return true
	}
	if isWallSegmentDeadlock(pos, board) {
		return true
	}
	if d.isAisleEnd(pos, board) {
		return true
	}

	return false
}

// AsPredicate adapts the Detector to core.DeadlockPredicate for wiring into
// State.Successors.
func (d *Detector) AsPredicate() core.DeadlockPredicate {
	return d.IsDeadlock
}

// IsCornerOrFrozen runs only the D1 (corner) and D2 (frozen 2x2) checks,
// skipping D3 and D4. Both are purely local (they only ever look at pos and
// its immediate neighbours) so neither needs a Detector's cache; exposed as
// a free function for callers that want a cheaper deadlock test.
func IsCornerOrFrozen(pos core.Position, boxes []core.Position, board *core.Board) bool {
	if board.IsGoal(pos) {
		return false
	}

	return isCornerDeadlock(pos, board) || isFrozenSquareDeadlock(pos, boxes, board)
}
