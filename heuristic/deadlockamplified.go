package heuristic

import (
	"math"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/deadlock"
)

// DeadlockAmplified is H5: the Manhattan sum, or +Inf the moment any box
// sits in a detected deadlock. This turns the detector's boolean verdict
// into the same float64 ordering every frontier already understands,
// instead of wiring deadlock rejection only into successor generation.
//
// By default only the corner (D1) and frozen-square (D2) checks run, since
// those two are cheap, local, and never depend on anything beyond the
// immediate box neighbourhood. WithWallAndAisle enables the D3 wall-segment
// and D4 aisle-cache checks too, at the cost of a board-keyed cache lookup
// per box per Calculate call.
type DeadlockAmplified struct {
	detector         *deadlock.Detector
	includeWallAisle bool
}

// DeadlockAmplifiedOption configures a DeadlockAmplified heuristic.
type DeadlockAmplifiedOption func(*DeadlockAmplified)

// WithWallAndAisle enables the D3/D4 checks in addition to D1/D2.
func WithWallAndAisle() DeadlockAmplifiedOption {
	return func(h *DeadlockAmplified) { h.includeWallAisle = true }
}

// NewDeadlockAmplified builds H5 with the given options. It owns its own
// deadlock.Detector so its D4 cache is independent of any detector the
// search engine's pruning path uses.
func NewDeadlockAmplified(opts ...DeadlockAmplifiedOption) *DeadlockAmplified {
	h := &DeadlockAmplified{detector: deadlock.NewDetector()}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Calculate implements Heuristic.
func (h *DeadlockAmplified) Calculate(state *core.State) float64 {
	board := state.Board()
	boxes := state.Boxes()

	for _, box := range boxes {
		if h.isDeadlocked(box, boxes, board) {
			return math.Inf(1)
		}
	}

	return float64(manhattanSum(state))
}

// Name implements Heuristic.
func (h *DeadlockAmplified) Name() string { return "DEADLOCK" }

func (h *DeadlockAmplified) isDeadlocked(box core.Position, boxes []core.Position, board *core.Board) bool {
	if board.IsGoal(box) {
		return false
	}
	if h.includeWallAisle {
		return h.detector.IsDeadlock(box, boxes, board)
	}

	return deadlock.IsCornerOrFrozen(box, boxes, board)
}
