package mapio

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/sokosolve/core"
)

// tile is a single character of the map grammar.
const (
	tileWall         = '#'
	tilePlayer       = '@'
	tilePlayerOnGoal = '+'
	tileBox          = '$'
	tileBoxOnGoal    = '*'
	tileGoal         = '.'
	tileSpace        = ' '
)

// Parse reads the Sokoban text grid in text and returns its board and
// initial state. Trailing whitespace on each line is stripped before
// parsing; leading and interior whitespace is significant (it denotes
// floor cells).
func Parse(text string) (*core.Board, *core.State, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var walls, boxes, goals []core.Position
	havePlayer := false
	var player core.Position

	for row, line := range lines {
		line = strings.TrimRight(line, " \t")
		for col, ch := range line {
			pos := core.Position{Row: row, Col: col}
			switch ch {
			case tileWall:
				walls = append(walls, pos)
			case tilePlayer:
				player = pos
				havePlayer = true
			case tilePlayerOnGoal:
				player = pos
				havePlayer = true
				goals = append(goals, pos)
			case tileBox:
				boxes = append(boxes, pos)
			case tileBoxOnGoal:
				boxes = append(boxes, pos)
				goals = append(goals, pos)
			case tileGoal:
				goals = append(goals, pos)
			case tileSpace:
				// floor, no entity
			default:
				return nil, nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownTile, ch, row, col)
			}
		}
	}

	if !havePlayer {
		return nil, nil, ErrNoPlayer
	}
	if len(boxes) == 0 {
		return nil, nil, ErrNoBoxes
	}
	if len(goals) == 0 {
		return nil, nil, ErrNoGoals
	}
	if len(boxes) != len(goals) {
		return nil, nil, fmt.Errorf("%w: %d boxes, %d goals", ErrBoxGoalMismatch, len(boxes), len(goals))
	}

	board := core.NewBoard(walls, goals)
	state := core.NewState(board, player, boxes)

	return board, state, nil
}

// ParseFile reads the map file at path and parses it. See Parse for the
// grammar and validation rules.
func ParseFile(path string) (*core.Board, *core.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mapio: reading %s: %w", path, err)
	}

	return Parse(string(data))
}
