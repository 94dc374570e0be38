package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/deadlock"
	"github.com/katalvlaran/sokosolve/frontier"
	"github.com/katalvlaran/sokosolve/heuristic"
	"github.com/katalvlaran/sokosolve/search"
)

// trivialPush builds: ##### / #@$.# / #####
func trivialPush() (*core.Board, *core.State) {
	var walls []core.Position
	for c := 0; c < 5; c++ {
		walls = append(walls, core.Position{Row: 0, Col: c}, core.Position{Row: 2, Col: c})
	}
	walls = append(walls, core.Position{Row: 1, Col: 0}, core.Position{Row: 1, Col: 4})
	board := core.NewBoard(walls, []core.Position{{Row: 1, Col: 3}})
	state := core.NewState(board, core.Position{Row: 1, Col: 1}, []core.Position{{Row: 1, Col: 2}})

	return board, state
}

// cornerLocked builds: #### / #$ # / #@.# / ####, the box already wedged
// into a non-goal corner at the very start.
func cornerLocked() *core.State {
	var walls []core.Position
	for c := 0; c < 4; c++ {
		walls = append(walls, core.Position{Row: 0, Col: c}, core.Position{Row: 3, Col: c})
	}
	walls = append(walls, core.Position{Row: 1, Col: 0}, core.Position{Row: 1, Col: 3})
	walls = append(walls, core.Position{Row: 2, Col: 0}, core.Position{Row: 2, Col: 3})
	board := core.NewBoard(walls, []core.Position{{Row: 2, Col: 2}})

	return core.NewState(board, core.Position{Row: 2, Col: 1}, []core.Position{{Row: 1, Col: 1}})
}

// alreadySolved builds: ### / #*# / #@# / ###
func alreadySolved() *core.State {
	walls := []core.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 2},
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2},
	}
	board := core.NewBoard(walls, []core.Position{{Row: 1, Col: 1}})

	return core.NewState(board, core.Position{Row: 2, Col: 1}, []core.Position{{Row: 1, Col: 1}})
}

func TestEngine_RejectsNilStrategy(t *testing.T) {
	_, err := search.NewEngine(nil)
	assert.ErrorIs(t, err, search.ErrNilStrategy)
}

func TestEngine_RejectsMissingHeuristic(t *testing.T) {
	_, err := search.NewEngine(frontier.NewAStar())
	assert.ErrorIs(t, err, search.ErrMissingHeuristic)
}

func TestEngine_RejectsUnwantedHeuristic(t *testing.T) {
	_, err := search.NewEngine(frontier.NewBFS(), search.WithHeuristic(heuristic.Manhattan{}))
	assert.ErrorIs(t, err, search.ErrUnwantedHeuristic)
}

func TestEngine_AlreadySolvedIsSuccessWithZeroCost(t *testing.T) {
	engine, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)

	result := engine.Search(alreadySolved())
	require.True(t, result.Success)
	assert.Equal(t, 0, result.G)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, core.Start, result.Actions[0])
}

func TestEngine_BFS_TrivialPush(t *testing.T) {
	engine, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)

	_, state := trivialPush()
	result := engine.Search(state)
	require.True(t, result.Success)
	assert.Equal(t, 1, result.G)
	assert.Equal(t, []core.Action{core.Start, core.ActionOf(core.Right)}, result.Actions)
	assert.True(t, result.States[len(result.States)-1].HasBoxAt(core.Position{Row: 1, Col: 3}))
}

func TestEngine_Unsolvable_CornerLockedAtStart(t *testing.T) {
	det := deadlock.NewDetector()
	engine, err := search.NewEngine(frontier.NewBFS(), search.WithPruning(det.AsPredicate()))
	require.NoError(t, err)

	result := engine.Search(cornerLocked())
	assert.False(t, result.Success)
}

func TestEngine_AStarMatchesBFSCost(t *testing.T) {
	_, state := trivialPush()

	bfsEngine, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)
	bfsResult := bfsEngine.Search(state)
	require.True(t, bfsResult.Success)

	astarEngine, err := search.NewEngine(frontier.NewAStar(), search.WithHeuristic(heuristic.Hungarian{}))
	require.NoError(t, err)
	astarResult := astarEngine.Search(state)
	require.True(t, astarResult.Success)

	assert.Equal(t, bfsResult.G, astarResult.G)
}

func TestEngine_PruningNeverExpandsMoreNodesOrLosesSolution(t *testing.T) {
	// An open 7x7 interior, far from every wall, so no push along the
	// solution path ever risks a false deadlock: pruning must not disturb
	// the optimal cost even when it changes nothing about this particular
	// puzzle's reachable states.
	var walls []core.Position
	for c := 0; c <= 8; c++ {
		walls = append(walls, core.Position{Row: 0, Col: c}, core.Position{Row: 8, Col: c})
	}
	for r := 0; r <= 8; r++ {
		walls = append(walls, core.Position{Row: r, Col: 0}, core.Position{Row: r, Col: 8})
	}
	board := core.NewBoard(walls, []core.Position{{Row: 4, Col: 6}})
	state := core.NewState(board, core.Position{Row: 4, Col: 1}, []core.Position{{Row: 4, Col: 2}})

	withoutPruning, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)
	plain := withoutPruning.Search(state)
	require.True(t, plain.Success)

	det := deadlock.NewDetector()
	withPruning, err := search.NewEngine(frontier.NewBFS(), search.WithPruning(det.AsPredicate()))
	require.NoError(t, err)
	pruned := withPruning.Search(state)
	require.True(t, pruned.Success)

	assert.Equal(t, plain.G, pruned.G, "pruning must not remove the optimal solution")
	assert.GreaterOrEqual(t, plain.NodesExpanded, pruned.NodesExpanded)
}

func TestEngine_RoundTripReplay(t *testing.T) {
	engine, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)

	_, initial := trivialPush()
	result := engine.Search(initial)
	require.True(t, result.Success)

	current := initial
	replayed := []*core.State{current}
	for _, action := range result.Actions[1:] {
		dir := directionFromAction(action)
		succs := current.Successors(nil)
		var next *core.State
		for _, s := range succs {
			if s.Action == dir {
				next = s.State
				break
			}
		}
		require.NotNil(t, next, "action %v must be replayable", action)
		current = next
		replayed = append(replayed, current)
	}

	require.Len(t, replayed, len(result.States))
	for i := range replayed {
		assert.True(t, replayed[i].Equal(result.States[i]))
	}
	assert.True(t, current.IsGoal())
}

func directionFromAction(a core.Action) core.Direction {
	for _, d := range core.Directions {
		if core.ActionOf(d) == a {
			return d
		}
	}

	return core.Up
}
