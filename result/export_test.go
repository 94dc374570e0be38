package result_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/frontier"
	"github.com/katalvlaran/sokosolve/result"
	"github.com/katalvlaran/sokosolve/search"
)

// trivialPush builds: ##### / #@$.# / #####
func trivialPush() *core.State {
	var walls []core.Position
	for c := 0; c < 5; c++ {
		walls = append(walls, core.Position{Row: 0, Col: c}, core.Position{Row: 2, Col: c})
	}
	walls = append(walls, core.Position{Row: 1, Col: 0}, core.Position{Row: 1, Col: 4})
	board := core.NewBoard(walls, []core.Position{{Row: 1, Col: 3}})

	return core.NewState(board, core.Position{Row: 1, Col: 1}, []core.Position{{Row: 1, Col: 2}})
}

func solvedResult(t *testing.T) search.Result {
	t.Helper()
	engine, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)

	res := engine.Search(trivialPush())
	require.True(t, res.Success)

	return res
}

func failedResult(t *testing.T) search.Result {
	t.Helper()
	engine, err := search.NewEngine(frontier.NewBFS())
	require.NoError(t, err)

	walls := []core.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 0}, {Row: 1, Col: 3},
		{Row: 2, Col: 0}, {Row: 2, Col: 3},
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}
	board := core.NewBoard(walls, []core.Position{{Row: 2, Col: 2}})
	state := core.NewState(board, core.Position{Row: 2, Col: 1}, []core.Position{{Row: 1, Col: 1}})

	res := engine.Search(state)
	require.False(t, res.Success)

	return res
}

func TestExportMetrics_WritesExpectedJSON(t *testing.T) {
	res := solvedResult(t)
	path := filepath.Join(t.TempDir(), "nested", "metrics.json")

	require.NoError(t, result.ExportMetrics(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"algorithm": "BFS"`)
	assert.Contains(t, string(data), `"success": true`)
	assert.Contains(t, string(data), `"nodes_expanded"`)
}

func TestExportMetrics_RejectsFailedSearch(t *testing.T) {
	res := failedResult(t)
	path := filepath.Join(t.TempDir(), "metrics.json")

	err := result.ExportMetrics(res, path)
	assert.ErrorIs(t, err, result.ErrUnsuccessfulExport)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportAnimation_WritesOneRowPerState(t *testing.T) {
	res := solvedResult(t)
	path := filepath.Join(t.TempDir(), "animation.csv")

	require.NoError(t, result.ExportAnimation(res, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Equal(t, []string{"step", "player_pos", "boxes_pos", "action"}, rows[0])
	require.Len(t, rows, len(res.States)+1)

	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "START", rows[1][3])
	assert.NotEqual(t, "START", rows[2][3])
}

func TestExportAnimation_RejectsFailedSearch(t *testing.T) {
	res := failedResult(t)
	path := filepath.Join(t.TempDir(), "animation.csv")

	err := result.ExportAnimation(res, path)
	assert.ErrorIs(t, err, result.ErrUnsuccessfulExport)
}

func TestResolvePath_UsesGivenName(t *testing.T) {
	path := result.ResolvePath(result.MetricsFile, result.JSON, "my-run")
	assert.Equal(t, filepath.Join("output", "metrics_my-run.json"), path)
}

func TestResolvePath_GeneratesNameWhenEmpty(t *testing.T) {
	path := result.ResolvePath(result.AnimationFile, result.CSV, "")
	assert.True(t, len(path) > len(filepath.Join("output", "animation_.csv")))
}

func TestSummary_ReportsSuccessAndCost(t *testing.T) {
	res := solvedResult(t)
	s := result.NewSummary(res).String()

	assert.Contains(t, s, "Success: true")
	assert.Contains(t, s, "BFS Search Result")
}

func TestSummary_ReportsFailure(t *testing.T) {
	res := failedResult(t)
	s := result.NewSummary(res).String()

	assert.Contains(t, s, "Success: false")
	assert.Contains(t, s, "No solution found.")
}
