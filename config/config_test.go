package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sokosolve/config"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_DefaultsWhenKeysOmitted(t *testing.T) {
	path := writeTempConfig(t, `{}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.BFS, cfg.Algorithm)
	assert.Equal(t, config.Heuristic(""), cfg.Heuristic)
	assert.Equal(t, "level_1_easy.txt", cfg.MapName)
	assert.Equal(t, "result", cfg.OutputFile)
	assert.False(t, cfg.GenerateAnimation)
	assert.False(t, cfg.Pruning)
}

func TestLoad_CaseInsensitiveAlgorithmAndHeuristic(t *testing.T) {
	path := writeTempConfig(t, `{"algorithm": "astar", "heuristic": "perfectmatch"}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.AStar, cfg.Algorithm)
	assert.Equal(t, config.PerfectMatch, cfg.Heuristic)
}

func TestLoad_OverridesAllFields(t *testing.T) {
	path := writeTempConfig(t, `{
		"algorithm": "GREEDY",
		"heuristic": "DEADLOCK",
		"map_name": "level_7_hard.txt",
		"output_file": "custom_result",
		"generate_animation": true,
		"pruning": true
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.Greedy, cfg.Algorithm)
	assert.Equal(t, config.Deadlock, cfg.Heuristic)
	assert.Equal(t, "level_7_hard.txt", cfg.MapName)
	assert.Equal(t, "custom_result", cfg.OutputFile)
	assert.True(t, cfg.GenerateAnimation)
	assert.True(t, cfg.Pruning)
}

func TestLoad_RejectsUnknownAlgorithm(t *testing.T) {
	path := writeTempConfig(t, `{"algorithm": "DIJKSTRA"}`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrUnknownAlgorithm)
}

func TestLoad_RejectsUnknownHeuristic(t *testing.T) {
	path := writeTempConfig(t, `{"heuristic": "EUCLIDEAN"}`)

	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrUnknownHeuristic)
}

func TestLoad_MissingFileIsWrappedError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.json")

	_, err := config.Load(missing)
	require.Error(t, err)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestAlgorithm_NeedsHeuristic(t *testing.T) {
	assert.False(t, config.BFS.NeedsHeuristic())
	assert.False(t, config.DFS.NeedsHeuristic())
	assert.False(t, config.IDDFS.NeedsHeuristic())
	assert.True(t, config.Greedy.NeedsHeuristic())
	assert.True(t, config.AStar.NeedsHeuristic())
}
