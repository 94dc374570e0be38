package result

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/search"
)

// FileKind names the artifact an exported file carries.
type FileKind string

// The two artifact kinds this package produces.
const (
	MetricsFile   FileKind = "metrics"
	AnimationFile FileKind = "animation"
)

// OutputFormat names the on-disk encoding of an exported file.
type OutputFormat string

// The two encodings this package writes.
const (
	JSON OutputFormat = "json"
	CSV  OutputFormat = "csv"
)

// Metrics is the JSON document written by ExportMetrics.
type Metrics struct {
	Algorithm  string       `json:"algorithm"`
	Success    bool         `json:"success"`
	Cost       int          `json:"cost"`
	PathLength int          `json:"path_length"`
	Stats      MetricsStats `json:"metrics"`
}

// MetricsStats is the nested "metrics" object of Metrics.
type MetricsStats struct {
	NodesExpanded         int     `json:"nodes_expanded"`
	MaxFrontierSize       int     `json:"max_frontier_size"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}

// NewMetrics builds the exported document from a search.Result. res must
// have Success set; callers should check that before calling this.
func NewMetrics(res search.Result) Metrics {
	return Metrics{
		Algorithm:  res.StrategyName,
		Success:    res.Success,
		Cost:       res.G,
		PathLength: len(res.States),
		Stats: MetricsStats{
			NodesExpanded:         res.NodesExpanded,
			MaxFrontierSize:       res.MaxFrontierSize,
			ProcessingTimeSeconds: round4(res.Time.Seconds()),
		},
	}
}

func round4(f float64) float64 {
	return float64(int64(f*10000+0.5)) / 10000
}

// ExportMetrics writes res as an indented JSON document to path, creating
// path's parent directory if needed. Returns ErrUnsuccessfulExport if res
// did not succeed.
func ExportMetrics(res search.Result, path string) error {
	if !res.Success {
		return ErrUnsuccessfulExport
	}

	data, err := json.MarshalIndent(NewMetrics(res), "", "  ")
	if err != nil {
		return fmt.Errorf("result: encoding metrics: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("result: creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("result: writing %s: %w", path, err)
	}

	return nil
}

// ExportAnimation writes the state-by-state replay of res as a CSV trace to
// path: one row per state, columns step, player_pos, boxes_pos, action.
// player_pos is rendered "(row,col)"; boxes_pos is a ";"-joined, row-major
// sorted list of the same format; action is "START" for the root state and
// the uppercase direction name for every later state. Returns
// ErrUnsuccessfulExport if res did not succeed.
func ExportAnimation(res search.Result, path string) error {
	if !res.Success {
		return ErrUnsuccessfulExport
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("result: creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("result: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"step", "player_pos", "boxes_pos", "action"}); err != nil {
		return fmt.Errorf("result: writing header: %w", err)
	}

	for i, state := range res.States {
		action := string(res.Actions[i])
		row := []string{
			strconv.Itoa(i),
			positionString(state.Player()),
			boxesString(state.Boxes()),
			action,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("result: writing row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("result: flushing %s: %w", path, err)
	}

	return nil
}

func positionString(p core.Position) string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func boxesString(boxes []core.Position) string {
	sorted := make([]core.Position, len(boxes))
	copy(sorted, boxes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, b := range sorted {
		parts[i] = positionString(b)
	}

	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ";"
		}
		out += p
	}

	return out
}

// ResolvePath builds the default "output/<kind>_<name>.<format>" path used
// when a caller does not supply an explicit output file name. If name is
// empty, a unix-timestamp-based name is generated instead.
func ResolvePath(kind FileKind, format OutputFormat, name string) string {
	if name == "" {
		name = fmt.Sprintf("%s_%d", kind, time.Now().Unix())
	}

	return filepath.Join("output", fmt.Sprintf("%s_%s.%s", kind, name, format))
}
