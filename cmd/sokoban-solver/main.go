// Command sokoban-solver loads a JSON configuration file naming a map, an
// algorithm and (where needed) a heuristic, runs the search, prints a
// summary, and, when the search succeeds, exports a metrics file (and, if
// requested, a CSV animation trace).
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/katalvlaran/sokosolve/config"
	"github.com/katalvlaran/sokosolve/deadlock"
	"github.com/katalvlaran/sokosolve/frontier"
	"github.com/katalvlaran/sokosolve/heuristic"
	"github.com/katalvlaran/sokosolve/mapio"
	"github.com/katalvlaran/sokosolve/result"
	"github.com/katalvlaran/sokosolve/search"
)

func main() {
	explain := flag.Bool("explain", false, "print a per-box/per-goal heuristic breakdown before searching")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: sokoban-solver [-explain] <config-file>")
	}
	configPath := flag.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	log.Printf("loading level: %s", cfg.MapName)
	_, initial, err := mapio.ParseFile(cfg.MapName)
	if err != nil {
		log.Fatalf("loading map: %v", err)
	}

	strategy, h, err := buildStrategy(cfg)
	if err != nil {
		log.Fatalf("configuring search: %v", err)
	}

	if *explain && h != nil {
		fmt.Print(heuristic.Describe(initial, h))
	}

	opts := []search.Option{}
	if h != nil {
		opts = append(opts, search.WithHeuristic(h))
	}
	if cfg.Pruning {
		opts = append(opts, search.WithPruning(deadlock.NewDetector().AsPredicate()))
	}

	engine, err := search.NewEngine(strategy, opts...)
	if err != nil {
		log.Fatalf("building engine: %v", err)
	}

	log.Printf("starting search with algorithm: %s", cfg.Algorithm)
	res := engine.Search(initial)
	fmt.Print(result.NewSummary(res).String())

	if !res.Success {
		return
	}

	metricsPath := result.ResolvePath(result.MetricsFile, result.JSON, cfg.OutputFile)
	if err := result.ExportMetrics(res, metricsPath); err != nil {
		log.Fatalf("exporting metrics: %v", err)
	}
	log.Printf("metrics exported to %s", metricsPath)

	if cfg.GenerateAnimation {
		animPath := result.ResolvePath(result.AnimationFile, result.CSV, cfg.OutputFile)
		if err := result.ExportAnimation(res, animPath); err != nil {
			log.Fatalf("exporting animation: %v", err)
		}
		log.Printf("animation exported to %s", filepath.Clean(animPath))
	}
}

// buildStrategy selects the frontier.Strategy and heuristic.Heuristic named
// by cfg. h is nil for algorithms that do not consult a heuristic.
func buildStrategy(cfg config.Config) (frontier.Strategy, heuristic.Heuristic, error) {
	var strategy frontier.Strategy
	switch cfg.Algorithm {
	case config.BFS:
		strategy = frontier.NewBFS()
	case config.DFS:
		strategy = frontier.NewDFS()
	case config.IDDFS:
		strategy = frontier.NewIDDFS()
	case config.Greedy:
		strategy = frontier.NewGreedy()
	case config.AStar:
		strategy = frontier.NewAStar()
	default:
		return nil, nil, fmt.Errorf("sokoban-solver: unhandled algorithm %q", cfg.Algorithm)
	}

	if !cfg.Algorithm.NeedsHeuristic() {
		return strategy, nil, nil
	}

	h, err := buildHeuristic(cfg.Heuristic)
	if err != nil {
		return nil, nil, err
	}

	return strategy, h, nil
}

func buildHeuristic(name config.Heuristic) (heuristic.Heuristic, error) {
	switch name {
	case config.Manhattan:
		return heuristic.Manhattan{}, nil
	case config.GreedyMatch:
		return heuristic.GreedyMatch{}, nil
	case config.PerfectMatch:
		return heuristic.Hungarian{}, nil
	case config.SumOfDistance:
		return heuristic.SumOfDistance{}, nil
	case config.Deadlock:
		return heuristic.NewDeadlockAmplified(), nil
	default:
		return nil, fmt.Errorf("sokoban-solver: unhandled heuristic %q", name)
	}
}
