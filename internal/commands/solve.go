package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"upside-down-research.com/oss/swapsearch/internal/config"
	"upside-down-research.com/oss/swapsearch/internal/layout"
	"upside-down-research.com/oss/swapsearch/internal/o11y"
	"upside-down-research.com/oss/swapsearch/internal/progress"
	"upside-down-research.com/oss/swapsearch/internal/search"
	"upside-down-research.com/oss/swapsearch/internal/trace"
)

// ReadProblem reads the two problem lines (start, then goal) from r.
func ReadProblem(r io.Reader) (start, goal layout.Layout, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lines := make([]string, 0, 2)
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return layout.Layout{}, layout.Layout{}, fmt.Errorf("failed to read input: %w", err)
	}
	if len(lines) < 2 {
		return layout.Layout{}, layout.Layout{}, fmt.Errorf("expected two input lines, got %d", len(lines))
	}

	start, err = layout.Parse(lines[0])
	if err != nil {
		return layout.Layout{}, layout.Layout{}, fmt.Errorf("start line: %w", err)
	}
	goal, err = layout.Parse(lines[1])
	if err != nil {
		return layout.Layout{}, layout.Layout{}, fmt.Errorf("goal line: %w", err)
	}
	return start, goal, nil
}

// WriteResult writes a solve result to w. With showPath, every layout on
// the path is printed on its own line before the total cost; without it
// only the cost appears. An unsolvable problem prints "no solution
// found".
func WriteResult(w io.Writer, res *search.Result, showPath bool) error {
	if !res.Solved() {
		_, err := fmt.Fprintln(w, "no solution found")
		return err
	}
	if showPath {
		for _, l := range res.Path {
			if _, err := fmt.Fprintln(w, l.String()); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, res.Cost)
	return err
}

// RunPipe is the minimal front-end: read the problem from r, solve it
// with the given strategy, write the result to w. The ucs and astar
// binaries are thin wrappers around it.
func RunPipe(r io.Reader, w io.Writer, strat search.Strategy, showPath bool) error {
	start, goal, err := ReadProblem(r)
	if err != nil {
		return err
	}
	res, err := search.NewEngine(strat).Solve(start, goal)
	if err != nil {
		return err
	}
	return WriteResult(w, res, showPath)
}

// solveOptions carries the flags shared by the ucs and astar commands.
type solveOptions struct {
	configPath    string
	traceDir      string
	maxExpansions int
	progress      bool
}

// runSolve is the rich-CLI solve pipeline: config, progress, metrics and
// trace persistence around a single engine run. The problem is read from
// stdin and the result written to stdout in the same format RunPipe
// emits.
func runSolve(strat search.Strategy, showPath bool, opts solveOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.traceDir != "" {
		cfg.Trace.Enabled = true
		cfg.Trace.Directory = opts.traceDir
	}
	if opts.maxExpansions > 0 {
		cfg.Search.MaxExpansions = opts.maxExpansions
	}

	start, goal, err := ReadProblem(os.Stdin)
	if err != nil {
		return err
	}

	ind := progress.NewIndicator(opts.progress)
	ind.Phase("Solving")
	ind.Step(fmt.Sprintf("strategy %s, sequence length %d", strat.Name(), start.Len()))

	engine := search.NewEngine(strat)
	engine.SetMaxExpansions(cfg.Search.MaxExpansions)
	if opts.progress && cfg.Search.ProgressEvery > 0 {
		every := cfg.Search.ProgressEvery
		engine.SetExpandHook(func(expanded int) {
			if expanded%every == 0 {
				ind.Expansions(expanded)
			}
		})
	}

	runID := uuid.NewString()
	begin := time.Now()
	res, err := engine.Solve(start, goal)
	elapsed := time.Since(begin)
	if err != nil {
		if errors.Is(err, search.ErrExpansionLimit) {
			ind.Error("search aborted", err)
			return fmt.Errorf("expansion budget exhausted after %d nodes", res.Stats.Expanded)
		}
		return err
	}

	if res.Solved() {
		ind.Success(fmt.Sprintf("solved at cost %d", res.Cost))
	} else {
		ind.Success("search exhausted, no solution")
	}

	if err := WriteResult(os.Stdout, res, showPath); err != nil {
		return err
	}

	log.Info("solve finished",
		"runID", runID,
		"strategy", strat.Name(),
		"solved", res.Solved(),
		"cost", res.Cost,
		"expanded", res.Stats.Expanded,
		"generated", res.Stats.Generated,
		"duration", elapsed)

	o11y.NewRecorder(cfg.Metrics, cfg.Telemetry).RecordSolve(runID, strat.Name(), res, elapsed)

	if cfg.Trace.Enabled {
		store := trace.NewStore(cfg.Trace.Directory)
		if _, err := store.Save(trace.NewSolveTrace(runID, strat.Name(), start, goal, res, elapsed)); err != nil {
			log.Error("Failed to save solve trace", "error", err)
		}
	}

	ind.Summary(res.Solved(), fmt.Sprintf("cost %d, %d expanded, %d generated",
		res.Cost, res.Stats.Expanded, res.Stats.Generated))

	return nil
}
