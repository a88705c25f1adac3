// Package trace persists completed solves as JSON files, one per run,
// so a solve can be inspected or replayed after the process exits.
package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/swapsearch/internal/layout"
	"upside-down-research.com/oss/swapsearch/internal/search"
)

// SolveTrace is the persisted record of one solve call.
type SolveTrace struct {
	RunID      string       `json:"run_id"`
	Strategy   string       `json:"strategy"`
	Start      string       `json:"start"`
	Goal       string       `json:"goal"`
	Solved     bool         `json:"solved"`
	Path       []string     `json:"path,omitempty"`
	Cost       int          `json:"cost"`
	Stats      search.Stats `json:"stats"`
	DurationMS int64        `json:"duration_ms"`
	CreatedAt  string       `json:"created_at"`
}

// NewSolveTrace builds a trace from a solve result.
func NewSolveTrace(runID, strategy string, start, goal layout.Layout, res *search.Result, duration time.Duration) *SolveTrace {
	t := &SolveTrace{
		RunID:      runID,
		Strategy:   strategy,
		Start:      start.String(),
		Goal:       goal.String(),
		Solved:     res.Solved(),
		Cost:       res.Cost,
		Stats:      res.Stats,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	for _, l := range res.Path {
		t.Path = append(t.Path, l.String())
	}
	return t
}

// Store handles saving and loading solve traces under a base directory.
type Store struct {
	basePath string
}

// NewStore creates a trace store rooted at basePath.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

// Save writes a trace to disk and returns the file path.
func (s *Store) Save(t *SolveTrace) (string, error) {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create trace directory: %w", err)
	}

	path := filepath.Join(s.basePath, t.RunID+".json")
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal trace: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write trace file: %w", err)
	}

	log.Info("Solve trace saved", "path", path, "runID", t.RunID)
	return path, nil
}

// Load reads a trace back by run ID.
func (s *Store) Load(runID string) (*SolveTrace, error) {
	path := filepath.Join(s.basePath, runID+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	var t SolveTrace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace: %w", err)
	}

	return &t, nil
}

// List returns the run IDs of all stored traces, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read trace directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
