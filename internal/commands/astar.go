package commands

import "upside-down-research.com/oss/swapsearch/internal/search"

// AstarCommand solves a problem from stdin with A* and prints only the
// total cost of the goal node.
type AstarCommand struct {
	Config        string `name:"config" help:"Configuration file path" type:"path"`
	TraceDir      string `name:"trace-dir" help:"Write a JSON solve trace into this directory"`
	MaxExpansions int    `name:"max-expansions" help:"Abort after this many expansions (0 = unbounded)"`
	Progress      bool   `name:"progress" help:"Show progress while searching"`
}

// Run executes the astar command
func (cmd *AstarCommand) Run() error {
	return runSolve(search.NewAStar(), false, solveOptions{
		configPath:    cmd.Config,
		traceDir:      cmd.TraceDir,
		maxExpansions: cmd.MaxExpansions,
		progress:      cmd.Progress,
	})
}
