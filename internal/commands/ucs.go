package commands

import "upside-down-research.com/oss/swapsearch/internal/search"

// UcsCommand solves a problem from stdin with uniform-cost search and
// prints every layout on the solution path followed by the total cost.
type UcsCommand struct {
	Config        string `name:"config" help:"Configuration file path" type:"path"`
	TraceDir      string `name:"trace-dir" help:"Write a JSON solve trace into this directory"`
	MaxExpansions int    `name:"max-expansions" help:"Abort after this many expansions (0 = unbounded)"`
	Progress      bool   `name:"progress" help:"Show progress while searching"`
}

// Run executes the ucs command
func (cmd *UcsCommand) Run() error {
	return runSolve(search.NewUCS(), true, solveOptions{
		configPath:    cmd.Config,
		traceDir:      cmd.TraceDir,
		maxExpansions: cmd.MaxExpansions,
		progress:      cmd.Progress,
	})
}
