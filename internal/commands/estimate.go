package commands

import (
	"fmt"

	"upside-down-research.com/oss/swapsearch/internal/config"
	"upside-down-research.com/oss/swapsearch/internal/estimation"
	"upside-down-research.com/oss/swapsearch/internal/layout"
)

// EstimateCommand reports the expected difficulty of a problem before
// committing to a solve
type EstimateCommand struct {
	Start  string `arg:"" name:"start" help:"Start sequence, e.g. \"9 7 8\""`
	Goal   string `arg:"" name:"goal" help:"Goal sequence, e.g. \"7 8 9\""`
	Config string `name:"config" help:"Configuration file path" type:"path"`
}

// Run executes the estimate command
func (cmd *EstimateCommand) Run() error {
	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return err
	}

	start, err := layout.Parse(cmd.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goal, err := layout.Parse(cmd.Goal)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}

	est, err := estimation.EstimateSearch(start, goal)
	if err != nil {
		return err
	}

	fmt.Println("🔍 Search difficulty estimate")
	fmt.Println()
	fmt.Println(estimation.FormatEstimate(est))
	fmt.Println()

	if ok, reason := estimation.ShouldProceed(est, cfg.Search.MaxExpansions); !ok {
		fmt.Printf("⚠️  %s\n", reason)
		fmt.Println("  Note: A* usually visits far fewer nodes than the worst case")
	}

	return nil
}
