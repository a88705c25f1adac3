package commands

import (
	"fmt"
	"strings"

	"upside-down-research.com/oss/swapsearch/internal/config"
	"upside-down-research.com/oss/swapsearch/internal/layout"
	"upside-down-research.com/oss/swapsearch/internal/search"
	"upside-down-research.com/oss/swapsearch/internal/validation"
)

// DoctorCommand runs system diagnostics
type DoctorCommand struct {
	Config string `name:"config" help:"Configuration file path" type:"path"`
}

// Run executes the doctor command
func (cmd *DoctorCommand) Run() error {
	fmt.Println("🏥 Running swapsearch diagnostics...")
	fmt.Println()

	allOk := true

	// Load and validate config
	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		fmt.Printf("❌ Config: %v\n", err)
		allOk = false
	} else {
		result := validation.ValidateConfig(cfg)
		if result.IsValid() {
			fmt.Println("✓ Configuration: valid")
		} else {
			fmt.Println("❌ Configuration: has errors")
			for _, e := range result.Errors {
				fmt.Printf("  • %s\n", e.Error())
			}
			allOk = false
		}
		if len(result.Warnings) > 0 {
			fmt.Println("⚠️  Configuration: has warnings")
			for _, w := range result.Warnings {
				fmt.Printf("  • %s: %s\n", w.Field, w.Message)
			}
		}
	}

	// Check trace directory
	if cfg != nil && cfg.Trace.Enabled {
		err := validation.ValidateTraceDirectory(cfg.Trace.Directory)
		if err == nil {
			fmt.Printf("✓ Trace directory: %s (writable)\n", cfg.Trace.Directory)
		} else {
			fmt.Printf("❌ Trace directory: %v\n", err)
			allOk = false
		}
	}

	// Run a known-answer solve through both strategies
	if selfTest() {
		fmt.Println("✓ Solver self-test: ucs and astar agree on the reference problem")
	} else {
		fmt.Println("❌ Solver self-test: reference problem gave an unexpected result")
		allOk = false
	}

	fmt.Println()
	if allOk {
		fmt.Println("🎉 All systems ready!")
		return nil
	}
	fmt.Println("⚠️  Some issues found - please fix before running")
	return fmt.Errorf("diagnostics failed")
}

// selfTest solves a small reference problem with both strategies and
// checks the known optimal cost.
func selfTest() bool {
	start, err := layout.Parse("9 7 8")
	if err != nil {
		return false
	}
	goal, err := layout.Parse("7 8 9")
	if err != nil {
		return false
	}

	const wantCost = 22
	for _, strat := range []search.Strategy{search.NewUCS(), search.NewAStar()} {
		res, err := search.NewEngine(strat).Solve(start, goal)
		if err != nil || !res.Solved() || res.Cost != wantCost {
			return false
		}
		if strings.TrimSpace(res.Path[0].String()) != "9 7 8" {
			return false
		}
	}
	return true
}
