package commands

import (
	"fmt"

	"upside-down-research.com/oss/swapsearch/internal/validation"
)

// ValidateCommand validates a problem without solving it
type ValidateCommand struct {
	Start string `arg:"" name:"start" help:"Start sequence, e.g. \"9 7 8\""`
	Goal  string `arg:"" name:"goal" help:"Goal sequence, e.g. \"7 8 9\""`
}

// Run executes the validate command
func (cmd *ValidateCommand) Run() error {
	fmt.Printf("📋 Validating problem: %q → %q\n\n", cmd.Start, cmd.Goal)

	result := validation.ValidateProblem(cmd.Start, cmd.Goal)
	validation.PrintValidationResult(result)

	if !result.IsValid() {
		return fmt.Errorf("validation failed")
	}

	return nil
}
