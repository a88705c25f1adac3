package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"upside-down-research.com/oss/swapsearch/internal/config"
	"upside-down-research.com/oss/swapsearch/internal/heuristic"
	"upside-down-research.com/oss/swapsearch/internal/layout"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	Fix     string // Suggested fix
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Fix != "" {
		msg += fmt.Sprintf("\n  Fix: %s", e.Fix)
	}
	return msg
}

// ValidationResult holds validation results
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no errors
func (v *ValidationResult) IsValid() bool {
	return len(v.Errors) == 0
}

// AddError adds a validation error
func (v *ValidationResult) AddError(field, message, fix string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
		Fix:     fix,
	})
}

// AddWarning adds a validation warning
func (v *ValidationResult) AddWarning(field, message, fix string) {
	v.Warnings = append(v.Warnings, ValidationError{
		Field:   field,
		Message: message,
		Fix:     fix,
	})
}

// ValidateConfig validates the configuration
func ValidateConfig(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	// Validate log level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Log.Level] {
		result.AddError("log.level",
			fmt.Sprintf("invalid level '%s'", cfg.Log.Level),
			"use one of: debug, info, warn, error")
	}

	// Validate search limits
	if cfg.Search.MaxExpansions < 0 {
		result.AddError("search.max_expansions",
			"cannot be negative",
			"set search.max_expansions to a positive number or 0 for unlimited")
	}
	if cfg.Search.ProgressEvery < 0 {
		result.AddError("search.progress_every",
			"cannot be negative",
			"set search.progress_every to a positive number")
	}

	// Validate trace directory
	if cfg.Trace.Enabled {
		if cfg.Trace.Directory == "" {
			result.AddError("trace.directory",
				"trace directory not specified",
				"set trace.directory in config or use --trace-dir flag")
		} else if err := os.MkdirAll(cfg.Trace.Directory, 0755); err != nil {
			result.AddError("trace.directory",
				fmt.Sprintf("cannot create directory: %v", err),
				fmt.Sprintf("ensure %s is writable", cfg.Trace.Directory))
		}
	}

	// Validate metrics settings
	if cfg.Metrics.Enabled {
		if cfg.Metrics.PushgatewayURL == "" {
			result.AddError("metrics.pushgateway_url",
				"Pushgateway URL not specified",
				"set metrics.pushgateway_url, e.g. http://localhost:9091")
		}
		if cfg.Metrics.JobName == "" {
			result.AddWarning("metrics.job_name",
				"job name not specified, defaulting to 'swapsearch'",
				"set metrics.job_name in the config file")
		}
	}

	// Validate telemetry settings
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.URL == "" {
			result.AddError("telemetry.url",
				"InfluxDB URL not specified",
				"set telemetry.url, e.g. http://localhost:8086")
		}
		if cfg.Telemetry.Token == "" {
			result.AddError("telemetry.token",
				"InfluxDB token not set",
				"export INFLUX_TOKEN=... or set telemetry.token in the config file")
		}
		if cfg.Telemetry.Org == "" || cfg.Telemetry.Bucket == "" {
			result.AddError("telemetry.org",
				"InfluxDB org and bucket are required",
				"set telemetry.org and telemetry.bucket")
		}
	}

	return result
}

// ValidateProblem validates the two input lines of a solve: both must
// parse as integer sequences, have the same length, and hold the same
// multiset of values.
func ValidateProblem(startLine, goalLine string) *ValidationResult {
	result := &ValidationResult{}

	start, err := layout.Parse(startLine)
	if err != nil {
		var pe *layout.ParseError
		if errors.As(err, &pe) {
			result.AddError("start",
				fmt.Sprintf("invalid integer %q at token %d", pe.Token, pe.Index),
				"every token must be a signed integer")
		} else {
			result.AddError("start", err.Error(), "")
		}
	}

	goal, err := layout.Parse(goalLine)
	if err != nil {
		var pe *layout.ParseError
		if errors.As(err, &pe) {
			result.AddError("goal",
				fmt.Sprintf("invalid integer %q at token %d", pe.Token, pe.Index),
				"every token must be a signed integer")
		} else {
			result.AddError("goal", err.Error(), "")
		}
	}
	if !result.IsValid() {
		return result
	}

	if start.Len() == 0 {
		result.AddWarning("start",
			"sequence is empty",
			"an empty problem is trivially solved")
	}

	if err := heuristic.CheckPermutation(start, goal); err != nil {
		result.AddError("goal",
			err.Error(),
			"goal must be a rearrangement of the start sequence")
	}

	return result
}

// ValidateTraceDirectory checks if a trace directory is usable
func ValidateTraceDirectory(path string) error {
	// Try to create directory
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("cannot create trace directory: %w", err)
	}

	// Try to write a test file
	testFile := filepath.Join(path, ".swapsearch-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return fmt.Errorf("cannot write to trace directory: %w", err)
	}

	// Clean up test file
	os.Remove(testFile)

	return nil
}

// PrintValidationResult prints validation results
func PrintValidationResult(result *ValidationResult) {
	if len(result.Errors) > 0 {
		fmt.Println("❌ Validation Errors:")
		for _, err := range result.Errors {
			fmt.Printf("  • %s\n", err.Error())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Println("⚠️  Warnings:")
		for _, warn := range result.Warnings {
			fmt.Printf("  • %s: %s\n", warn.Field, warn.Message)
			if warn.Fix != "" {
				fmt.Printf("    Suggestion: %s\n", warn.Fix)
			}
		}
		fmt.Println()
	}

	if result.IsValid() && len(result.Warnings) == 0 {
		fmt.Println("✓ All validations passed")
	}
}
