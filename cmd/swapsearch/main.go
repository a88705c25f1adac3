package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/swapsearch/internal/commands"
)

var CLI struct {
	Debug bool `help:"Enable debug logging" short:"d"`

	Ucs      commands.UcsCommand      `cmd:"" help:"Solve a problem from stdin with uniform-cost search"`
	Astar    commands.AstarCommand    `cmd:"" help:"Solve a problem from stdin with A*"`
	Estimate commands.EstimateCommand `cmd:"" help:"Estimate search difficulty"`
	Validate commands.ValidateCommand `cmd:"" help:"Validate a problem"`
	Doctor   commands.DoctorCommand   `cmd:"" help:"Run system diagnostics"`
	Config   commands.ConfigCommand   `cmd:"" help:"Manage configuration"`
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("swapsearch"),
		kong.Description("swapsearch - minimum-cost swap sequences\n\nFinds the cheapest sequence of element swaps transforming one integer sequence into another, where swap cost depends on the parity of the operands."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: false,
			Summary: true,
		}),
	)

	if CLI.Debug {
		log.SetLevel(log.DebugLevel)
	}

	err := ctx.Run()
	if err != nil {
		log.Error("Command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Run 'swapsearch --help' for usage")
		os.Exit(1)
	}
}
