// Command astar is the minimal A* front-end: it reads the two problem
// lines from stdin and prints only the total cost of the goal node. Lines
// that are not permutations of the same multiset fail with the
// heuristic's domain error and a non-zero exit code.
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/swapsearch/internal/commands"
	"upside-down-research.com/oss/swapsearch/internal/search"
)

func main() {
	log.SetLevel(log.WarnLevel)

	if err := commands.RunPipe(os.Stdin, os.Stdout, search.NewAStar(), false); err != nil {
		log.Error("astar failed", "error", err)
		os.Exit(1)
	}
}
