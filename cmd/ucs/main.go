// Command ucs is the minimal uniform-cost front-end: it reads the two
// problem lines from stdin and prints every layout on the solution path,
// one per line, followed by the total cost. An unsolvable problem prints
// "no solution found".
package main

import (
	"os"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/swapsearch/internal/commands"
	"upside-down-research.com/oss/swapsearch/internal/search"
)

func main() {
	log.SetLevel(log.WarnLevel)

	if err := commands.RunPipe(os.Stdin, os.Stdout, search.NewUCS(), true); err != nil {
		log.Error("ucs failed", "error", err)
		os.Exit(1)
	}
}
