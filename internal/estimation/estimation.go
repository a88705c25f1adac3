package estimation

import (
	"fmt"
	"strings"

	"upside-down-research.com/oss/swapsearch/internal/heuristic"
	"upside-down-research.com/oss/swapsearch/internal/layout"
)

// SearchEstimate describes the expected difficulty of a solve before it
// runs. Node and memory figures are order-of-magnitude bands, not
// promises; the true frontier depends on how tight the heuristic is on
// the instance.
type SearchEstimate struct {
	Length         int   // sequence length n
	Branching      int   // successors per expansion: n*(n-1)/2
	MinSwaps       int   // swaps of the cycle decomposition (heuristic.MinSwaps)
	HeuristicBound int   // admissible lower bound on total cost
	EstimatedNodes int64 // pessimistic frontier size
	EstimatedBytes int64 // memory band for that frontier
}

// estimateNodeCap bounds the node estimate so the report stays readable
// for instances no search could finish anyway.
const estimateNodeCap = int64(1) << 40

// EstimateSearch computes a difficulty report for the given problem.
func EstimateSearch(start, goal layout.Layout) (*SearchEstimate, error) {
	bound, err := heuristic.CycleBound(start, goal)
	if err != nil {
		return nil, err
	}
	swaps, err := heuristic.MinSwaps(start, goal)
	if err != nil {
		return nil, err
	}

	n := start.Len()
	branching := n * (n - 1) / 2

	// Worst case the frontier grows geometrically to the solution depth.
	nodes := int64(1)
	for d := 0; d < swaps; d++ {
		nodes *= int64(branching)
		if nodes <= 0 || nodes > estimateNodeCap {
			nodes = estimateNodeCap
			break
		}
	}

	// Arena record: layout values plus node bookkeeping.
	perNode := int64(8*n + 48)
	bytes := nodes * perNode
	if bytes <= 0 || bytes > estimateNodeCap {
		bytes = estimateNodeCap
	}

	return &SearchEstimate{
		Length:         n,
		Branching:      branching,
		MinSwaps:       swaps,
		HeuristicBound: bound,
		EstimatedNodes: nodes,
		EstimatedBytes: bytes,
	}, nil
}

// FormatEstimate formats a search estimate for display
func FormatEstimate(est *SearchEstimate) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sequence length: %d\n", est.Length))
	sb.WriteString(fmt.Sprintf("Branching factor: %d successors per expansion\n", est.Branching))
	sb.WriteString(fmt.Sprintf("Minimum swaps: %d\n", est.MinSwaps))
	sb.WriteString(fmt.Sprintf("Cost lower bound: %d\n", est.HeuristicBound))
	sb.WriteString(fmt.Sprintf("Worst-case nodes: ~%s\n", formatNumber(est.EstimatedNodes)))
	sb.WriteString(fmt.Sprintf("Worst-case memory: ~%s", formatBytes(est.EstimatedBytes)))

	return sb.String()
}

// ShouldProceed checks if the estimate is within the expansion budget
func ShouldProceed(est *SearchEstimate, maxExpansions int) (bool, string) {
	if maxExpansions > 0 && est.EstimatedNodes > int64(maxExpansions) {
		return false, fmt.Sprintf("Worst-case nodes (~%s) exceed the expansion budget (%d)",
			formatNumber(est.EstimatedNodes), maxExpansions)
	}
	return true, ""
}

func formatNumber(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/float64(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
