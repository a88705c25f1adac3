// Package search implements the best-first search over swap layouts: an
// arena of immutable nodes, an open map and closed map keyed by layout
// identity, a strategy-ordered fringe with FIFO tie-breaking, and lazy
// detection of obsolete fringe entries. Uniform-cost and A* are the two
// strategies; both share the same engine.
package search

import (
	"errors"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/swapsearch/internal/layout"
)

// ErrExpansionLimit is returned when a solve exceeds its configured
// expansion budget before reaching the goal or exhausting the fringe.
var ErrExpansionLimit = errors.New("search: expansion limit reached")

// Stats counts the work a solve performed.
type Stats struct {
	Expanded        int `json:"expanded"`         // nodes popped and closed
	Generated       int `json:"generated"`        // nodes placed into the fringe
	ObsoleteDropped int `json:"obsolete_dropped"` // stale fringe entries discarded at pop
	MaxFringe       int `json:"max_fringe"`       // high-water mark of the fringe
}

// Result of a completed solve. Path is the layout sequence from start to
// goal inclusive, or nil when the goal is unreachable; an unreachable
// goal is a normal result, not an error.
type Result struct {
	Path  []layout.Layout
	Cost  int
	Stats Stats
}

// Solved reports whether a path to the goal was found.
func (r *Result) Solved() bool {
	return r.Path != nil
}

// Engine drives a strategy over the search space. An engine is
// single-threaded; each Solve call owns its arena, maps, fringe and
// sequence counter, so distinct engines may run concurrently.
type Engine struct {
	strategy      Strategy
	maxExpansions int
	onExpand      func(expanded int)
}

// NewEngine creates an engine for the given strategy.
func NewEngine(strategy Strategy) *Engine {
	return &Engine{strategy: strategy}
}

// SetMaxExpansions bounds the number of expansions per solve. Zero means
// unbounded.
func (e *Engine) SetMaxExpansions(n int) {
	e.maxExpansions = n
}

// SetExpandHook installs a callback invoked after every expansion with
// the running expansion count. Used for progress reporting.
func (e *Engine) SetExpandHook(fn func(expanded int)) {
	e.onExpand = fn
}

// Solve searches for a minimum-cost swap sequence from start to goal.
// Nodes are popped in non-decreasing strategy-key order, FIFO among
// equal keys, and successors are generated in the order produced by
// layout.Children, so repeated runs on the same input emit identical
// paths.
func (e *Engine) Solve(start, goal layout.Layout) (*Result, error) {
	if err := e.strategy.Init(start, goal); err != nil {
		return nil, err
	}

	log.Debug("solve starting", "strategy", e.strategy.Name(), "start", start.String(), "goal", goal.String())

	nodes := make([]Node, 0, 64)
	open := make(map[string]int)
	closed := make(map[string]int)
	fringe := e.strategy.NewFringe()
	seq := 0
	stats := Stats{}

	root := Node{Layout: start, Parent: -1, G: 0, Seq: seq, Key: e.strategy.Key(0, start)}
	seq++
	nodes = append(nodes, root)
	open[start.Key()] = 0
	fringe.Insert(0, root.Key, root.Seq)
	stats.Generated = 1
	stats.MaxFringe = 1

	for {
		id, ok := fringe.PopMin()
		if !ok {
			break
		}
		n := nodes[id]
		key := n.Layout.Key()

		// A lower-g node for this layout may have replaced id in the
		// open map after id was inserted; such entries are dropped here.
		if cur, inOpen := open[key]; !inOpen || cur != id {
			stats.ObsoleteDropped++
			continue
		}
		delete(open, key)

		if n.Layout.IsGoal(goal) {
			log.Debug("goal reached", "cost", n.G, "expanded", stats.Expanded, "generated", stats.Generated)
			return &Result{Path: e.reconstruct(nodes, id), Cost: n.G, Stats: stats}, nil
		}

		closed[key] = id
		stats.Expanded++
		if e.onExpand != nil {
			e.onExpand(stats.Expanded)
		}
		if e.maxExpansions > 0 && stats.Expanded >= e.maxExpansions {
			return &Result{Stats: stats}, ErrExpansionLimit
		}

		for _, child := range n.Layout.Children() {
			childKey := child.Key()
			if _, done := closed[childKey]; done {
				continue
			}
			g := n.G + child.StepCost()
			if existing, inOpen := open[childKey]; inOpen && nodes[existing].G <= g {
				continue
			}
			node := Node{
				Layout: child,
				Parent: id,
				G:      g,
				Seq:    seq,
				Key:    e.strategy.Key(g, child),
			}
			seq++
			childID := len(nodes)
			nodes = append(nodes, node)
			open[childKey] = childID
			fringe.Insert(childID, node.Key, node.Seq)
			stats.Generated++
			if fringe.Len() > stats.MaxFringe {
				stats.MaxFringe = fringe.Len()
			}
		}
	}

	log.Debug("fringe exhausted", "expanded", stats.Expanded, "generated", stats.Generated)
	return &Result{Stats: stats}, nil
}

// reconstruct walks parent indices from the goal node back to the root
// and returns the layouts in root-to-goal order.
func (e *Engine) reconstruct(nodes []Node, id int) []layout.Layout {
	depth := 0
	for i := id; i != -1; i = nodes[i].Parent {
		depth++
	}
	path := make([]layout.Layout, depth)
	for i := id; i != -1; i = nodes[i].Parent {
		depth--
		path[depth] = nodes[i].Layout
	}
	return path
}
