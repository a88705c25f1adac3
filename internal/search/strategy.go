package search

import (
	"fmt"

	"upside-down-research.com/oss/swapsearch/internal/heuristic"
	"upside-down-research.com/oss/swapsearch/internal/layout"
)

// Strategy supplies the fringe ordering for a solve. Init runs once per
// solve before any key is computed; Key must be cheap enough to call once
// per generated node. Keys are integers so fringe ordering is exact.
type Strategy interface {
	Name() string
	Init(start, goal layout.Layout) error
	Key(g int, l layout.Layout) int
	NewFringe() Fringe
}

// UCS orders the fringe by accumulated path cost alone. Optimal under
// non-negative step costs.
type UCS struct{}

// NewUCS returns the uniform-cost strategy.
func NewUCS() *UCS {
	return &UCS{}
}

func (*UCS) Name() string { return "ucs" }

func (*UCS) Init(start, goal layout.Layout) error { return nil }

func (*UCS) Key(g int, l layout.Layout) int { return g }

// NewFringe returns a bucket fringe: UCS keys are dense small integers
// and buckets avoid heap overhead while keeping ordering exact.
func (*UCS) NewFringe() Fringe { return NewBucketFringe() }

// AStar orders the fringe by g plus the admissible cycle-decomposition
// bound toward the goal.
type AStar struct {
	goal layout.Layout
}

// NewAStar returns the A* strategy. The goal is captured at Init.
func NewAStar() *AStar {
	return &AStar{}
}

func (*AStar) Name() string { return "astar" }

// Init validates the heuristic precondition: start and goal must be
// permutations of the same multiset. Every layout reachable from start
// preserves the multiset, so after Init the heuristic cannot fail.
func (a *AStar) Init(start, goal layout.Layout) error {
	a.goal = goal
	return heuristic.CheckPermutation(start, goal)
}

func (a *AStar) Key(g int, l layout.Layout) int {
	h, err := heuristic.CycleBound(l, a.goal)
	if err != nil {
		// Init verified the multiset; a failure here is a solver bug.
		panic(fmt.Sprintf("astar: heuristic failed after validation: %v", err))
	}
	return g + h
}

func (*AStar) NewFringe() Fringe { return NewHeapFringe() }
