package search_test

import (
	"errors"
	"testing"

	"upside-down-research.com/oss/swapsearch/internal/heuristic"
	"upside-down-research.com/oss/swapsearch/internal/layout"
	"upside-down-research.com/oss/swapsearch/internal/search"
)

func mustParse(t *testing.T, text string) layout.Layout {
	t.Helper()
	l, err := layout.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return l
}

func solve(t *testing.T, strat search.Strategy, start, goal string) *search.Result {
	t.Helper()
	res, err := search.NewEngine(strat).Solve(mustParse(t, start), mustParse(t, goal))
	if err != nil {
		t.Fatalf("Solve(%q, %q) failed: %v", start, goal, err)
	}
	return res
}

func pathStrings(res *search.Result) []string {
	out := make([]string, len(res.Path))
	for i, l := range res.Path {
		out[i] = l.String()
	}
	return out
}

func TestUCSScenarioPaths(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		goal     string
		wantPath []string
		wantCost int
	}{
		{
			name:  "three values",
			start: "9 7 8",
			goal:  "7 8 9",
			wantPath: []string{
				"9 7 8",
				"8 7 9",
				"7 8 9",
			},
			wantCost: 22,
		},
		{
			name:  "five values two swaps",
			start: "6 8 2 5 10",
			goal:  "8 10 2 5 6",
			wantPath: []string{
				"6 8 2 5 10",
				"10 8 2 5 6",
				"8 10 2 5 6",
			},
			wantCost: 4,
		},
		{
			name:  "five values four swaps",
			start: "14 11 15 13 12",
			goal:  "15 14 13 12 11",
			wantPath: []string{
				"14 11 15 13 12",
				"12 11 15 13 14",
				"15 11 12 13 14",
				"15 14 12 13 11",
				"15 14 13 12 11",
			},
			wantCost: 35,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := solve(t, search.NewUCS(), c.start, c.goal)
			if !res.Solved() {
				t.Fatal("Expected a solution")
			}
			if res.Cost != c.wantCost {
				t.Errorf("Cost = %d, want %d", res.Cost, c.wantCost)
			}
			got := pathStrings(res)
			if len(got) != len(c.wantPath) {
				t.Fatalf("Path length = %d, want %d (%v)", len(got), len(c.wantPath), got)
			}
			for i, w := range c.wantPath {
				if got[i] != w {
					t.Errorf("Path[%d] = %q, want %q", i, got[i], w)
				}
			}
		})
	}
}

func TestAStarCosts(t *testing.T) {
	cases := []struct {
		start    string
		goal     string
		wantCost int
	}{
		{"9 7 8", "7 8 9", 22},
		{"-2 4 0 -1 3 5 1", "-2 -1 0 1 3 4 5", 33},
		{"8 7 6 5 4 3 2 1", "1 2 3 4 5 6 7 8", 44},
	}
	for _, c := range cases {
		res := solve(t, search.NewAStar(), c.start, c.goal)
		if !res.Solved() {
			t.Fatalf("Solve(%q, %q): expected a solution", c.start, c.goal)
		}
		if res.Cost != c.wantCost {
			t.Errorf("A* cost(%q, %q) = %d, want %d", c.start, c.goal, res.Cost, c.wantCost)
		}
	}
}

// permutations appends every ordering of values to out.
func permutations(values []int) [][]int {
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == len(values) {
			p := make([]int, len(values))
			copy(p, values)
			out = append(out, p)
			return
		}
		for i := k; i < len(values); i++ {
			values[k], values[i] = values[i], values[k]
			recurse(k + 1)
			values[k], values[i] = values[i], values[k]
		}
	}
	recurse(0)
	return out
}

// Uniform-cost and A* must agree on the optimal cost for every instance;
// the emitted paths may differ.
func TestStrategiesAgree(t *testing.T) {
	goalValues := []int{1, 2, 3, 4}
	goal := layout.New(goalValues)

	for _, p := range permutations(goalValues) {
		start := layout.New(p)

		ucs, err := search.NewEngine(search.NewUCS()).Solve(start, goal)
		if err != nil {
			t.Fatalf("UCS Solve(%q) failed: %v", start, err)
		}
		astar, err := search.NewEngine(search.NewAStar()).Solve(start, goal)
		if err != nil {
			t.Fatalf("A* Solve(%q) failed: %v", start, err)
		}

		if !ucs.Solved() || !astar.Solved() {
			t.Fatalf("Solve(%q): both strategies must solve a permutation instance", start)
		}
		if ucs.Cost != astar.Cost {
			t.Errorf("Costs disagree for %q: ucs=%d astar=%d", start, ucs.Cost, astar.Cost)
		}
	}
}

// Every emitted path must step through single-swap successors whose step
// costs sum to the reported total.
func TestPathConsistency(t *testing.T) {
	cases := [][2]string{
		{"9 7 8", "7 8 9"},
		{"14 11 15 13 12", "15 14 13 12 11"},
		{"-2 4 0 -1 3 5 1", "-2 -1 0 1 3 4 5"},
	}
	for _, strat := range []func() search.Strategy{
		func() search.Strategy { return search.NewUCS() },
		func() search.Strategy { return search.NewAStar() },
	} {
		for _, c := range cases {
			res := solve(t, strat(), c[0], c[1])
			if !res.Solved() {
				t.Fatalf("Solve(%q, %q): expected a solution", c[0], c[1])
			}

			if res.Path[0].String() != c[0] {
				t.Errorf("Path must start at the start layout, got %q", res.Path[0].String())
			}
			if res.Path[len(res.Path)-1].String() != c[1] {
				t.Errorf("Path must end at the goal layout, got %q", res.Path[len(res.Path)-1].String())
			}

			sum := 0
			for i := 1; i < len(res.Path); i++ {
				child := res.Path[i]
				sum += child.StepCost()

				found := false
				for _, succ := range res.Path[i-1].Children() {
					if succ.Equal(child) && succ.StepCost() == child.StepCost() {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Path[%d] %q is not a single-swap successor of %q",
						i, child.String(), res.Path[i-1].String())
				}
			}
			if sum != res.Cost {
				t.Errorf("Step costs sum to %d, reported total is %d", sum, res.Cost)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, strat := range []func() search.Strategy{
		func() search.Strategy { return search.NewUCS() },
		func() search.Strategy { return search.NewAStar() },
	} {
		first := solve(t, strat(), "14 11 15 13 12", "15 14 13 12 11")
		second := solve(t, strat(), "14 11 15 13 12", "15 14 13 12 11")

		a, b := pathStrings(first), pathStrings(second)
		if len(a) != len(b) {
			t.Fatalf("Repeated solve changed path length: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("Repeated solve changed Path[%d]: %q vs %q", i, a[i], b[i])
			}
		}
		if first.Cost != second.Cost || first.Stats != second.Stats {
			t.Errorf("Repeated solve changed cost or stats: %+v vs %+v", first, second)
		}
	}
}

// The closed set makes every layout expand at most once, so the number
// of expansions can never exceed the size of the state space.
func TestNoRepeatedExpansion(t *testing.T) {
	const stateSpace = 24 // 4! permutations
	res := solve(t, search.NewUCS(), "4 3 2 1", "1 2 3 4")
	if res.Stats.Expanded > stateSpace {
		t.Errorf("Expanded %d nodes in a %d-state space", res.Stats.Expanded, stateSpace)
	}
}

func TestNoSolution(t *testing.T) {
	t.Run("UCS different multiset", func(t *testing.T) {
		res := solve(t, search.NewUCS(), "1 2", "1 3")
		if res.Solved() {
			t.Error("Expected no solution")
		}
		if res.Path != nil {
			t.Error("Unsolved result must carry a nil path")
		}
	})

	t.Run("AStar different multiset", func(t *testing.T) {
		_, err := search.NewEngine(search.NewAStar()).Solve(mustParse(t, "1 2"), mustParse(t, "1 3"))
		var de *heuristic.DomainError
		if !errors.As(err, &de) {
			t.Fatalf("Expected *DomainError, got %v", err)
		}
	})
}

func TestTrivialProblems(t *testing.T) {
	t.Run("Start equals goal", func(t *testing.T) {
		res := solve(t, search.NewUCS(), "1 2 3", "1 2 3")
		if !res.Solved() || res.Cost != 0 || len(res.Path) != 1 {
			t.Errorf("Expected single-layout zero-cost path, got cost=%d len=%d", res.Cost, len(res.Path))
		}
	})

	t.Run("Empty sequences", func(t *testing.T) {
		res := solve(t, search.NewUCS(), "", "")
		if !res.Solved() || res.Cost != 0 || len(res.Path) != 1 {
			t.Errorf("Expected trivial solution, got cost=%d len=%d", res.Cost, len(res.Path))
		}
	})

	t.Run("Single value unreachable", func(t *testing.T) {
		res := solve(t, search.NewUCS(), "5", "6")
		if res.Solved() {
			t.Error("Expected no solution")
		}
	})
}

func TestExpansionLimit(t *testing.T) {
	engine := search.NewEngine(search.NewUCS())
	engine.SetMaxExpansions(1)

	res, err := engine.Solve(mustParse(t, "9 7 8"), mustParse(t, "7 8 9"))
	if !errors.Is(err, search.ErrExpansionLimit) {
		t.Fatalf("Expected ErrExpansionLimit, got %v", err)
	}
	if res == nil || res.Stats.Expanded != 1 {
		t.Errorf("Expected stats for the aborted solve, got %+v", res)
	}
}

func TestExpandHook(t *testing.T) {
	engine := search.NewEngine(search.NewUCS())
	calls := 0
	last := 0
	engine.SetExpandHook(func(expanded int) {
		calls++
		if expanded != last+1 {
			t.Errorf("Hook counts must be contiguous: got %d after %d", expanded, last)
		}
		last = expanded
	})

	res, err := engine.Solve(mustParse(t, "9 7 8"), mustParse(t, "7 8 9"))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if calls != res.Stats.Expanded {
		t.Errorf("Hook fired %d times for %d expansions", calls, res.Stats.Expanded)
	}
}
