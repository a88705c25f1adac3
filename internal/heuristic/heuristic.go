// Package heuristic computes an admissible lower bound on the remaining
// swap cost between two layouts. The bound is built from the cycle
// decomposition of the permutation mapping the current layout onto the
// goal: 2-cycles are priced exactly, cycles of length three to five are
// solved optimally by bounded enumeration, and larger cycles are priced
// by a shared greedy pool that never overestimates.
package heuristic

import (
	"fmt"
	"math"

	"upside-down-research.com/oss/swapsearch/internal/layout"
)

// DomainError reports that the two layouts are not permutations of the
// same multiset, so no swap sequence can transform one into the other.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "heuristic: " + e.Reason
}

// CheckPermutation verifies that current and goal hold the same multiset
// of values. It returns a *DomainError when they do not.
func CheckPermutation(current, goal layout.Layout) error {
	_, err := targetIndexes(current, goal)
	return err
}

// CycleBound returns an admissible lower bound on the cost of reaching
// goal from current. It is zero exactly when the layouts are equal, and
// never exceeds the true minimum cost under the parity swap table.
func CycleBound(current, goal layout.Layout) (int, error) {
	t, err := targetIndexes(current, goal)
	if err != nil {
		return 0, err
	}

	n := len(t)
	visited := make([]bool, n)
	total := 0

	// Parities of values on cycles longer than five are pooled and
	// priced together after all cycles have been visited.
	pooledSwaps := 0
	pooledEven := 0
	pooledOdd := 0

	for i := 0; i < n; i++ {
		if visited[i] || t[i] == i {
			visited[i] = true
			continue
		}

		// Collect the cycle through i in traversal order.
		cycle := []int{}
		for p := i; !visited[p]; p = t[p] {
			visited[p] = true
			cycle = append(cycle, p)
		}

		switch k := len(cycle); {
		case k == 2:
			total += layout.SwapCost(current.Value(cycle[0]), current.Value(cycle[1]))
		case k <= 5:
			total += smallCycleCost(current, goal, cycle)
		default:
			pooledSwaps += k - 1
			for _, p := range cycle {
				if layout.IsEven(current.Value(p)) {
					pooledEven++
				} else {
					pooledOdd++
				}
			}
		}
	}

	return total + pooledGreedy(pooledSwaps, pooledEven, pooledOdd), nil
}

// MinSwaps returns the number of swaps, regardless of cost, needed to
// transform current into goal under the position mapping of
// targetIndexes: every non-trivial cycle of length k contributes k-1.
// Without duplicate values this is the minimum; with duplicates another
// matching of equal values can need fewer swaps.
func MinSwaps(current, goal layout.Layout) (int, error) {
	t, err := targetIndexes(current, goal)
	if err != nil {
		return 0, err
	}
	visited := make([]bool, len(t))
	swaps := 0
	for i := range t {
		if visited[i] {
			continue
		}
		k := 0
		for p := i; !visited[p]; p = t[p] {
			visited[p] = true
			k++
		}
		swaps += k - 1
	}
	return swaps, nil
}

// targetIndexes maps each position of current to the goal position that
// will receive its value. Duplicate values consume goal positions in
// left-to-right order, so the result is a well-defined permutation.
func targetIndexes(current, goal layout.Layout) ([]int, error) {
	if current.Len() != goal.Len() {
		return nil, &DomainError{Reason: fmt.Sprintf(
			"layouts differ in length (%d vs %d)", current.Len(), goal.Len())}
	}

	slots := make(map[int][]int, goal.Len())
	for j := 0; j < goal.Len(); j++ {
		v := goal.Value(j)
		slots[v] = append(slots[v], j)
	}

	t := make([]int, current.Len())
	for i := 0; i < current.Len(); i++ {
		v := current.Value(i)
		q := slots[v]
		if len(q) == 0 {
			return nil, &DomainError{Reason: fmt.Sprintf(
				"value %d occurs more often in current than in goal", v)}
		}
		t[i] = q[0]
		slots[v] = q[1:]
	}
	return t, nil
}

// smallCycleCost finds the exact minimum cost of resolving a cycle of
// three to five positions. It enumerates every sequence of k-1 swaps
// whose operands lie on the cycle, pruning any partial sequence whose
// running cost already meets the best complete sequence found.
func smallCycleCost(current, goal layout.Layout, cycle []int) int {
	k := len(cycle)
	arr := make([]int, k)
	want := make([]int, k)
	for m, p := range cycle {
		arr[m] = current.Value(p)
		want[m] = goal.Value(p)
	}

	// Unordered index pairs in lexicographic order.
	pairs := make([][2]int, 0, k*(k-1)/2)
	for a := 0; a < k-1; a++ {
		for b := a + 1; b < k; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	best := math.MaxInt
	var walk func(depth, cost int)
	walk = func(depth, cost int) {
		if depth == k-1 {
			for m := range arr {
				if arr[m] != want[m] {
					return
				}
			}
			best = cost
			return
		}
		for _, pr := range pairs {
			a, b := pr[0], pr[1]
			c := cost + layout.SwapCost(arr[a], arr[b])
			if c >= best {
				continue
			}
			arr[a], arr[b] = arr[b], arr[a]
			walk(depth+1, c)
			arr[a], arr[b] = arr[b], arr[a]
		}
	}
	walk(0, 0)

	if best == math.MaxInt {
		// A valid cycle always resolves in k-1 swaps; this branch is a
		// conservative fallback confined to the cycle's own parities.
		even, odd := 0, 0
		for _, v := range arr {
			if layout.IsEven(v) {
				even++
			} else {
				odd++
			}
		}
		return pooledGreedy(k-1, even, odd)
	}
	return best
}

// pooledGreedy charges the given number of swaps against a pool of value
// parities, always picking the cheapest pair class still affordable. Each
// charged swap retires a single pooled element; on a mixed swap the even
// operand survives for later pairing. Treating the pool as fungible
// across cycles keeps the result a lower bound.
func pooledGreedy(swaps, even, odd int) int {
	total := 0
	for s := 0; s < swaps; s++ {
		switch {
		case even >= 2:
			total += layout.CostEvenPair
			even--
		case even >= 1 && odd >= 1:
			total += layout.CostMixedPair
			odd--
		case odd >= 2:
			total += layout.CostOddPair
			odd--
		default:
			return total
		}
	}
	return total
}
