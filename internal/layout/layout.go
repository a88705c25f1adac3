package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Swap costs depend only on the parity of the two values exchanged.
const (
	CostEvenPair  = 2  // both values even
	CostOddPair   = 20 // both values odd
	CostMixedPair = 11 // one even, one odd
)

// Layout is an immutable configuration of the integer sequence, together
// with the cost of the swap that produced it from its parent. Parsed roots
// carry a step cost of zero. Equality and identity are defined over the
// values only; the step cost is not part of identity.
type Layout struct {
	values   []int
	stepCost int
}

// ParseError reports a malformed integer token in the input text.
type ParseError struct {
	Token string // the offending token
	Index int    // zero-based token position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("layout: invalid integer %q at token %d", e.Token, e.Index)
}

// New creates a root layout over a copy of values, with step cost zero.
func New(values []int) Layout {
	vs := make([]int, len(values))
	copy(vs, values)
	return Layout{values: vs}
}

// Parse splits text on any run of whitespace and parses each token as a
// signed integer. Empty or whitespace-only input yields the zero-length
// layout. A malformed token fails with a *ParseError.
func Parse(text string) (Layout, error) {
	fields := strings.Fields(text)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Layout{}, &ParseError{Token: f, Index: i}
		}
		values[i] = v
	}
	return Layout{values: values}, nil
}

// Len returns the number of values in the layout.
func (l Layout) Len() int {
	return len(l.values)
}

// Value returns the value at position i.
func (l Layout) Value(i int) int {
	return l.values[i]
}

// Values returns a copy of the underlying sequence.
func (l Layout) Values() []int {
	vs := make([]int, len(l.values))
	copy(vs, l.values)
	return vs
}

// StepCost returns the parity cost of the swap that produced this layout,
// or zero for a parsed root.
func (l Layout) StepCost() int {
	return l.stepCost
}

// Equal reports element-wise equality of the value sequences. Step costs
// are ignored.
func (l Layout) Equal(other Layout) bool {
	if len(l.values) != len(other.values) {
		return false
	}
	for i, v := range l.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// IsGoal reports whether this layout matches the goal layout.
func (l Layout) IsGoal(goal Layout) bool {
	return l.Equal(goal)
}

// Key returns the identity of the layout for use as a map key. Two layouts
// share a key exactly when they are Equal.
func (l Layout) Key() string {
	return l.String()
}

// String formats the values joined by single spaces, with no trailing
// whitespace. Parse(String()) round-trips.
func (l Layout) String() string {
	if len(l.values) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range l.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Children enumerates every layout reachable by a single swap. Pairs are
// visited with the outer index ascending and the inner index descending:
// for each i from 0 to n-2, j runs from n-1 down to i+1. This order feeds
// the FIFO tie-break of the search and is part of the external contract.
// A layout with fewer than two values has no children.
func (l Layout) Children() []Layout {
	n := len(l.values)
	if n < 2 {
		return nil
	}
	children := make([]Layout, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := n - 1; j > i; j-- {
			vs := make([]int, n)
			copy(vs, l.values)
			vs[i], vs[j] = vs[j], vs[i]
			children = append(children, Layout{
				values:   vs,
				stepCost: SwapCost(l.values[i], l.values[j]),
			})
		}
	}
	return children
}

// IsEven reports the parity of v. Zero and negative even values count as
// even.
func IsEven(v int) bool {
	return v%2 == 0
}

// SwapCost returns the cost of exchanging values a and b under the parity
// table.
func SwapCost(a, b int) int {
	switch {
	case IsEven(a) && IsEven(b):
		return CostEvenPair
	case !IsEven(a) && !IsEven(b):
		return CostOddPair
	default:
		return CostMixedPair
	}
}
