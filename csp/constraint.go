package csp

import (
	"errors"
	"fmt"
)

// errInconsistent signals that propagation proved the current branch
// infeasible. It is control flow for the search and never leaves the package.
var errInconsistent = errors.New("csp: inconsistent")

// Kind tags the constraint variants understood by the solver.
type Kind int

const (
	// KindFixedValue pins one variable to a value.
	KindFixedValue Kind = iota
	// KindAllDifferent requires pairwise distinct values.
	KindAllDifferent
	// KindSumEquals requires the values of a scope to add up to a target.
	KindSumEquals
	// KindPathDisjunction requires at least one candidate scope to add up to a target.
	KindPathDisjunction
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindFixedValue:
		return "FixedValue"
	case KindAllDifferent:
		return "AllDifferent"
	case KindSumEquals:
		return "SumEquals"
	case KindPathDisjunction:
		return "PathDisjunction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Constraint is one compiled relation over weight variables.
//
// Propagate narrows domains in s and reports whether any domain changed. It
// returns errInconsistent when the relation can no longer hold; the solver
// then abandons the branch. Satisfied checks a complete assignment.
// Constraints are immutable once built and may be shared between searches.
type Constraint interface {
	Kind() Kind
	Variables() []int
	Propagate(s *State) (bool, error)
	Satisfied(a Assignment) bool
	String() string
}

// propagateSum applies interval reasoning to sum(vars) == target:
// every x_i is bounded by [target - Σmax(others), target - Σmin(others)].
// Bounds computed from a pass's starting sums stay sound when other domains
// shrink during the pass; the solver's fixpoint loop tightens them later.
func propagateSum(s *State, vars []int, target int) (bool, error) {
	sumMin, sumMax := 0, 0
	for _, v := range vars {
		d := s.Domain(v)
		if d.IsEmpty() {
			return false, errInconsistent
		}
		sumMin += d.Min()
		sumMax += d.Max()
	}
	if target < sumMin || target > sumMax {
		return false, errInconsistent
	}

	changed := false
	for _, v := range vars {
		d := s.Domain(v)
		otherMin := sumMin - d.Min()
		otherMax := sumMax - d.Max()
		lo := target - otherMax
		hi := target - otherMin
		below := d.RemoveBelow(lo)
		above := d.RemoveAbove(hi)
		if d.IsEmpty() {
			return false, errInconsistent
		}
		changed = changed || below || above
	}

	return changed, nil
}

// sumBounds returns the smallest and largest totals vars can still reach.
func sumBounds(s *State, vars []int) (int, int) {
	lo, hi := 0, 0
	for _, v := range vars {
		d := s.Domain(v)
		lo += d.Min()
		hi += d.Max()
	}

	return lo, hi
}
