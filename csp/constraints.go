package csp

import (
	"fmt"
)

// FixedValue pins variable Var to Value: an initial partial assignment.
type FixedValue struct {
	Var   int
	Value int
}

// NewFixedValue returns the constraint Var == value.
func NewFixedValue(v, value int) *FixedValue { return &FixedValue{Var: v, Value: value} }

// Kind implements Constraint.
func (c *FixedValue) Kind() Kind { return KindFixedValue }

// Variables implements Constraint.
func (c *FixedValue) Variables() []int { return []int{c.Var} }

// Propagate collapses the domain to the fixed value.
func (c *FixedValue) Propagate(s *State) (bool, error) {
	d := s.Domain(c.Var)
	if !d.Has(c.Value) {
		return false, errInconsistent
	}

	return d.Assign(c.Value), nil
}

// Satisfied implements Constraint.
func (c *FixedValue) Satisfied(a Assignment) bool { return a[c.Var] == c.Value }

// String implements Constraint.
func (c *FixedValue) String() string { return fmt.Sprintf("FixedValue(x%d=%d)", c.Var, c.Value) }

// AllDifferent requires the variables in Vars to take pairwise distinct values.
type AllDifferent struct {
	Vars []int
}

// NewAllDifferent returns the constraint over a copy of vars.
func NewAllDifferent(vars ...int) *AllDifferent {
	return &AllDifferent{Vars: append([]int(nil), vars...)}
}

// Kind implements Constraint.
func (c *AllDifferent) Kind() Kind { return KindAllDifferent }

// Variables implements Constraint.
func (c *AllDifferent) Variables() []int { return append([]int(nil), c.Vars...) }

// Propagate runs three rules:
//  1. a bound value is removed from every other variable (repeated until no
//     new variable becomes bound);
//  2. fewer distinct candidates than variables is a contradiction;
//  3. when candidates and variables are equally many, every value must be
//     used, so a value held by a single variable is assigned to it.
func (c *AllDifferent) Propagate(s *State) (bool, error) {
	changed := false

	// 1) Forward checking
	for {
		progress := false
		for _, v := range c.Vars {
			d := s.Domain(v)
			if d.IsEmpty() {
				return false, errInconsistent
			}
			if !d.IsSingleton() {
				continue
			}
			val := d.Value()
			for _, w := range c.Vars {
				if w == v {
					continue
				}
				dw := s.Domain(w)
				if dw.Remove(val) {
					progress = true
					if dw.IsEmpty() {
						return false, errInconsistent
					}
				}
			}
		}
		if !progress {
			break
		}
		changed = true
	}
	if len(c.Vars) == 0 {
		return changed, nil
	}

	// 2) Pigeonhole
	union := NewDomainFromValues(s.Domain(c.Vars[0]).MaxValue())
	for _, v := range c.Vars {
		union.unionWith(*s.Domain(v))
	}
	free := union.Count()
	if free < len(c.Vars) {
		return false, errInconsistent
	}
	if free > len(c.Vars) {
		return changed, nil
	}

	// 3) Hidden singles
	for _, val := range union.Values() {
		holder, holders := -1, 0
		for _, v := range c.Vars {
			if s.Domain(v).Has(val) {
				holder = v
				holders++
				if holders > 1 {
					break
				}
			}
		}
		if holders != 1 {
			continue
		}
		d := s.Domain(holder)
		if d.IsSingleton() {
			if d.Value() != val {
				return false, errInconsistent
			}
			continue
		}
		d.Assign(val)
		changed = true
	}

	return changed, nil
}

// Satisfied implements Constraint.
func (c *AllDifferent) Satisfied(a Assignment) bool {
	seen := make(map[int]struct{}, len(c.Vars))
	for _, v := range c.Vars {
		if _, dup := seen[a[v]]; dup {
			return false
		}
		seen[a[v]] = struct{}{}
	}

	return true
}

// String implements Constraint.
func (c *AllDifferent) String() string { return fmt.Sprintf("AllDifferent(%d vars)", len(c.Vars)) }

// SumEquals requires the values of Vars to add up to Target.
type SumEquals struct {
	Vars   []int
	Target int
}

// NewSumEquals returns the constraint sum(vars) == target.
func NewSumEquals(vars []int, target int) *SumEquals {
	return &SumEquals{Vars: append([]int(nil), vars...), Target: target}
}

// Kind implements Constraint.
func (c *SumEquals) Kind() Kind { return KindSumEquals }

// Variables implements Constraint.
func (c *SumEquals) Variables() []int { return append([]int(nil), c.Vars...) }

// Propagate applies bounds consistency.
func (c *SumEquals) Propagate(s *State) (bool, error) { return propagateSum(s, c.Vars, c.Target) }

// Satisfied implements Constraint.
func (c *SumEquals) Satisfied(a Assignment) bool { return a.Sum(c.Vars) == c.Target }

// String implements Constraint.
func (c *SumEquals) String() string { return fmt.Sprintf("SumEquals(%v=%d)", c.Vars, c.Target) }

// PathDisjunction requires at least one of Candidates to add up to Target.
// Each candidate is the edge set of one enumerated simple path.
type PathDisjunction struct {
	Candidates [][]int
	Target     int
}

// NewPathDisjunction returns the constraint OR_i sum(candidates[i]) == target.
// An empty candidate list can never be satisfied.
func NewPathDisjunction(candidates [][]int, target int) *PathDisjunction {
	cs := make([][]int, len(candidates))
	for i, set := range candidates {
		cs[i] = append([]int(nil), set...)
	}

	return &PathDisjunction{Candidates: cs, Target: target}
}

// Kind implements Constraint.
func (c *PathDisjunction) Kind() Kind { return KindPathDisjunction }

// Variables returns the union of all candidate scopes in first-seen order.
func (c *PathDisjunction) Variables() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, set := range c.Candidates {
		for _, v := range set {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}

	return out
}

// Propagate keeps the disjunction alive while some candidate can still reach
// the target (Σmin <= target <= Σmax). With no such candidate the branch
// fails; with exactly one, that candidate's sum is enforced.
func (c *PathDisjunction) Propagate(s *State) (bool, error) {
	alive, last := 0, -1
	for i, set := range c.Candidates {
		lo, hi := sumBounds(s, set)
		if lo <= c.Target && c.Target <= hi {
			alive++
			last = i
			if alive > 1 {
				return false, nil
			}
		}
	}
	if alive == 0 {
		return false, errInconsistent
	}

	return propagateSum(s, c.Candidates[last], c.Target)
}

// Satisfied implements Constraint.
func (c *PathDisjunction) Satisfied(a Assignment) bool {
	for _, set := range c.Candidates {
		if a.Sum(set) == c.Target {
			return true
		}
	}

	return false
}

// String implements Constraint.
func (c *PathDisjunction) String() string {
	return fmt.Sprintf("PathDisjunction(%d candidates=%d)", len(c.Candidates), c.Target)
}
