package csp

import (
	"errors"
	"fmt"
)

// Sentinel errors for model construction and search.
var (
	// ErrVariableOutOfRange indicates a constraint referencing a variable outside [0, NumVars).
	ErrVariableOutOfRange = errors.New("csp: variable out of range")

	// ErrValueOutOfRange indicates a fixed value outside [1, MaxValue].
	ErrValueOutOfRange = errors.New("csp: value out of range")

	// ErrEmptyScope indicates a sum constraint (or a disjunction candidate) over no variables.
	ErrEmptyScope = errors.New("csp: constraint scope is empty")

	// ErrBadModel indicates NewModel was called with non-positive sizes.
	ErrBadModel = errors.New("csp: model needs at least one variable and one value")

	// ErrInvalidConfiguration indicates that the fixed values contradict each
	// other before any search starts.
	ErrInvalidConfiguration = errors.New("csp: invalid configuration")

	// ErrSequenceConsumed is yielded when a solution sequence is ranged over twice.
	ErrSequenceConsumed = errors.New("csp: solution sequence already consumed")
)

// Model is a set of variables sharing the domain {1..MaxValue} and the
// constraints over them. A Model is built once and then only read.
type Model struct {
	numVars     int
	maxValue    int
	constraints []Constraint
}

// NewModel returns an empty model with numVars variables over {1..maxValue}.
func NewModel(numVars, maxValue int) (*Model, error) {
	if numVars < 1 || maxValue < 1 {
		return nil, fmt.Errorf("%w: vars=%d max=%d", ErrBadModel, numVars, maxValue)
	}

	return &Model{numVars: numVars, maxValue: maxValue}, nil
}

// NumVars returns the number of variables.
func (m *Model) NumVars() int { return m.numVars }

// MaxValue returns the largest admissible value.
func (m *Model) MaxValue() int { return m.maxValue }

// Constraints returns the constraints in insertion order.
func (m *Model) Constraints() []Constraint { return append([]Constraint(nil), m.constraints...) }

// Add validates and appends constraints. Nothing is added if any of them is invalid.
func (m *Model) Add(cs ...Constraint) error {
	for _, c := range cs {
		if err := m.check(c); err != nil {
			return err
		}
	}
	m.constraints = append(m.constraints, cs...)

	return nil
}

func (m *Model) check(c Constraint) error {
	for _, v := range c.Variables() {
		if v < 0 || v >= m.numVars {
			return fmt.Errorf("%s: %w: %d", c, ErrVariableOutOfRange, v)
		}
	}
	switch t := c.(type) {
	case *FixedValue:
		if t.Value < 1 || t.Value > m.maxValue {
			return fmt.Errorf("%s: %w: %d", c, ErrValueOutOfRange, t.Value)
		}
	case *SumEquals:
		if len(t.Vars) == 0 {
			return fmt.Errorf("%s: %w", c, ErrEmptyScope)
		}
	case *PathDisjunction:
		for i, set := range t.Candidates {
			if len(set) == 0 {
				return fmt.Errorf("%s: candidate %d: %w", c, i, ErrEmptyScope)
			}
		}
	}

	return nil
}

// checkFixed rejects fixed values that conflict on their own: one variable
// pinned to two values, or one value pinned to two variables that share an
// AllDifferent scope.
func (m *Model) checkFixed() error {
	fixed := make(map[int]int)
	for _, c := range m.constraints {
		f, ok := c.(*FixedValue)
		if !ok {
			continue
		}
		if prev, seen := fixed[f.Var]; seen && prev != f.Value {
			return fmt.Errorf("%w: x%d fixed to both %d and %d", ErrInvalidConfiguration, f.Var, prev, f.Value)
		}
		fixed[f.Var] = f.Value
	}
	if len(fixed) < 2 {
		return nil
	}

	for _, c := range m.constraints {
		ad, ok := c.(*AllDifferent)
		if !ok {
			continue
		}
		owner := make(map[int]int)
		for _, v := range ad.Vars {
			val, pinned := fixed[v]
			if !pinned {
				continue
			}
			if w, dup := owner[val]; dup && w != v {
				return fmt.Errorf("%w: value %d fixed on both x%d and x%d", ErrInvalidConfiguration, val, w, v)
			}
			owner[val] = v
		}
	}

	return nil
}

// propagate runs every constraint until no domain changes. It reports false
// when some constraint proved the state infeasible.
func (m *Model) propagate(s *State) bool {
	for {
		changed := false
		for _, c := range m.constraints {
			ch, err := c.Propagate(s)
			if err != nil {
				return false
			}
			changed = changed || ch
		}
		if !changed {
			return true
		}
	}
}

// satisfied reports whether a complete assignment meets every constraint.
func (m *Model) satisfied(a Assignment) bool {
	for _, c := range m.constraints {
		if !c.Satisfied(a) {
			return false
		}
	}

	return true
}
