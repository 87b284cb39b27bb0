package csp

// State holds one Domain per variable at a node of the search tree.
// Branching clones the state, so a State is owned by exactly one search path.
type State struct {
	doms []Domain
}

// NewState returns a state with numVars full domains {1..maxValue}.
func NewState(numVars, maxValue int) *State {
	full := NewDomain(maxValue)
	s := &State{doms: make([]Domain, numVars)}
	for i := range s.doms {
		s.doms[i] = full.Clone()
	}

	return s
}

// Len returns the number of variables.
func (s *State) Len() int { return len(s.doms) }

// Domain returns the live domain of variable v; narrowing it narrows the state.
func (s *State) Domain(v int) *Domain { return &s.doms[v] }

// Clone returns a deep copy, the snapshot taken before every branch.
func (s *State) Clone() *State {
	c := &State{doms: make([]Domain, len(s.doms))}
	for i := range s.doms {
		c.doms[i] = s.doms[i].Clone()
	}

	return c
}

// Complete reports whether every domain is a singleton.
func (s *State) Complete() bool {
	for i := range s.doms {
		if !s.doms[i].IsSingleton() {
			return false
		}
	}

	return true
}

// Assignment extracts the bound values. Only meaningful when Complete is true;
// unbound variables read as their smallest candidate.
func (s *State) Assignment() Assignment {
	a := make(Assignment, len(s.doms))
	for i := range s.doms {
		a[i] = s.doms[i].Value()
	}

	return a
}
