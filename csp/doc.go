// Package csp is a small finite-domain constraint solver for edge-weight
// labelling.
//
// Every variable ranges over {1..MaxValue}. Domains are bitsets, so cloning a
// State for a branch costs one word copy per 64 values.
//
// Constraints:
//
//   - FixedValue       x = c
//   - AllDifferent     pairwise distinct values (forward checking, pigeonhole,
//     hidden singles when candidates and variables are equally many)
//   - SumEquals        Σx = t, with interval bounds
//   - PathDisjunction  at least one candidate scope sums to t; a single
//     surviving candidate is enforced like SumEquals
//
// Search:
//
//	propagate to fixpoint → check ctx → branch on the smallest domain
//	(ties → lowest id) over ascending values on a cloned State.
//
// Solutions are delivered as an iter.Seq2 that is lazy and single-use.
// CountParallel fans the first branching level out over an errgroup.
//
// Example:
//
//	m, _ := csp.NewModel(3, 3)
//	_ = m.Add(csp.NewAllDifferent(0, 1, 2), csp.NewSumEquals([]int{0, 1}, 3))
//	s, _ := csp.NewSolver(m)
//	for a, err := range s.Solutions(ctx) {
//	    if err != nil { ... }
//	    fmt.Println(a)
//	}
package csp
