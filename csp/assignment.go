package csp

// Assignment maps each variable (edge id) to its value. The solver hands out a
// fresh slice per solution; callers may keep it.
type Assignment []int

// Value returns the value of variable v.
func (a Assignment) Value(v int) int { return a[v] }

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment { return append(Assignment(nil), a...) }

// Sum adds up the values of vars.
func (a Assignment) Sum(vars []int) int {
	total := 0
	for _, v := range vars {
		total += a[v]
	}

	return total
}

// IsPermutation reports whether the values are exactly {1..len(a)}, each once.
func (a Assignment) IsPermutation() bool {
	seen := make([]bool, len(a)+1)
	for _, v := range a {
		if v < 1 || v > len(a) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
