package csp

import (
	"math/bits"
	"strconv"
	"strings"
)

// Domain is a finite set of candidate values in the range [1, max], stored as
// a bitset: bit i represents value i+1.
//
// Narrowing methods (Remove, RemoveBelow, RemoveAbove, Assign) mutate the
// receiver in place and report whether anything was removed. Search code
// never shares a Domain between branches: State.Clone copies every word.
type Domain struct {
	max   int
	words []uint64
}

// NewDomain returns the full domain {1..max}.
func NewDomain(max int) Domain {
	d := Domain{max: max, words: make([]uint64, (max+63)/64)}
	for v := 1; v <= max; v++ {
		d.words[(v-1)>>6] |= 1 << (uint(v-1) & 63)
	}

	return d
}

// NewDomainFromValues returns the domain containing exactly the given values.
// Values outside [1, max] are ignored.
func NewDomainFromValues(max int, values ...int) Domain {
	d := Domain{max: max, words: make([]uint64, (max+63)/64)}
	for _, v := range values {
		if v >= 1 && v <= max {
			d.words[(v-1)>>6] |= 1 << (uint(v-1) & 63)
		}
	}

	return d
}

// MaxValue returns the upper end of the value range, not of the current set.
func (d Domain) MaxValue() int { return d.max }

// Has reports whether v is still a candidate.
func (d Domain) Has(v int) bool {
	if v < 1 || v > d.max {
		return false
	}

	return d.words[(v-1)>>6]&(1<<(uint(v-1)&63)) != 0
}

// Count returns the number of candidates. Zero means the branch is dead.
func (d Domain) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// IsEmpty reports whether no candidate is left.
func (d Domain) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// IsSingleton reports whether exactly one candidate is left.
func (d Domain) IsSingleton() bool { return d.Count() == 1 }

// Value returns the smallest candidate; for a singleton this is the bound value.
func (d Domain) Value() int { return d.Min() }

// Min returns the smallest candidate, or 0 if the domain is empty.
func (d Domain) Min() int {
	for i, w := range d.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w) + 1
		}
	}

	return 0
}

// Max returns the largest candidate, or 0 if the domain is empty.
func (d Domain) Max() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if w := d.words[i]; w != 0 {
			return i*64 + bits.Len64(w)
		}
	}

	return 0
}

// Values returns the candidates in ascending order.
func (d Domain) Values() []int {
	out := make([]int, 0, d.Count())
	for i, w := range d.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, i*64+tz+1)
			w &= w - 1
		}
	}

	return out
}

// Clone returns an independent copy.
func (d Domain) Clone() Domain {
	return Domain{max: d.max, words: append([]uint64(nil), d.words...)}
}

// Equal reports whether both domains hold the same candidates.
func (d Domain) Equal(o Domain) bool {
	if d.max != o.max {
		return false
	}
	for i := range d.words {
		if d.words[i] != o.words[i] {
			return false
		}
	}

	return true
}

// Remove drops v and reports whether it was present.
func (d *Domain) Remove(v int) bool {
	if !d.Has(v) {
		return false
	}
	d.words[(v-1)>>6] &^= 1 << (uint(v-1) & 63)

	return true
}

// RemoveBelow drops every candidate < lo.
func (d *Domain) RemoveBelow(lo int) bool {
	if lo <= 1 {
		return false
	}
	before := d.Count()
	n := lo - 1 // low bits to clear
	for i := range d.words {
		if n <= 0 {
			break
		}
		if n >= 64 {
			d.words[i] = 0
			n -= 64
			continue
		}
		d.words[i] &^= (1 << uint(n)) - 1
		n = 0
	}

	return d.Count() != before
}

// RemoveAbove drops every candidate > hi.
func (d *Domain) RemoveAbove(hi int) bool {
	if hi >= d.max {
		return false
	}
	if hi < 0 {
		hi = 0
	}
	before := d.Count()
	for i := range d.words {
		low := i * 64
		switch {
		case low >= hi:
			d.words[i] = 0
		case low+64 > hi:
			d.words[i] &= (1 << uint(hi-low)) - 1
		}
	}

	return d.Count() != before
}

// Assign narrows the domain to {v}. If v is not a candidate the domain
// becomes empty. It reports whether anything was removed.
func (d *Domain) Assign(v int) bool {
	if d.Has(v) && d.Count() == 1 {
		return false
	}
	had := d.Has(v)
	if !had && d.IsEmpty() {
		return false
	}
	for i := range d.words {
		d.words[i] = 0
	}
	if had {
		d.words[(v-1)>>6] = 1 << (uint(v-1) & 63)
	}

	return true
}

// unionWith adds every candidate of o to d.
func (d *Domain) unionWith(o Domain) {
	for i := range d.words {
		d.words[i] |= o.words[i]
	}
}

// String renders the candidates as "{1,2,3}".
func (d Domain) String() string {
	vals := d.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, ",") + "}"
}
