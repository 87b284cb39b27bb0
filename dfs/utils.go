// Package dfs provides helpers shared by path enumeration and deduplication:
// a fixed-size visited bitset and canonical vertex-set signatures.
package dfs

import (
	"sort"
	"strconv"
	"strings"
)

// bitset is a fixed-size set of small non-negative integers.
type bitset []uint64

// newBitset allocates a bitset able to hold values 0..n-1.
func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) has(i int) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }
func (b bitset) set(i int)      { b[i>>6] |= 1 << (uint(i) & 63) }
func (b bitset) clear(i int)    { b[i>>6] &^= 1 << (uint(i) & 63) }

// setSignature returns a canonical string for the vertex set of p:
// the ascending ids joined with commas.
// Time Complexity: O(L log L).
func setSignature(p Path) string {
	ids := append([]int(nil), p...)
	sort.Ints(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ",")
}

// HasRepeat reports whether p visits any vertex twice.
func HasRepeat(p Path) bool {
	seen := make(map[int]struct{}, len(p))
	for _, v := range p {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}
