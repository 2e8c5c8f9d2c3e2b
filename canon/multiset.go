/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package canon

// Multiset maps each distinct canonical Form to its occurrence count.
type Multiset map[Form]int

// NewMultiset canonicalizes every item in the collection and counts
// occurrences per Form.
func NewMultiset(items []Item) (Multiset, error) {
	m := make(Multiset, len(items))
	for _, item := range items {
		f, err := Canonicalize(item)
		if err != nil {
			return nil, err
		}
		m[f]++
	}
	return m, nil
}

// Equal reports whether two multisets contain the same distinct Forms with
// the same occurrence counts.
func (m Multiset) Equal(other Multiset) bool {
	if len(m) != len(other) {
		return false
	}
	for f, n := range m {
		if other[f] != n {
			return false
		}
	}
	return true
}

// Equivalent reports whether two collections of items are equal as
// multisets: insensitive to record order, sensitive to how many times each
// record appears. Empty collections are equivalent only to other empty
// collections.
func Equivalent(a, b []Item) (bool, error) {
	ma, err := NewMultiset(a)
	if err != nil {
		return false, err
	}
	mb, err := NewMultiset(b)
	if err != nil {
		return false, err
	}
	return ma.Equal(mb), nil
}

// Diff returns the symmetric difference of two multisets: the Forms (with
// surplus counts) present in m but not in other, and vice versa. Both
// results are empty iff the multisets are equal. This is a diagnostic
// convenience on top of Equal, not part of the equivalence contract.
func (m Multiset) Diff(other Multiset) (onlyM, onlyOther Multiset) {
	onlyM = make(Multiset)
	onlyOther = make(Multiset)
	for f, n := range m {
		if d := n - other[f]; d > 0 {
			onlyM[f] = d
		}
	}
	for f, n := range other {
		if d := n - m[f]; d > 0 {
			onlyOther[f] = d
		}
	}
	return onlyM, onlyOther
}
