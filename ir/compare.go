package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case AtomType:
		return strings.Compare(a.Atom, b.Atom)
	case ListType:
		return compareValues(a.Values, b.Values)
	case ElementType:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if c := compareAttrs(a.Attrs, b.Attrs); c != 0 {
			return c
		}
		return compareValues(a.Values, b.Values)
	}
	return 0
}

// Equal reports whether a and b are value-identical.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Atom < List < Element
func rank(t Type) int {
	switch t {
	case AtomType:
		return 0
	case ListType:
		return 1
	case ElementType:
		return 2
	}
	return 100
}

func compareValues(a, b []*Node) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareAttrs(a, b []*Attr) int {
	n := min(len(a), len(b))
	for i := range n {
		x, y := a[i], b[i]
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		if x.Bare != y.Bare {
			if x.Bare {
				return 1
			}
			return -1
		}
		// flags sort before valued attributes
		if c := Compare(x.Value, y.Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
