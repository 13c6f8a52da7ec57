package ir

import (
	"fmt"
	"strings"

	"github.com/signadot/oval/token"
)

// Validate checks the structural invariants of the tree rooted at y.
// Element names are never empty.  Attribute names are non-empty bare
// tokens stored without the marker prefix and attribute values are atoms.
//
// Validate also rejects the few trees the list notation cannot tell
// apart from others, so that a valid tree always survives an encode and
// parse cycle unchanged: a list headed by an atom, a list headed by a
// childless element with attributes, a bare marker with a value and a
// bare marker directly after a flag.
func Validate(y *Node) error {
	if y == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidNode)
	}
	return y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		return true, validateOne(n)
	})
}

func validateOne(n *Node) error {
	switch n.Type {
	case AtomType:
		if len(n.Values) != 0 || len(n.Attrs) != 0 {
			return fmt.Errorf("%w: atom with children at %s", ErrInvalidNode, n.Path())
		}
	case ListType:
		if len(n.Attrs) != 0 {
			return fmt.Errorf("%w: list with attributes at %s", ErrInvalidNode, n.Path())
		}
		if len(n.Values) != 0 {
			switch h := n.Values[0]; {
			case h.IsAtom():
				return fmt.Errorf("%w: list headed by an atom at %s", ErrInvalidNode, n.Path())
			case h.IsElement() && len(h.Values) == 0 && len(h.Attrs) != 0:
				return fmt.Errorf("%w: list headed by a bare header at %s", ErrInvalidNode, n.Path())
			}
		}
	case ElementType:
		if n.Name == "" {
			return fmt.Errorf("%w: element without a name at %s", ErrInvalidNode, n.Path())
		}
		for i, a := range n.Attrs {
			if a == nil {
				return fmt.Errorf("%w: nil attribute %d at %s", ErrInvalidNode, i, n.Path())
			}
			if a.Name == "" {
				return fmt.Errorf("%w: attribute %d has no name at %s", ErrInvalidNode, i, n.Path())
			}
			if strings.HasPrefix(a.Name, MarkerPrefix) {
				return fmt.Errorf("%w: attribute %q stored with marker prefix at %s", ErrInvalidNode, a.Name, n.Path())
			}
			if a.Value != nil && a.Value.Type != AtomType {
				return fmt.Errorf("%w: attribute %q has %s value at %s", ErrInvalidNode, a.Name, a.Value.Type, n.Path())
			}
			if token.NeedsQuote(a.Name) {
				return fmt.Errorf("%w: attribute name %q is not a bare token at %s", ErrInvalidNode, a.Name, n.Path())
			}
			if !a.Bare {
				continue
			}
			if a.Value != nil {
				return fmt.Errorf("%w: bare marker %q with a value at %s", ErrInvalidNode, a.Name, n.Path())
			}
			if i > 0 && !n.Attrs[i-1].Bare && n.Attrs[i-1].Value == nil {
				return fmt.Errorf("%w: bare marker %q follows a flag at %s", ErrInvalidNode, a.Name, n.Path())
			}
		}
	default:
		return fmt.Errorf("%w: unknown type %d at %s", ErrInvalidNode, n.Type, n.Path())
	}
	for i, v := range n.Values {
		if v == nil {
			return fmt.Errorf("%w: nil child %d at %s", ErrInvalidNode, i, n.Path())
		}
	}
	return nil
}
