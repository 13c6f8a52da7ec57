package oval

import (
	"fmt"

	"github.com/signadot/oval/debug"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/operation"
)

type MatchConfig struct {
	Header     bool
	Operations bool
}

type MatchOpt func(*MatchConfig)

// MatchHeader controls whether the root names and attributes must match.
// Probes answer an object with items of another name, so replay turns it
// off.
func MatchHeader(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Header = v }
}

// MatchOperations makes a pattern element with an operation or datatype
// attribute compare its scalar text with that operation, as in
//
//	((name :operation "pattern match") "^http")
//
// The operation and datatype attributes are then not required on doc.
func MatchOperations(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Operations = v }
}

const (
	OperationAttr = "operation"
	DatatypeAttr  = "datatype"
)

// Match reports whether doc satisfies match.  Atoms match by text and
// lists item by item.  An element matches when each attribute of match is
// present on doc with the same value and each child element of match is
// matched by some child of doc with that name.  Other children of match
// are compared by position.
func Match(doc, match *ir.Node, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{Header: true}
	for _, o := range opts {
		o(cfg)
	}
	if doc == nil || match == nil {
		return false, fmt.Errorf("%w: nil node", ir.ErrInvalidNode)
	}
	m := &matcher{ops: cfg.Operations}
	return m.match(doc, match, cfg.Header)
}

type matcher struct {
	ops bool
}

func (m *matcher) match(doc, match *ir.Node, header bool) (bool, error) {
	if debug.Match() {
		debug.Logf("match %s at %s against %s\n", match.Type, match.Path(), debug.Tree{Node: doc})
	}
	if doc.Type != match.Type {
		return false, nil
	}
	switch match.Type {
	case ir.AtomType:
		return doc.Atom == match.Atom, nil
	case ir.ListType:
		return m.positional(doc, match, 0, len(match.Values))
	case ir.ElementType:
		if header && !m.header(doc, match) {
			return false, nil
		}
		if op, ok, err := m.operation(match); err != nil || ok {
			if err != nil {
				return false, err
			}
			return m.scalar(doc, match, op)
		}
		return m.children(doc, match)
	}
	return false, nil
}

func (m *matcher) header(doc, match *ir.Node) bool {
	if doc.Name != match.Name {
		return false
	}
	for _, a := range match.Attrs {
		if m.ops && (a.Name == OperationAttr || a.Name == DatatypeAttr) {
			continue
		}
		if !HasAttr(doc, a.Name) {
			return false
		}
		if a.Value == nil {
			continue
		}
		v, ok := AttrValue(doc, a.Name)
		if !ok || v.Atom != a.Value.Atom {
			return false
		}
	}
	return true
}

// operation returns the operation match asks for, if operations are on
// and match is a scalar element with an operation or datatype.
func (m *matcher) operation(match *ir.Node) (operation.Op, bool, error) {
	if !m.ops || len(match.Values) != 1 || !match.Values[0].IsAtom() {
		return nil, false, nil
	}
	opName, hasOp := AttrValue(match, OperationAttr)
	dt, hasDT := AttrValue(match, DatatypeAttr)
	if !hasOp && !hasDT {
		return nil, false, nil
	}
	var on, dn string
	if hasOp {
		on = opName.Atom
	}
	if hasDT {
		dn = dt.Atom
	}
	op, err := operation.Lookup(on, dn)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", match.Path(), err)
	}
	return op, true, nil
}

func (m *matcher) scalar(doc, match *ir.Node, op operation.Op) (bool, error) {
	if len(doc.Values) != 1 || !doc.Values[0].IsAtom() {
		return false, nil
	}
	ok, err := op.Match(doc.Values[0].Atom, match.Values[0].Atom)
	if err != nil {
		return false, fmt.Errorf("%s: %w", match.Path(), err)
	}
	return ok, nil
}

func (m *matcher) positional(doc, match *ir.Node, from, to int) (bool, error) {
	if to > len(doc.Values) || (match.IsList() && len(doc.Values) != len(match.Values)) {
		return false, nil
	}
	for i := from; i < to; i++ {
		ok, err := m.match(doc.Values[i], match.Values[i], true)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (m *matcher) children(doc, match *ir.Node) (bool, error) {
	for i, mv := range match.Values {
		if !mv.IsElement() {
			ok, err := m.positional(doc, match, i, i+1)
			if err != nil || !ok {
				return false, err
			}
			continue
		}
		found := false
		for _, dv := range Elements(doc, mv.Name) {
			ok, err := m.match(dv, mv, true)
			if err != nil {
				return false, err
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// Trim returns a copy of doc holding only the children named by match,
// themselves trimmed.  Attributes and scalar values of doc are kept.
func Trim(match, doc *ir.Node) *ir.Node {
	if !match.IsElement() || !doc.IsElement() {
		return doc.Clone()
	}
	res := ir.NewElement(doc.Name, cloneAttrs(doc.Attrs))
	res.Parent, res.ParentIndex = doc.Parent, doc.ParentIndex
	for _, dv := range doc.Values {
		if !dv.IsElement() {
			res.Append(dv.Clone())
			continue
		}
		mv, ok := FindElement(match, dv.Name)
		if !ok {
			continue
		}
		res.Append(Trim(mv, dv))
	}
	return res
}

func cloneAttrs(as []*ir.Attr) []*ir.Attr {
	if as == nil {
		return nil
	}
	res := make([]*ir.Attr, len(as))
	for i, a := range as {
		res[i] = a.Clone()
	}
	return res
}
