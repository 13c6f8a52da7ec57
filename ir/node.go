package ir

import "strings"

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Atom is the text of an AtomType node.
	Atom string

	// Name and Attrs describe the header of an ElementType node.
	Name  string
	Attrs []*Attr

	// Values are the children of an ElementType node or the items of a
	// ListType node.
	Values []*Node
}

// Attr is one attribute of an element header.  A nil Value is a flag
// attribute.  Bare is set for markers which were written without the
// leading ':'.
type Attr struct {
	Name  string
	Value *Node
	Bare  bool
}

const MarkerPrefix = ":"

func (a *Attr) Marker() string {
	if a.Bare {
		return a.Name
	}
	return MarkerPrefix + a.Name
}

func (a *Attr) IsFlag() bool {
	return a.Value == nil
}

func (a *Attr) Clone() *Attr {
	res := &Attr{Name: a.Name, Bare: a.Bare}
	if a.Value != nil {
		res.Value = a.Value.Clone()
	}
	return res
}

// MarkerName returns the attribute name encoded by marker and whether
// marker carried the ':' prefix.
func MarkerName(marker string) (string, bool) {
	if name, ok := strings.CutPrefix(marker, MarkerPrefix); ok {
		return name, true
	}
	return marker, false
}

func FromAtom(v string) *Node {
	return FromAtomAt(&Node{}, v)
}

func FromAtomAt(p *Node, v string) *Node {
	p.Type = AtomType
	p.Atom = v
	return p
}

func NewElement(name string, attrs []*Attr, values ...*Node) *Node {
	res := &Node{
		Type:  ElementType,
		Name:  name,
		Attrs: attrs,
	}
	return res.Append(values...)
}

func FromList(values []*Node) *Node {
	res := &Node{Type: ListType}
	return res.Append(values...)
}

// Append adds values as the last children of y and returns y.
func (y *Node) Append(values ...*Node) *Node {
	for _, v := range values {
		v.Parent = y
		v.ParentIndex = len(y.Values)
		y.Values = append(y.Values, v)
	}
	return y
}

// RemoveAt removes the child at index i, renumbering the children which
// follow it.
func (y *Node) RemoveAt(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return y
	}
	removed := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	removed.Parent = nil
	removed.ParentIndex = 0
	return y
}

func (y *Node) IsAtom() bool    { return y != nil && y.Type == AtomType }
func (y *Node) IsList() bool    { return y != nil && y.Type == ListType }
func (y *Node) IsElement() bool { return y != nil && y.Type == ElementType }

// Len returns the number of slots y occupies in the list notation:
// one for the header of an element plus its children.
func (y *Node) Len() int {
	switch y.Type {
	case ElementType:
		return 1 + len(y.Values)
	case ListType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Type = y.Type
	dst.Atom = y.Atom
	dst.Name = y.Name
	dst.Attrs = nil
	if y.Attrs != nil {
		dst.Attrs = make([]*Attr, len(y.Attrs))
		for i, a := range y.Attrs {
			dst.Attrs[i] = a.Clone()
		}
	}
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dstI := &Node{}
			yv.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			dst.Values[i] = dstI
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
