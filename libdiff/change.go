package libdiff

import (
	"fmt"

	"github.com/signadot/oval/ir"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
	AttrInsert
	AttrDelete
	AttrReplace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	case AttrInsert:
		return "addattr"
	case AttrDelete:
		return "rmattr"
	case AttrReplace:
		return "reattr"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Change is one difference.  Path locates the node in the tree it was
// found in: the new tree for Insert, the old one otherwise.  Attr names
// the attribute of attribute changes.  From and To are nil for inserts and
// deletes respectively; for a flag attribute they are its marker.
type Change struct {
	Kind Kind
	Path string
	Attr string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	switch c.Kind {
	case AttrInsert, AttrDelete, AttrReplace:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Path, c.Attr)
	}
	return fmt.Sprintf("%s %s", c.Kind, c.Path)
}

// Reverse returns the changes which undo cs, in reverse order.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		r := Change{Path: c.Path, Attr: c.Attr, From: c.To, To: c.From}
		switch c.Kind {
		case Insert:
			r.Kind = Delete
		case Delete:
			r.Kind = Insert
		case AttrInsert:
			r.Kind = AttrDelete
		case AttrDelete:
			r.Kind = AttrInsert
		default:
			r.Kind = c.Kind
		}
		res[len(cs)-1-i] = r
	}
	return res
}

// ToIR renders cs as a tree:
//
//	(diff ((replace :path "$/o/name") (from "a") (to "b")) ...)
func ToIR(cs []Change) *ir.Node {
	res := ir.NewElement("diff", nil)
	for i := range cs {
		c := &cs[i]
		attrs := []*ir.Attr{{Name: "path", Value: ir.FromAtom(c.Path)}}
		if c.Attr != "" {
			attrs = append(attrs, &ir.Attr{Name: "attr", Value: ir.FromAtom(c.Attr)})
		}
		elm := ir.NewElement(c.Kind.String(), attrs)
		if c.From != nil {
			elm.Append(ir.NewElement("from", nil, c.From.Clone()))
		}
		if c.To != nil {
			elm.Append(ir.NewElement("to", nil, c.To.Clone()))
		}
		res.Append(elm)
	}
	return res
}
