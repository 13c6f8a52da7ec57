// Package oval builds, extends and queries the symbolic trees which carry
// assessment objects, items and states between an evaluation engine and
// its probes.
//
// A tree is made of [ir.Node] values.  An object is an element whose
// children are elements, one per entity, each holding a terminal atom:
//
//	obj, err := oval.CreateObject("state",
//		[]oval.AttrSpec{oval.Attr("operator", "AND")},
//		oval.Elem("arch", "i386"))
//
// encodes as
//
//	((state :operator "AND") (arch "i386"))
//
// Queries return a comma-ok result: an absent element, attribute or value
// is a normal outcome and never an error.  Builders and mutators fail with
// [ErrInvalidAttributeValue] when an attribute value is not an atom, and
// leave their input untouched when they do.
//
// Trees are not safe for concurrent mutation.  Once built, a tree may be
// queried from several goroutines.
package oval
