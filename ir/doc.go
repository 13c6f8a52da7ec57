// Package ir provides the intermediate representation (IR) for symbolic
// trees exchanged between the evaluation engine and probes.
//
// # Overview
//
// On the wire a tree is a parenthesized list notation in which one
// container plays three roles: a list's first slot names it, may carry
// attributes, and the remaining slots are children or a value:
//
//	(rpminfo_object (name "httpd"))
//	((state :operator "AND") (arch "i386"))
//
// The IR removes that ambiguity.  A Node is a tagged union whose Type
// selects which fields are meaningful:
//
//   - AtomType: Atom holds UTF-8 text (names, values).
//   - ElementType: a named node.  Name is never empty, Attrs is the
//     ordered attribute set and Values holds the children, either nested
//     elements or a terminal value.
//   - ListType: any other list, such as () or a list headed by a list
//     which is not a header.  Lists keep arbitrary text representable.
//
// # Attributes
//
// Attributes are stored with their name unprefixed.  The textual marker
// is ":" + Name.  An attribute with a nil Value is a flag.  Attribute
// values are always atoms.  Bare records a marker which appeared without
// the ':' prefix, as some hand written trees do.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships through Parent and
// ParentIndex.  Path returns a location such as "$/obj/name[0]".
//
// # Comparison
//
//	equal := ir.Equal(a, b)
//
// Equality is by value: two trees are equal when their notation would
// parse to the same IR.
//
// # JSON Interoperability
//
// The IR is representable in JSON, which makes it usable by tools with no
// support for the list notation:
//
//	d, err := ir.ToJSON(node)
//	node, err := ir.FromJSON(d)
//
// ApplyJSONPatch applies RFC 6902 patches against this form.
//
// # Thread Safety
//
// Node structures are not thread-safe.  A tree may be queried from many
// goroutines once it is no longer mutated.
package ir
