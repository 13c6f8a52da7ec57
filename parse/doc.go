// Package parse reads the parenthesized list notation into [ir.Node]
// trees.
//
// A list whose head is an atom is an element named by that atom:
//
//	(rpminfo_object (name "httpd"))
//
// A list whose head is itself a list of two or more bare atoms is an
// element whose header carries attributes.  After the name, a ':'
// prefixed atom is a marker; the atom following a marker is its value
// unless it is another marker.  Unprefixed atoms in marker position are
// bare flags:
//
//	((state :operator "AND" :negate) (arch "i386"))
//
// Every other list, including (), is an [ir.ListType] node.
package parse
