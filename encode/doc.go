// Package encode writes [ir.Node] trees in the parenthesized list
// notation read by package parse.
//
// Names and attribute markers are written bare unless they need quoting.
// Atom values are always double quoted, which keeps them apart from
// markers when read back.  The default layout breaks nested elements onto
// indented lines; [EncodeWire] selects the single line form exchanged with
// probes.
package encode
