// Package gomap maps tagged Go structs to object trees and back, the way
// probes fill items.
//
// Fields are mapped by the "ox" struct tag:
//
//	type RPMInfo struct {
//		ID      string   `ox:"id,attr"`
//		Name    string   `ox:"name"`
//		Arch    string   `ox:"arch,omitempty"`
//		Files   []string `ox:"file"`
//		Signed  bool     `ox:"signed,attr,flag"`
//		Private string   `ox:"-"`
//	}
//
// Untagged exported fields use the lower cased field name.  Scalars are
// written as text atoms, slices as repeated elements and nested structs as
// nested elements.  Values implementing encoding.TextMarshaler are written
// through it.
package gomap
