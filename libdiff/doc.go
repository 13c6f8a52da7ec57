// Package libdiff compares object trees.
//
// [Diff] reports element and attribute level changes.  Children are
// aligned with a sequence diff over a one rune summary of each child, so
// an inserted element does not shift every later comparison.  [TextDiff]
// compares the encoded forms line by line.
package libdiff
