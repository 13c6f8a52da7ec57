// Package operation implements the comparisons an object entity may ask
// for with its operation attribute:
//
//	((name :operation "pattern match") "^http")
//	((version :operation "greater than" :datatype "version") "2.4")
//
// An Op compares an item value against the pattern value of the object.
// How values compare depends on the datatype: "01" equals "1" as an int
// but not as a string, and versions compare segment by segment.
package operation
