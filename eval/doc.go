// Package eval compiles boolean filter expressions over object trees.
//
// Expressions use the expr language.  The environment of an object has
//
//	name             the element name of the object
//	elements         map of child element name to its scalar text
//	attrs            map of header attribute name to its value
//	text(e)          scalar text of child e, "" if absent
//	attr(e, a)       value of attribute a of child e, or of the object
//	                 itself when e is ""
//	has(e)           whether child e exists
//	hasattr(e, a)    whether attribute a exists, on the object when e is ""
//	count(e)         number of children named e
//	getenv(v)        the environment variable v
//
// For example
//
//	name == "rpminfo_item" && text("arch") in ["i386", "i686"]
package eval
