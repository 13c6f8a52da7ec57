// Package entity projects typed assessment entities onto object trees
// and reads them back.
//
// An object of kind "rpminfo" holding one string entity name="httpd"
// projects to
//
//	(rpminfo_object (name "httpd"))
//
// Only the string-like datatypes (string, version, evr_string) are
// projected.  Other datatypes are skipped unless [Coerce] or [Strict] is
// given.  References to variables are never projected.
package entity
