package gomap

import (
	"errors"
	"fmt"
)

var ErrUnsupportedType = errors.New("unsupported type")

// MarshalError reports a struct field that has no element or attribute
// form.  Field is the Go field path, rooted at the element name, such as
// "item.epoch".
type MarshalError struct {
	Field string
	Err   error
}

func (e *MarshalError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("to ir: %v", e.Err)
	}
	return fmt.Sprintf("to ir: field %s: %v", e.Field, e.Err)
}

func (e *MarshalError) Unwrap() error { return e.Err }

// UnmarshalError reports a node that could not fill a field.  Path is the
// location of the node in the tree, as returned by (*ir.Node).Path.
type UnmarshalError struct {
	Field string
	Path  string
	Err   error
}

func (e *UnmarshalError) Error() string {
	switch {
	case e.Field == "" && e.Path == "":
		return fmt.Sprintf("from ir: %v", e.Err)
	case e.Path == "":
		return fmt.Sprintf("from ir: field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("from ir: field %s at %s: %v", e.Field, e.Path, e.Err)
}

func (e *UnmarshalError) Unwrap() error { return e.Err }
