package entity

import "errors"

var (
	ErrUnknownDatatype = errors.New("unknown datatype")
	ErrBadValue        = errors.New("bad entity value")
	ErrNotObject       = errors.New("not an object tree")
	ErrInvalid         = errors.New("invalid entity")
)
