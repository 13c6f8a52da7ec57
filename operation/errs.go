package operation

import "errors"

var (
	ErrUnknown  = errors.New("unknown operation")
	ErrDatatype = errors.New("operation not defined for datatype")
	ErrValue    = errors.New("bad value")
	ErrPattern  = errors.New("bad pattern")
)
