package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal   = errors.New("internal parse error")
	ErrParse      = errors.New("parse error")
	ErrEmptyName  = fmt.Errorf("%w: empty name", ErrParse)
	ErrEmptyAttr  = fmt.Errorf("%w: empty attribute name", ErrParse)
	ErrMultiple   = fmt.Errorf("%w: more than one top level form", ErrParse)
	ErrUnexpected = fmt.Errorf("%w: unexpected token", ErrParse)
)
