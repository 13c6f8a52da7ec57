package eval

import "errors"

var (
	ErrCompile   = errors.New("filter compile error")
	ErrRun       = errors.New("filter run error")
	ErrNotObject = errors.New("filter applies to elements")
)
