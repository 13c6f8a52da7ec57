package probe

import "errors"

var (
	ErrNoProbe   = errors.New("no probe for object")
	ErrProbe     = errors.New("probe failed")
	ErrBadObject = errors.New("bad object")
	ErrReplay    = errors.New("bad replay source")
)
