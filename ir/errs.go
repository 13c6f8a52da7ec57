package ir

import (
	"errors"
)

var (
	ErrInvalidNode = errors.New("invalid node")
	ErrBadJSON     = errors.New("bad ir json")
	ErrPatch       = errors.New("patch error")
)
