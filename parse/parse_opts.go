package parse

import (
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/token"
)

type parseOpts struct {
	comments  bool
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseComments tokenizes comments as well.  They are dropped from the
// tree but show up in debug output.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParsePositions records in m the position of the token which opened
// each parsed node.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
