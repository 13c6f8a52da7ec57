package operation

import (
	"fmt"
	"strconv"
	"strings"
)

// bitSymbol tests bits: "bitwise and" holds when every bit of the pattern
// is set in the value, "bitwise or" when the value sets no bit outside
// the pattern.
type bitSymbol struct {
	name
	and bool
}

func (s bitSymbol) Instance(dt string) (Op, error) {
	if dt != "int" {
		return nil, fmt.Errorf("%w: %s on %s", ErrDatatype, s, dt)
	}
	return &bitOp{name: s.name, and: s.and}, nil
}

type bitOp struct {
	name
	and bool
}

func (o bitOp) Match(value, pattern string) (bool, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrValue, err)
	}
	p, err := strconv.ParseUint(strings.TrimSpace(pattern), 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrValue, err)
	}
	if o.and {
		return v&p == p, nil
	}
	return v|p == p, nil
}
