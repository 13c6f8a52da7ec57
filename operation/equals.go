package operation

import (
	"fmt"
	"strings"
)

type eqSymbol struct {
	name
	negate bool
}

func (s eqSymbol) Instance(dt string) (Op, error) {
	if _, ok := comparers[dt]; !ok && dt != "string" && dt != "binary" && dt != "boolean" && dt != "ipv4_address" && dt != "ipv6_address" {
		return nil, fmt.Errorf("%w: %s on %s", ErrDatatype, s, dt)
	}
	return &eqOp{name: s.name, dt: dt, negate: s.negate}, nil
}

type eqOp struct {
	name
	dt     string
	negate bool
}

func (o eqOp) Match(value, pattern string) (bool, error) {
	eq, err := equal(o.dt, value, pattern)
	if err != nil {
		return false, err
	}
	return eq != o.negate, nil
}

func equal(dt, value, pattern string) (bool, error) {
	switch dt {
	case "boolean":
		a, err := parseBool(value)
		if err != nil {
			return false, err
		}
		b, err := parseBool(pattern)
		if err != nil {
			return false, err
		}
		return a == b, nil
	case "binary":
		return strings.EqualFold(value, pattern), nil
	}
	if cmp, ok := comparers[dt]; ok {
		c, err := cmp(value, pattern)
		if err != nil {
			return false, err
		}
		return c == 0, nil
	}
	return value == pattern, nil
}

// parseBool accepts the OVAL spellings of booleans.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean", ErrValue, s)
}

type foldSymbol struct {
	name
	negate bool
}

func (s foldSymbol) Instance(dt string) (Op, error) {
	if dt != "string" {
		return nil, fmt.Errorf("%w: %s on %s", ErrDatatype, s, dt)
	}
	return &foldOp{name: s.name, negate: s.negate}, nil
}

type foldOp struct {
	name
	negate bool
}

func (o foldOp) Match(value, pattern string) (bool, error) {
	return strings.EqualFold(value, pattern) != o.negate, nil
}
