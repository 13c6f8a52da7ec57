package operation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/oval/debug"
)

// Op compares an item value with the pattern value of an object entity.
type Op interface {
	Match(value, pattern string) (bool, error)
	String() string
}

// Symbol names an operation and instantiates it for a datatype.
type Symbol interface {
	String() string
	Instance(datatype string) (Op, error)
}

type name string

func (n name) String() string { return string(n) }

const (
	Equals                  = "equals"
	NotEqual                = "not equal"
	CaseInsensitiveEquals   = "case insensitive equals"
	CaseInsensitiveNotEqual = "case insensitive not equal"
	GreaterThan             = "greater than"
	LessThan                = "less than"
	GreaterThanOrEqual      = "greater than or equal"
	LessThanOrEqual         = "less than or equal"
	PatternMatch            = "pattern match"
	BitwiseAnd              = "bitwise and"
	BitwiseOr               = "bitwise or"
)

var symbols = map[string]Symbol{}

func register(ss ...Symbol) {
	for _, s := range ss {
		symbols[s.String()] = s
	}
}

func init() {
	register(
		&eqSymbol{name: Equals},
		&eqSymbol{name: NotEqual, negate: true},
		&foldSymbol{name: CaseInsensitiveEquals},
		&foldSymbol{name: CaseInsensitiveNotEqual, negate: true},
		&orderSymbol{name: GreaterThan, accept: func(c int) bool { return c > 0 }},
		&orderSymbol{name: LessThan, accept: func(c int) bool { return c < 0 }},
		&orderSymbol{name: GreaterThanOrEqual, accept: func(c int) bool { return c >= 0 }},
		&orderSymbol{name: LessThanOrEqual, accept: func(c int) bool { return c <= 0 }},
		&patternSymbol{name: PatternMatch},
		&bitSymbol{name: BitwiseAnd, and: true},
		&bitSymbol{name: BitwiseOr},
	)
}

// Lookup returns the operation op for values of datatype.  An empty op
// is equals and an empty datatype is string.
func Lookup(op, datatype string) (Op, error) {
	if op == "" {
		op = Equals
	}
	s, ok := symbols[strings.ToLower(strings.TrimSpace(op))]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, op)
	}
	res, err := s.Instance(normDatatype(datatype))
	if err != nil {
		return nil, err
	}
	if debug.Match() {
		debug.Logf("operation %s for datatype %q\n", res, datatype)
	}
	return res, nil
}

// Symbols returns the names of all operations, sorted.
func Symbols() []string {
	res := make([]string, 0, len(symbols))
	for k := range symbols {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func normDatatype(dt string) string {
	switch dt = strings.TrimSpace(dt); dt {
	case "", "string":
		return "string"
	case "integer":
		return "int"
	}
	return dt
}
