package operation

import (
	"fmt"
	"regexp"
	"sync"
)

type patternSymbol struct {
	name
}

func (s patternSymbol) Instance(dt string) (Op, error) {
	if dt != "string" && dt != "version" && dt != "evr_string" && dt != "ios_version" {
		return nil, fmt.Errorf("%w: %s on %s", ErrDatatype, s, dt)
	}
	return &patternOp{name: s.name}, nil
}

type patternOp struct {
	name
}

// compiled patterns, shared by every pattern match.
var patterns sync.Map

func compile(p string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(p); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPattern, err)
	}
	patterns.Store(p, re)
	return re, nil
}

func (o patternOp) Match(value, pattern string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(value), nil
}
