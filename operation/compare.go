package operation

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

type comparer func(a, b string) (int, error)

// comparers orders values of the datatypes which have an order.
var comparers = map[string]comparer{
	"int":              compareInt,
	"float":            compareFloat,
	"version":          compareVersion,
	"ios_version":      compareVersion,
	"fileset_revision": compareVersion,
	"evr_string":       compareEVR,
}

type orderSymbol struct {
	name
	accept func(int) bool
}

func (s orderSymbol) Instance(dt string) (Op, error) {
	c, ok := comparers[dt]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrDatatype, s, dt)
	}
	return &orderOp{name: s.name, cmp: c, accept: s.accept}, nil
}

type orderOp struct {
	name
	cmp    comparer
	accept func(int) bool
}

func (o orderOp) Match(value, pattern string) (bool, error) {
	c, err := o.cmp(value, pattern)
	if err != nil {
		return false, err
	}
	return o.accept(c), nil
}

func compareInt(a, b string) (int, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValue, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return cmp.Compare(x, y), nil
}

func compareFloat(a, b string) (int, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValue, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return cmp.Compare(x, y), nil
}

// compareEVR orders epoch:version-release strings.  A missing epoch is
// 0 and a missing release sorts before any release.
func compareEVR(a, b string) (int, error) {
	ea, va, ra := splitEVR(a)
	eb, vb, rb := splitEVR(b)
	c, err := compareInt(ea, eb)
	if err != nil {
		return 0, err
	}
	if c != 0 {
		return c, nil
	}
	if c, _ := compareVersion(va, vb); c != 0 {
		return c, nil
	}
	return compareVersion(ra, rb)
}

func splitEVR(s string) (epoch, version, release string) {
	epoch = "0"
	if i := strings.IndexByte(s, ':'); i >= 0 {
		if i > 0 {
			epoch = s[:i]
		}
		s = s[i+1:]
	}
	version = s
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		version, release = s[:i], s[i+1:]
	}
	return epoch, version, release
}

// compareVersion orders versions by their runs of digits and of
// letters, ignoring separators.  Digit runs compare numerically and sort
// after letter runs.  When one version runs out of segments first it is
// the smaller, unless the other continues with a '~'.
func compareVersion(a, b string) (int, error) {
	for {
		a = strings.TrimLeftFunc(a, isSep)
		b = strings.TrimLeftFunc(b, isSep)
		switch {
		case strings.HasPrefix(a, "~") || strings.HasPrefix(b, "~"):
			if !strings.HasPrefix(a, "~") {
				return 1, nil
			}
			if !strings.HasPrefix(b, "~") {
				return -1, nil
			}
			a, b = a[1:], b[1:]
			continue
		case a == "" && b == "":
			return 0, nil
		case a == "":
			return -1, nil
		case b == "":
			return 1, nil
		}
		sa, na := segment(a)
		sb, nb := segment(b)
		a, b = a[len(sa):], b[len(sb):]
		switch {
		case na && !nb:
			return 1, nil
		case !na && nb:
			return -1, nil
		case na:
			sa = strings.TrimLeft(sa, "0")
			sb = strings.TrimLeft(sb, "0")
			if c := cmp.Compare(len(sa), len(sb)); c != 0 {
				return c, nil
			}
		}
		if c := strings.Compare(sa, sb); c != 0 {
			return c, nil
		}
	}
}

func isDigit(r byte) bool { return '0' <= r && r <= '9' }

func isAlpha(r byte) bool { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }

func isSep(r rune) bool {
	if r >= 0x80 {
		return true
	}
	b := byte(r)
	return b != '~' && !isDigit(b) && !isAlpha(b)
}

// segment returns the leading run of digits or of letters of s, which
// starts with one or the other.
func segment(s string) (string, bool) {
	num := isDigit(s[0])
	i := 1
	for i < len(s) && (num && isDigit(s[i]) || !num && isAlpha(s[i])) {
		i++
	}
	return s[:i], num
}
