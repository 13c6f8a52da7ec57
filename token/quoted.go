package token

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// NeedsQuote reports whether v cannot be written as a bare atom.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for _, r := range v {
		if !isAtomRune(r) {
			return true
		}
	}
	return false
}

func isAtomRune(r rune) bool {
	switch r {
	case '(', ')', '"', ';', utf8.RuneError:
		return false
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return false
	}
	return unicode.IsGraphic(r)
}

// Quote returns v as a double quoted string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u')
				d = append(d, []byte(leftPad(strconv.FormatInt(int64(r), 16), 4))...)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func leftPad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

// Unquote returns the text denoted by the double quoted string v.
func Unquote(v string) (string, error) {
	n, err := scanQuoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return quotedToString([]byte(v))
}

// scanQuoted returns the length of the quoted string at the start of d,
// including both quotes.
func scanQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i, ErrBadUTF8
		}
		i += sz
		if escaped {
			switch r {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if i+4 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, ErrBadUnicode
				}
				i += 4
			default:
				return i, ErrBadEscape
			}
			escaped = false
			continue
		}
		switch r {
		case '"':
			return i, nil
		case '\\':
			escaped = true
		default:
			if unicode.IsControl(r) && r != '\n' && r != '\t' {
				return i, ErrUnicodeControl
			}
		}
	}
	return i, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// quotedToString decodes a quoted string already checked by scanQuoted.
func quotedToString(d []byte) (string, error) {
	b := &strings.Builder{}
	i := 1
	n := len(d) - 1
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		e := d[i]
		i++
		switch e {
		case '"', '\\', '/':
			b.WriteByte(e)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			cp, err := strconv.ParseUint(string(d[i:i+4]), 16, 32)
			if err != nil {
				return "", ErrBadUnicode
			}
			i += 4
			r := rune(cp)
			if utf16.IsSurrogate(r) {
				if i+6 > n || d[i] != '\\' || d[i+1] != 'u' {
					return "", ErrBadUnicode
				}
				lo, err := strconv.ParseUint(string(d[i+2:i+6]), 16, 32)
				if err != nil {
					return "", ErrBadUnicode
				}
				r = utf16.DecodeRune(r, rune(lo))
				if r == utf8.RuneError {
					return "", ErrBadUnicode
				}
				i += 6
			}
			b.WriteRune(r)
		default:
			return "", ErrBadEscape
		}
	}
	return b.String(), nil
}
