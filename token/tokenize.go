package token

import (
	"unicode"
	"unicode/utf8"
)

type tokenOpts struct {
	comments bool
}

type TokenOpt func(*tokenOpts)

// TokenComments causes Tokenize to emit TComment tokens instead of
// discarding comments.
func TokenComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.comments = v }
}

// Tokenize appends the tokens of src to dst.  Whitespace is skipped.
// A ';' starts a comment which runs to the end of the line.
func Tokenize(dst []Token, src []byte, tOpts ...TokenOpt) ([]Token, error) {
	opts := &tokenOpts{}
	for _, o := range tOpts {
		o(opts)
	}
	posDoc := NewPosDoc(src)
	i := 0
	n := len(src)
	for i < n {
		r, sz := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && sz <= 1 {
			return dst, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(i))
		}
		switch {
		case unicode.IsSpace(r):
			i += sz
		case r == '(':
			dst = append(dst, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case r == ')':
			dst = append(dst, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case r == ';':
			j := i
			for j < n && src[j] != '\n' {
				j++
			}
			if opts.comments {
				dst = append(dst, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			}
			i = j
		case r == '"':
			m, err := scanQuoted(src[i:])
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i+m))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i : i+m]})
			i += m
		case unicode.IsControl(r):
			return dst, NewTokenizeErr(ErrUnicodeControl, posDoc.Pos(i))
		default:
			j := i
			for j < n {
				rr, ssz := utf8.DecodeRune(src[j:])
				if !isAtomRune(rr) {
					break
				}
				j += ssz
			}
			if j == i {
				return dst, UnexpectedErr(string(r), posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TAtom, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
		}
	}
	return dst, nil
}

// Balance checks that the parentheses of toks are balanced.
func Balance(toks []Token) error {
	var stack []*Token
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case TLParen:
			stack = append(stack, t)
		case TRParen:
			if len(stack) == 0 {
				return &ErrImbalancedStructure{Close: t}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return &ErrImbalancedStructure{Open: stack[len(stack)-1]}
	}
	return nil
}
