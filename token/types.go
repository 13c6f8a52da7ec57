package token

import (
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TAtom
	TString
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TAtom:    "TAtom",
		TString:  "TString",
		TComment: "TComment",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the text the token denotes: quoted strings are unescaped,
// everything else is returned as is.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
