package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8        = errors.New("bad utf8")
	ErrUnterminated   = errors.New("unterminated")
	ErrDocBalance     = errors.New("imbalanced document")
	ErrBadEscape      = errors.New("bad escape")
	ErrBadUnicode     = errors.New("bad unicode")
	ErrUnicodeControl = errors.New("unicode control")
	ErrEmptyDoc       = errors.New("empty document")
)

type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrDocBalance
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return ErrDocBalance.Error() + ": " + UnexpectedErr(string(i.Close.Bytes), i.Close.Pos).Error()
	}
	if i.Close == nil {
		return ErrDocBalance.Error() + ": " + fmt.Sprintf("unmatched %s at %s", string(i.Open.Bytes),
			i.Open.Pos.String())
	}
	return fmt.Sprintf("%s: %s at %s closed by %s at %s",
		ErrDocBalance.Error(),
		string(i.Open.Bytes), i.Open.Pos.String(),
		string(i.Close.Bytes), i.Close.Pos.String())
}
