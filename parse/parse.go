package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/oval/debug"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/token"
)

// Parse parses exactly one form from d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	res, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(res) {
	case 0:
		return nil, token.ErrEmptyDoc
	case 1:
		return res[0], nil
	default:
		return nil, ErrMultiple
	}
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses the sequence of top level forms in d, as found in a
// file of recorded items.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, token.TokenComments(pOpts.comments))
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	if err := token.Balance(toks); err != nil {
		return nil, err
	}
	toks = dropComments(toks)
	var res []*ir.Node
	i := 0
	for i < len(toks) {
		sx, err := readForm(toks, &i)
		if err != nil {
			return nil, err
		}
		y, err := build(sx, pOpts)
		if err != nil {
			return nil, err
		}
		res = append(res, y)
	}
	return res, nil
}

func dropComments(toks []token.Token) []token.Token {
	res := toks[:0]
	for i := range toks {
		if toks[i].Type == token.TComment {
			continue
		}
		res = append(res, toks[i])
	}
	return res
}

// form is the untyped shape of the notation, before names and headers
// are recognised.
type form struct {
	tok  *token.Token
	list []*form
}

func (f *form) isAtom() bool {
	return f.tok.Type == token.TAtom || f.tok.Type == token.TString
}

func (f *form) text() string {
	return f.tok.String()
}

func readForm(toks []token.Token, pi *int) (*form, error) {
	t := &toks[*pi]
	*pi++
	switch t.Type {
	case token.TAtom, token.TString:
		return &form{tok: t}, nil
	case token.TRParen:
		return nil, fmt.Errorf("%w %s", ErrUnexpected, t.Pos)
	case token.TLParen:
	default:
		return nil, fmt.Errorf("%w: token %s", errInternal, t.Info())
	}
	res := &form{tok: t, list: []*form{}}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unbalanced %s", errInternal, t.Pos)
		}
		if toks[*pi].Type == token.TRParen {
			*pi++
			return res, nil
		}
		sub, err := readForm(toks, pi)
		if err != nil {
			return nil, err
		}
		res.list = append(res.list, sub)
	}
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func build(f *form, opts *parseOpts) (*ir.Node, error) {
	if f.isAtom() {
		res := ir.FromAtom(f.text())
		trackPos(res, f.tok.Pos, opts)
		return res, nil
	}
	if len(f.list) == 0 {
		res := ir.FromList(nil)
		trackPos(res, f.tok.Pos, opts)
		return res, nil
	}
	var res *ir.Node
	rest := f.list[1:]
	head := f.list[0]
	switch {
	case head.isAtom():
		name := head.text()
		if name == "" {
			return nil, fmt.Errorf("%w: %w", ErrEmptyName, token.ExpectedErr("a name", head.tok.Pos))
		}
		res = ir.NewElement(name, nil)
	default:
		name, attrs, ok, err := header(head)
		if err != nil {
			return nil, err
		}
		if ok {
			res = ir.NewElement(name, attrs)
		} else {
			res = ir.FromList(nil)
			rest = f.list
		}
	}
	trackPos(res, f.tok.Pos, opts)
	for _, sub := range rest {
		y, err := build(sub, opts)
		if err != nil {
			return nil, err
		}
		res.Append(y)
	}
	return res, nil
}

// header recognises a list of the form (name marker value? ...).
func header(f *form) (string, []*ir.Attr, bool, error) {
	if len(f.list) < 2 {
		return "", nil, false, nil
	}
	for _, sub := range f.list {
		if !sub.isAtom() {
			return "", nil, false, nil
		}
	}
	name := f.list[0].text()
	if name == "" {
		return "", nil, false, fmt.Errorf("%w: %w", ErrEmptyName, token.ExpectedErr("a name", f.list[0].tok.Pos))
	}
	var attrs []*ir.Attr
	items := f.list[1:]
	for i := 0; i < len(items); i++ {
		m := items[i]
		if m.tok.Type != token.TAtom {
			return "", nil, false, nil
		}
		aName, prefixed := ir.MarkerName(m.text())
		if !prefixed {
			attrs = append(attrs, &ir.Attr{Name: aName, Bare: true})
			continue
		}
		if aName == "" {
			return "", nil, false, fmt.Errorf("%w: %w", ErrEmptyAttr, token.ExpectedErr("an attribute name", m.tok.Pos))
		}
		attr := &ir.Attr{Name: aName}
		if i+1 < len(items) && isValue(items[i+1]) {
			i++
			attr.Value = ir.FromAtom(items[i].text())
		}
		attrs = append(attrs, attr)
	}
	return name, attrs, true, nil
}

func isValue(f *form) bool {
	if f.tok.Type == token.TString {
		return true
	}
	return !strings.HasPrefix(f.text(), ir.MarkerPrefix)
}
