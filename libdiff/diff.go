package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
)

// Diff returns the changes turning from into to.  A nil result means the
// trees are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, &res)
	return res
}

func diffNode(from, to *ir.Node, res *[]Change) {
	if summary(from) != summary(to) {
		*res = append(*res, Change{Kind: Replace, Path: from.Path(), From: from, To: to})
		return
	}
	switch from.Type {
	case ir.AtomType:
		return
	case ir.ElementType:
		diffAttrs(from, to, res)
	}
	diffValues(from, to, res)
}

func diffAttrs(from, to *ir.Node, res *[]Change) {
	path := from.Path()
	seen := map[string]bool{}
	for _, fa := range from.Attrs {
		if seen[fa.Name] {
			continue
		}
		seen[fa.Name] = true
		ta := findAttr(to, fa.Name)
		switch {
		case ta == nil:
			*res = append(*res, Change{Kind: AttrDelete, Path: path, Attr: fa.Name, From: attrValue(fa)})
		case fa.Bare != ta.Bare || !ir.Equal(fa.Value, ta.Value):
			*res = append(*res, Change{Kind: AttrReplace, Path: path, Attr: fa.Name, From: attrValue(fa), To: attrValue(ta)})
		}
	}
	for _, ta := range to.Attrs {
		if seen[ta.Name] {
			continue
		}
		seen[ta.Name] = true
		*res = append(*res, Change{Kind: AttrInsert, Path: path, Attr: ta.Name, To: attrValue(ta)})
	}
}

func findAttr(y *ir.Node, name string) *ir.Attr {
	for _, a := range y.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func attrValue(a *ir.Attr) *ir.Node {
	if a.Value == nil {
		return ir.FromAtom(a.Marker())
	}
	return a.Value
}

// diffValues aligns the children of from and to by diffing their
// summaries, one rune per child.  A deletion directly followed by an
// insertion is reported as replacements.
func diffValues(from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	var deleted []*ir.Node
	flush := func() {
		for _, fv := range deleted {
			*res = append(*res, Change{Kind: Delete, Path: fv.Path(), From: fv})
		}
		deleted = nil
	}
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				deleted = append(deleted, from.Values[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				tv := to.Values[ti]
				ti++
				if len(deleted) != 0 {
					fv := deleted[0]
					deleted = deleted[1:]
					*res = append(*res, Change{Kind: Replace, Path: fv.Path(), From: fv, To: tv})
					continue
				}
				*res = append(*res, Change{Kind: Insert, Path: tv.Path(), To: tv})
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				diffNode(from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, y *ir.Node) []rune {
	res := make([]rune, len(y.Values))
	for i, v := range y.Values {
		s := summary(v)
		r, ok := m[s]
		if !ok {
			r = rune(0xE000 + len(m))
			m[s] = r
		}
		res[i] = r
	}
	return res
}

func summary(y *ir.Node) string {
	switch y.Type {
	case ir.AtomType:
		return "a:" + y.Atom
	case ir.ElementType:
		return "e:" + y.Name
	default:
		return "l"
	}
}

// TextDiff compares the indented encodings of from and to line by line.
// Lines are prefixed with "-", "+" or " ".
func TextDiff(from, to *ir.Node) (string, error) {
	fromText, err := encodeString(from)
	if err != nil {
		return "", err
	}
	toText, err := encodeString(to)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String(), nil
}

func encodeString(y *ir.Node) (string, error) {
	buf := &strings.Builder{}
	if err := encode.Encode(y, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
