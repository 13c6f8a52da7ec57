package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/token"
)

var ignoreLinks = cmpopts.IgnoreFields(ir.Node{}, "Parent", "ParentIndex")

type parseTest struct {
	in  string
	out *ir.Node
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:  `hello`,
			out: ir.FromAtom("hello"),
		},
		{
			in:  `"hello world"`,
			out: ir.FromAtom("hello world"),
		},
		{
			in:  `()`,
			out: ir.FromList(nil),
		},
		{
			in:  `(a)`,
			out: ir.NewElement("a", nil),
		},
		{
			in: `(rpminfo_object (name "httpd-2.4.6"))`,
			out: ir.NewElement("rpminfo_object", nil,
				ir.NewElement("name", nil, ir.FromAtom("httpd-2.4.6"))),
		},
		{
			in: `((state :operator "AND") (arch "i386"))`,
			out: ir.NewElement("state", []*ir.Attr{{Name: "operator", Value: ir.FromAtom("AND")}},
				ir.NewElement("arch", nil, ir.FromAtom("i386"))),
		},
		{
			in: `((e :a v :flag :b ":c" old))`,
			out: ir.NewElement("e", []*ir.Attr{
				{Name: "a", Value: ir.FromAtom("v")},
				{Name: "flag"},
				{Name: "b", Value: ir.FromAtom(":c")},
				{Name: "old", Bare: true},
			}),
		},
		{
			in:  `((e :x :y))`,
			out: ir.NewElement("e", []*ir.Attr{{Name: "x"}, {Name: "y"}}),
		},
		{
			in: "; leading\n(a ; inline\n  (b \"1\")\n  (c \"2\"))",
			out: ir.NewElement("a", nil,
				ir.NewElement("b", nil, ir.FromAtom("1")),
				ir.NewElement("c", nil, ir.FromAtom("2"))),
		},
		{
			in:  `((a) "x")`,
			out: ir.FromList([]*ir.Node{ir.NewElement("a", nil), ir.FromAtom("x")}),
		},
		{
			in: `(((a :k "1") "v"))`,
			out: ir.FromList([]*ir.Node{
				ir.NewElement("a", []*ir.Attr{{Name: "k", Value: ir.FromAtom("1")}}, ir.FromAtom("v")),
			}),
		},
		{
			in:  `((a "v"))`,
			out: ir.FromList([]*ir.Node{ir.NewElement("a", nil, ir.FromAtom("v"))}),
		},
		{
			in:  `(("a b" :k "v"))`,
			out: ir.NewElement("a b", []*ir.Attr{{Name: "k", Value: ir.FromAtom("v")}}),
		},
		{
			in:  `(a b c)`,
			out: ir.NewElement("a", nil, ir.FromAtom("b"), ir.FromAtom("c")),
		},
	}
	for i := range pts {
		pt := &pts[i]
		node, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.out, node, ignoreLinks); diff != "" {
			t.Errorf("# doc\n%s\n(-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestBadParse(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{"", token.ErrEmptyDoc},
		{"; only a comment", token.ErrEmptyDoc},
		{"(a", token.ErrDocBalance},
		{"a)", token.ErrDocBalance},
		{"(a) (b)", ErrMultiple},
		{`("" "x")`, ErrEmptyName},
		{`((a : "x"))`, ErrEmptyAttr},
		{`(a "x`, token.ErrUnterminated},
	} {
		_, err := ParseString(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v want %v", tc.in, err, tc.err)
		}
	}
}

func TestBadParsePosition(t *testing.T) {
	_, err := ParseString(`(a ("" "x"))`)
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want a positioned error", err)
	}
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("got %v want %v", err, ErrEmptyName)
	}
	if te.Pos.I != 4 {
		t.Errorf("got offset %d want 4", te.Pos.I)
	}
}

func TestParseAll(t *testing.T) {
	ys, err := ParseAll([]byte("(a \"1\")\n(b \"2\")\n\"c\""))
	if err != nil {
		t.Fatal(err)
	}
	if len(ys) != 3 {
		t.Fatalf("got %d forms", len(ys))
	}
	if ys[1].Name != "b" || ys[2].Atom != "c" {
		t.Errorf("unexpected forms %v", ys)
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	y, err := ParseString("(a\n  (b \"1\"))", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	p := pos[y.Values[0]]
	if p == nil {
		t.Fatal("no position for child")
	}
	if p.Line() != 1 || p.Col() != 2 {
		t.Errorf("got line %d col %d", p.Line(), p.Col())
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []*ir.Node{
		ir.FromAtom(""),
		ir.FromAtom("tab\there \"quoted\" (paren) ;semi"),
		ir.FromList(nil),
		ir.FromList([]*ir.Node{ir.FromList(nil), ir.FromAtom("x")}),
		ir.FromList([]*ir.Node{ir.NewElement("a", nil), ir.FromAtom("x")}),
		ir.NewElement("object", []*ir.Attr{
			{Name: "id", Value: ir.FromAtom("oval:org.example:obj:1")},
			{Name: "flag"},
			{Name: "v", Value: ir.FromAtom(":looks-like-marker")},
			{Name: "legacy", Bare: true},
			{Name: "last"},
		},
			ir.NewElement("name", nil, ir.FromAtom("httpd")),
			ir.NewElement("evr", []*ir.Attr{{Name: "datatype", Value: ir.FromAtom("evr_string")}},
				ir.FromAtom("0:2.4.6-97.el7")),
			ir.NewElement("empty", []*ir.Attr{{Name: "x"}}),
			ir.NewElement("odd name", nil, ir.FromAtom("")),
			ir.NewElement("nested", nil, ir.NewElement("deeper", nil, ir.NewElement("deepest", nil))),
		),
	}
	for _, y := range trees {
		for _, opts := range [][]encode.EncodeOption{nil, {encode.EncodeWire(true)}} {
			txt := encode.MustString(y, opts...)
			back, err := ParseString(txt)
			if err != nil {
				t.Errorf("parse %s: %v", txt, err)
				continue
			}
			if !ir.Equal(y, back) {
				t.Errorf("round trip changed tree:\n%s\n%s", txt, encode.MustString(back))
			}
		}
	}
}
