package oval

import (
	"errors"
	"testing"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
)

func TestAddAttrRoundTrip(t *testing.T) {
	for _, tc := range []struct{ name, value string }{
		{"a", "x"},
		{"operator", "AND"},
		{"empty", ""},
		{"colon", ":looks-like-a-marker"},
		{"spaced", "a b ( ) \" ;"},
	} {
		e := ir.NewElement("e", nil)
		got, err := AddAttr(e, tc.name, ir.FromAtom(tc.value))
		if err != nil {
			t.Fatal(err)
		}
		v, ok := AttrValue(got, tc.name)
		if !ok || v.Atom != tc.value {
			t.Errorf("%s: got %v, %t", tc.name, v, ok)
		}
	}
}

func TestAddAttrRejectsList(t *testing.T) {
	e := ir.NewElement("e", []*ir.Attr{{Name: "k", Value: ir.FromAtom("1")}}, ir.FromAtom("v"))
	before := e.Clone()
	for _, v := range []*ir.Node{ir.FromList(nil), ir.FromList([]*ir.Node{ir.FromList(nil)}), ir.NewElement("x", nil)} {
		got, err := AddAttr(e, "a", v)
		if !errors.Is(err, ErrInvalidAttributeValue) {
			t.Errorf("expected ErrInvalidAttributeValue, got %v", err)
		}
		if got != nil {
			t.Error("mutated node returned on error")
		}
	}
	if !ir.Equal(before, e) {
		t.Errorf("node changed on error: %s", encode.MustString(e))
	}
}

func TestAddAttrPreservesChildren(t *testing.T) {
	e, err := CreateElement(ElementSpec{Name: "e"})
	if err != nil {
		t.Fatal(err)
	}
	c1, c2 := ir.NewElement("c1", nil, ir.FromAtom("1")), ir.NewElement("c2", nil, ir.FromAtom("2"))
	e.Append(c1, c2)
	e, err = AddAttr(e, "a", ir.FromAtom("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !HasAttr(e, "a") {
		t.Error("attribute missing after promotion")
	}
	if v, ok := ElementValue(e); !ok || v != c1 {
		t.Errorf("first child changed: %v", v)
	}
	for _, name := range []string{"c1", "c2"} {
		if _, ok := FindElement(e, name); !ok {
			t.Errorf("%s lost", name)
		}
	}
	if text, _ := ElementText(e, "c2"); text != "2" {
		t.Errorf("c2 text %q", text)
	}
}

func TestAddAttrOrder(t *testing.T) {
	e := ir.NewElement("e", nil)
	for _, n := range []string{"z", "a", "m"} {
		var err error
		if e, err = AddAttr(e, n, nil); err != nil {
			t.Fatal(err)
		}
	}
	if got := encode.MustString(e, encode.EncodeWire(true)); got != "((e :z :a :m))" {
		t.Errorf("got %s", got)
	}
}

func TestFlagAttr(t *testing.T) {
	e, err := AddAttr(ir.NewElement("e", nil), "a", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !HasAttr(e, "a") {
		t.Error("flag not present")
	}
	v, ok := AttrValue(e, "a")
	if !ok || !v.IsAtom() || v.Atom != ":a" {
		t.Errorf("flag value %v, %t", v, ok)
	}
}

func TestAddAttrNotElement(t *testing.T) {
	for _, y := range []*ir.Node{nil, ir.FromAtom("a"), ir.FromList(nil)} {
		if _, err := AddAttr(y, "a", nil); !errors.Is(err, ErrNotElement) {
			t.Errorf("expected ErrNotElement, got %v", err)
		}
	}
}

func TestAddElement(t *testing.T) {
	obj, err := CreateObject("rpminfo_object", nil, Elem("name", "httpd"))
	if err != nil {
		t.Fatal(err)
	}
	obj, err = AddElement(obj, "arch", []AttrSpec{Attr("operation", "equals")}, ir.FromAtom("x86_64"))
	if err != nil {
		t.Fatal(err)
	}
	obj, err = AddElement(obj, "behaviors", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `(rpminfo_object (name "httpd") ((arch :operation "equals") "x86_64") (behaviors))`)
	if !ir.Equal(want, obj) {
		t.Errorf("got %s", encode.MustString(obj))
	}
	if obj.Values[1].Parent != obj || obj.Values[1].ParentIndex != 1 {
		t.Error("child links not set")
	}
	if _, err := AddElement(obj, "bad", []AttrSpec{{Name: "x", Value: ir.FromList(nil)}}, nil); !errors.Is(err, ErrInvalidAttributeValue) {
		t.Errorf("expected ErrInvalidAttributeValue, got %v", err)
	}
	if len(obj.Values) != 3 {
		t.Errorf("failed add changed children: %d", len(obj.Values))
	}
}

func TestAddElementAttr(t *testing.T) {
	obj := mustParse(t, `(o (name "httpd") (arch "i386"))`)
	obj, err := AddElementAttr(obj, "arch", "operation", ir.FromAtom("equals"))
	if err != nil {
		t.Fatal(err)
	}
	arch, _ := FindElement(obj, "arch")
	if v, ok := AttrValue(arch, "operation"); !ok || v.Atom != "equals" {
		t.Errorf("got %v, %t", v, ok)
	}
	if _, err := AddElementAttr(obj, "missing", "a", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	obj := mustParse(t, `((o :a "1" :b :a "2" legacy) (x "1") ((y :k "v" :j) "2") (x "3"))`)

	obj, err := RemoveAttr(obj, "a")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := AttrValue(obj, "a"); v == nil || v.Atom != "2" {
		t.Errorf("expected second a to remain, got %v", v)
	}
	if obj, err = RemoveAttr(obj, ":legacy"); err != nil || HasAttr(obj, "legacy") {
		t.Errorf("bare marker not removed: %v", err)
	}
	if obj, err = RemoveAttr(obj, "missing"); err != nil {
		t.Fatal(err)
	}

	obj, err = RemoveElement(obj, "x")
	if err != nil {
		t.Fatal(err)
	}
	if text, _ := ElementText(obj, "x"); text != "3" {
		t.Errorf("expected second x to remain, got %q", text)
	}
	obj, err = RemoveElementAttr(obj, "y", "k")
	if err != nil {
		t.Fatal(err)
	}
	obj, err = RemoveElementAttr(obj, "nope", "k")
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `((o :b :a "2") ((y :j) "2") (x "3"))`)
	if !ir.Equal(want, obj) {
		t.Errorf("got %s", encode.MustString(obj))
	}
	for i, v := range obj.Values {
		if v.ParentIndex != i {
			t.Errorf("child %d has index %d", i, v.ParentIndex)
		}
	}
	if _, err := RemoveElement(ir.FromAtom("x"), "x"); !errors.Is(err, ErrNotElement) {
		t.Errorf("expected ErrNotElement, got %v", err)
	}
}
