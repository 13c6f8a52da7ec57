package oval

import (
	"testing"

	"github.com/signadot/oval/ir"
)

func TestFindElement(t *testing.T) {
	obj := mustParse(t, `(o "stray" () (name "first") ((name :x) "second") (other (name "nested")))`)
	elm, ok := FindElement(obj, "name")
	if !ok {
		t.Fatal("not found")
	}
	if v, _ := ElementValue(elm); v.Atom != "first" {
		t.Errorf("got %q", v.Atom)
	}
	if got := len(Elements(obj, "name")); got != 2 {
		t.Errorf("Elements returned %d", got)
	}
	if _, ok := FindElement(obj, "missing"); ok {
		t.Error("found a missing element")
	}
	if _, ok := FindElement(ir.FromAtom("name"), "name"); ok {
		t.Error("found a child of an atom")
	}
	if _, ok := FindElement(nil, "name"); ok {
		t.Error("found a child of nil")
	}
}

func TestElementValue(t *testing.T) {
	if _, ok := ElementValue(ir.NewElement("e", nil)); ok {
		t.Error("value of empty element")
	}
	if _, ok := ElementValue(ir.FromAtom("e")); ok {
		t.Error("value of atom")
	}
}

func TestAttrValue(t *testing.T) {
	elm := mustParse(t, `((e :a "1" legacy :f) "v")`)
	if v, ok := AttrValue(elm, "a"); !ok || v.Atom != "1" {
		t.Errorf("a = %v, %t", v, ok)
	}
	if _, ok := AttrValue(elm, "legacy"); ok {
		t.Error("AttrValue matched a bare marker")
	}
	if _, ok := AttrValue(elm, ":a"); ok {
		t.Error("AttrValue matched a prefixed query")
	}
	if _, ok := AttrValue(mustParse(t, `(e "v")`), "a"); ok {
		t.Error("attribute found on element without attributes")
	}
	for _, name := range []string{"a", "legacy", ":legacy", "f"} {
		if !HasAttr(elm, name) {
			t.Errorf("HasAttr(%q) false", name)
		}
	}
	if HasAttr(elm, "missing") || HasAttr(nil, "a") {
		t.Error("HasAttr true for missing attribute")
	}
}

func TestElementText(t *testing.T) {
	obj := mustParse(t, `(o (s "text") (l (sub "x")) (e) (li ()))`)
	if text, ok := ElementText(obj, "s"); !ok || text != "text" {
		t.Errorf("got %q, %t", text, ok)
	}
	for _, name := range []string{"l", "e", "li", "missing"} {
		if _, ok := ElementText(obj, name); ok {
			t.Errorf("%s: found scalar text", name)
		}
	}
}

func TestQueryIdempotent(t *testing.T) {
	obj := mustParse(t, `((o :id "1") ((n :k "v") "x"))`)
	e1, _ := FindElement(obj, "n")
	e2, _ := FindElement(obj, "n")
	if e1 != e2 {
		t.Error("FindElement not stable")
	}
	v1, _ := AttrValue(e1, "k")
	v2, _ := AttrValue(e1, "k")
	if v1 != v2 {
		t.Error("AttrValue not stable")
	}
}

func TestElementName(t *testing.T) {
	if n, ok := ElementName(mustParse(t, `((n :k "v"))`)); !ok || n != "n" {
		t.Errorf("got %q, %t", n, ok)
	}
	if _, ok := ElementName(ir.FromList(nil)); ok {
		t.Error("list has a name")
	}
}
