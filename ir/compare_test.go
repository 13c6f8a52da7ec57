package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	elt := func(name string, attrs []*Attr, vs ...*Node) *Node {
		return NewElement(name, attrs, vs...)
	}
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Atom < List < Element
		{"Atom < List", FromAtom("a"), FromList(nil), -1},
		{"List < Element", FromList(nil), elt("a", nil), -1},

		{"Atom < Atom", FromAtom("a"), FromAtom("b"), -1},
		{"Atom == Atom", FromAtom("a"), FromAtom("a"), 0},

		{"Empty List == Empty List", FromList(nil), FromList(nil), 0},
		{"Short List < Long List", FromList([]*Node{FromAtom("a")}), FromList([]*Node{FromAtom("a"), FromAtom("b")}), -1},

		{"Element Name", elt("a", nil), elt("b", nil), -1},
		{"Element Value", elt("a", nil, FromAtom("1")), elt("a", nil, FromAtom("2")), -1},
		{"No Attrs < Attrs", elt("a", nil), elt("a", []*Attr{{Name: "x"}}), -1},
		{"Flag < Valued", elt("a", []*Attr{{Name: "x"}}), elt("a", []*Attr{{Name: "x", Value: FromAtom("v")}}), -1},
		{"Prefixed < Bare", elt("a", []*Attr{{Name: "x"}}), elt("a", []*Attr{{Name: "x", Bare: true}}), -1},
		{"Attr Value", elt("a", []*Attr{{Name: "x", Value: FromAtom("1")}}), elt("a", []*Attr{{Name: "x", Value: FromAtom("2")}}), -1},
		{"Same Element",
			elt("o", []*Attr{{Name: "x", Value: FromAtom("1")}}, elt("c", nil, FromAtom("v"))),
			elt("o", []*Attr{{Name: "x", Value: FromAtom("1")}}, elt("c", nil, FromAtom("v"))),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("nil should equal nil")
	}
	if Equal(nil, FromAtom("")) {
		t.Error("nil should not equal an empty atom")
	}
}
