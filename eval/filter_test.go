package eval

import (
	"errors"
	"testing"

	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestFilter(t *testing.T) {
	obj := mustParse(t, `((rpminfo_item :id "oval:x:item:1" :signed) (name "httpd") ((arch :operation "equals") "i386") (file "a") (file "b") (sig (key "k")))`)
	tests := []struct {
		src  string
		want bool
	}{
		{`name == "rpminfo_item"`, true},
		{`name endsWith "_object"`, false},
		{`text("name") == "httpd"`, true},
		{`elements.arch in ["i386", "i686"]`, true},
		{`elements.file == "a"`, true},
		{`"sig" in elements`, false},
		{`has("sig") && !has("epoch")`, true},
		{`count("file") == 2`, true},
		{`attr("arch", "operation") == "equals"`, true},
		{`attr("", "id") == "oval:x:item:1"`, true},
		{`attrs.id startsWith "oval:"`, true},
		{`hasattr("", "signed") && attr("", "signed") == ""`, true},
		{`hasattr("arch", "datatype")`, false},
		{`attr("missing", "x") == ""`, true},
		{`text("missing") == ""`, true},
		{`getenv("OVAL_FILTER_TEST") == "on"`, true},
		{`compare("name", "pattern match", "^ht")`, true},
		{`compare("arch", "case insensitive equals", "I386")`, true},
		{`compare("missing", "equals", "")`, false},
	}
	t.Setenv("OVAL_FILTER_TEST", "on")
	for _, tt := range tests {
		f, err := Compile(tt.src)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		got, err := f.Match(obj)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %t", tt.src, got)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`name +`, `text(1)`, `"not a bool"`, `nosuch == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrCompile) {
			t.Errorf("%s: expected ErrCompile, got %v", src, err)
		}
	}
}

func TestSelect(t *testing.T) {
	objs := []*ir.Node{
		mustParse(t, `(item (arch "i386"))`),
		mustParse(t, `(item (arch "x86_64"))`),
		mustParse(t, `(item (arch "i686"))`),
	}
	f, err := Compile(`text("arch") matches "^i[36]86$"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.Select(objs)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != objs[0] || got[1] != objs[2] {
		t.Errorf("got %v", got)
	}
	if _, err := f.Match(ir.FromAtom("x")); !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
}
