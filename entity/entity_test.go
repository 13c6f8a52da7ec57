package entity

import (
	"encoding/json"
	"testing"

	"github.com/signadot/oval"
	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ent(name string, dt Datatype, value string) Content {
	return Content{Entity: &Entity{Name: name, Datatype: dt, Value: value}}
}

func TestProjectRPMInfo(t *testing.T) {
	obj := &Object{Contents: []Content{ent("name", String, "httpd-2.4.6")}}
	y, err := Project("rpminfo", obj)
	require.NoError(t, err)

	want, err := parse.ParseString(`(rpminfo_object (name "httpd-2.4.6"))`)
	require.NoError(t, err)
	assert.True(t, ir.Equal(want, y), encode.MustString(y))

	text, ok := oval.ElementText(y, "name")
	assert.True(t, ok)
	assert.Equal(t, "httpd-2.4.6", text)
}

func TestProjectSkips(t *testing.T) {
	obj := &Object{Contents: []Content{
		ent("name", String, "kernel"),
		ent("count", Integer, "3"),
		{VarRef: "oval:x:var:1"},
		ent("ratio", Float, "0.5"),
		ent("enabled", Boolean, "true"),
		ent("evr", EVRString, "0:3.10.0-1160.el7"),
		ent("version", Version, "3.10.0"),
		ent("addr", IPv4Address, "10.0.0.1"),
	}}
	y, err := Project("rpminfo", obj)
	require.NoError(t, err)
	assert.Equal(t, `(rpminfo_object (name "kernel") (evr "0:3.10.0-1160.el7") (version "3.10.0"))`,
		encode.MustString(y, encode.EncodeWire(true)))
	_, ok := oval.FindElement(y, "count")
	assert.False(t, ok)
}

func TestProjectStrict(t *testing.T) {
	obj := &Object{Contents: []Content{ent("name", String, "x"), ent("count", "integer", "3")}}
	_, err := Project("rpminfo", obj, Strict(true))
	assert.ErrorIs(t, err, oval.ErrUnsupported)

	y, err := Project("rpminfo", obj, Strict(true), Coerce(true))
	require.NoError(t, err)
	text, ok := oval.ElementText(y, "count")
	assert.True(t, ok)
	assert.Equal(t, "3", text)
}

func TestProjectCoerce(t *testing.T) {
	obj := &Object{Contents: []Content{
		ent("count", Integer, "007"),
		ent("ratio", Float, "0.50"),
		ent("enabled", Boolean, "1"),
	}}
	y, err := Project("t", obj, Coerce(true))
	require.NoError(t, err)
	assert.Equal(t, `(t_object (count "7") (ratio "0.5") (enabled "true"))`,
		encode.MustString(y, encode.EncodeWire(true)))

	bad := &Object{Contents: []Content{ent("count", Integer, "seven")}}
	_, err = Project("t", bad, Coerce(true))
	assert.ErrorIs(t, err, ErrBadValue)
}

func TestProjectEmpty(t *testing.T) {
	y, err := Project("family", nil)
	require.NoError(t, err)
	assert.Equal(t, "(family_object)", encode.MustString(y))

	_, err = Project("", &Object{})
	assert.ErrorIs(t, err, oval.ErrInvalidName)
}

func TestProjectEntity(t *testing.T) {
	y, err := ProjectEntity(&Entity{Name: "arch", Datatype: String, Value: "i386"})
	require.NoError(t, err)
	assert.Equal(t, `(arch "i386")`, encode.MustString(y))

	_, err = ProjectEntity(&Entity{Name: "n", Datatype: Integer, Value: "1"})
	assert.ErrorIs(t, err, oval.ErrUnsupported)

	_, err = ProjectEntity(nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestFromNode(t *testing.T) {
	y, err := parse.ParseString(`((rpminfo_object :id "1") (name "httpd") (filter (x "y")) "stray" (arch "i386"))`)
	require.NoError(t, err)
	typeName, obj, err := FromNode(y)
	require.NoError(t, err)
	assert.Equal(t, "rpminfo", typeName)
	require.Len(t, obj.Contents, 2)
	assert.Equal(t, Entity{Name: "name", Datatype: String, Value: "httpd"}, *obj.Contents[0].Entity)
	assert.Equal(t, "arch", obj.Contents[1].Entity.Name)

	back, err := Project(typeName, obj)
	require.NoError(t, err)
	assert.Equal(t, `(rpminfo_object (name "httpd") (arch "i386"))`, encode.MustString(back, encode.EncodeWire(true)))

	for _, bad := range []*ir.Node{ir.FromAtom("x"), ir.NewElement("rpminfo_item", nil), ir.NewElement("_object", nil)} {
		_, _, err := FromNode(bad)
		assert.ErrorIs(t, err, ErrNotObject)
	}
}

func TestValidate(t *testing.T) {
	ok := &Object{Contents: []Content{ent("name", String, "x"), {VarRef: "oval:x:var:1"}}}
	assert.NoError(t, Validate(ok))

	for _, bad := range []*Object{
		nil,
		{Contents: []Content{{}}},
		{Contents: []Content{{Entity: &Entity{Name: "n", Datatype: String}, VarRef: "v"}}},
		{Contents: []Content{ent("", String, "x")}},
		{Contents: []Content{ent("n", "bogus", "x")}},
	} {
		assert.ErrorIs(t, Validate(bad), ErrInvalid)
	}
}

func TestParseDatatype(t *testing.T) {
	for _, d := range Datatypes() {
		got, err := ParseDatatype(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDatatype("integer")
	require.NoError(t, err)
	assert.Equal(t, Integer, got)
	_, err = ParseDatatype("decimal")
	assert.ErrorIs(t, err, ErrUnknownDatatype)
}

func TestLoadYAML(t *testing.T) {
	doc, err := LoadYAML([]byte(`
type: rpminfo
contents:
- entity: {name: name, datatype: string, value: httpd}
- var_ref: oval:org.example:var:1
- entity:
    name: epoch
    datatype: int
    value: "0"
`))
	require.NoError(t, err)
	assert.Equal(t, "rpminfo", doc.Type)
	require.Len(t, doc.Contents, 3)
	assert.Equal(t, "oval:org.example:var:1", doc.Contents[1].VarRef)

	y, err := Project(doc.Type, doc.Object())
	require.NoError(t, err)
	assert.Equal(t, `(rpminfo_object (name "httpd"))`, encode.MustString(y, encode.EncodeWire(true)))

	_, err = LoadYAML([]byte("type: rpminfo\ncontents:\n- entity: {name: n, datatype: decimal}\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = LoadYAML([]byte("contents: []\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = LoadYAML([]byte("type: [\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestJSONSchema(t *testing.T) {
	d, err := JSONSchema()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(d, &m))
	props, ok := m["properties"].(map[string]any)
	require.True(t, ok, string(d))
	assert.Contains(t, props, "type")
	assert.Contains(t, props, "contents")
}
