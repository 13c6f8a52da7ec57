package entity

import (
	"fmt"
	"strings"

	"github.com/signadot/oval"
	"github.com/signadot/oval/debug"
	"github.com/signadot/oval/ir"
)

const ObjectSuffix = "_object"

type projectOpts struct {
	strict bool
	coerce bool
}

type ProjectOpt func(*projectOpts)

// Strict makes datatypes which would be skipped an error wrapping
// oval.ErrUnsupported.
func Strict(v bool) ProjectOpt {
	return func(o *projectOpts) { o.strict = v }
}

// Coerce projects float, int and boolean entities as their canonical
// text.  Values which do not parse are an error wrapping ErrBadValue.
func Coerce(v bool) ProjectOpt {
	return func(o *projectOpts) { o.coerce = v }
}

// Project builds the object tree for obj, an object of kind typeName.
// Children appear in the order of the contents of obj.
func Project(typeName string, obj *Object, opts ...ProjectOpt) (*ir.Node, error) {
	pOpts := &projectOpts{}
	for _, o := range opts {
		o(pOpts)
	}
	if typeName == "" {
		return nil, fmt.Errorf("%w: empty type name", oval.ErrInvalidName)
	}
	res, err := oval.CreateObject(typeName+ObjectSuffix, nil)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return res, nil
	}
	for i := range obj.Contents {
		e := obj.Contents[i].Entity
		if e == nil {
			if debug.Project() {
				debug.Logf("project %s: skip reference %q\n", typeName, obj.Contents[i].VarRef)
			}
			continue
		}
		v, ok, err := value(e, pOpts)
		if err != nil {
			return nil, err
		}
		if !ok {
			if debug.Project() {
				debug.Logf("project %s: skip %s entity %q\n", typeName, e.Datatype, e.Name)
			}
			continue
		}
		if _, err := oval.AddElement(res, e.Name, nil, v); err != nil {
			return nil, err
		}
	}
	if debug.Project() {
		debug.Logf("project %s: %s\n", typeName, debug.Tree{Node: res})
	}
	return res, nil
}

// ProjectEntity builds the element for a single entity.
func ProjectEntity(e *Entity, opts ...ProjectOpt) (*ir.Node, error) {
	pOpts := &projectOpts{strict: true}
	for _, o := range opts {
		o(pOpts)
	}
	pOpts.strict = true
	if e == nil {
		return nil, fmt.Errorf("%w: nil entity", ErrInvalid)
	}
	v, _, err := value(e, pOpts)
	if err != nil {
		return nil, err
	}
	return oval.CreateElement(oval.ElementSpec{Name: e.Name, Value: v})
}

func value(e *Entity, opts *projectOpts) (*ir.Node, bool, error) {
	dt := e.Datatype
	if dt == "" {
		dt = String
	}
	if parsed, err := ParseDatatype(string(dt)); err == nil {
		dt = parsed
	}
	switch {
	case dt.StringLike():
		return ir.FromAtom(e.Value), true, nil
	case dt.Numeric() && opts.coerce:
		v, err := dt.canonical(e.Value)
		if err != nil {
			return nil, false, fmt.Errorf("entity %q: %w", e.Name, err)
		}
		return ir.FromAtom(v), true, nil
	case opts.strict:
		return nil, false, fmt.Errorf("%w: %s entity %q", oval.ErrUnsupported, dt, e.Name)
	}
	return nil, false, nil
}

// FromNode reads an object tree back into its kind and string entities.
// Children without scalar text are skipped.
func FromNode(node *ir.Node) (string, *Object, error) {
	name, ok := oval.ElementName(node)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrNotObject, node.Type)
	}
	typeName, ok := strings.CutSuffix(name, ObjectSuffix)
	if !ok || typeName == "" {
		return "", nil, fmt.Errorf("%w: name %q", ErrNotObject, name)
	}
	res := &Object{}
	for _, v := range node.Values {
		elmName, ok := oval.ElementName(v)
		if !ok {
			continue
		}
		text, ok := scalar(v)
		if !ok {
			continue
		}
		res.Contents = append(res.Contents, Content{Entity: &Entity{Name: elmName, Datatype: String, Value: text}})
	}
	return typeName, res, nil
}

func scalar(elm *ir.Node) (string, bool) {
	v, ok := oval.ElementValue(elm)
	if !ok || !v.IsAtom() {
		return "", false
	}
	return v.Atom, true
}
