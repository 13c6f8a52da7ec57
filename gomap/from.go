package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/oval"
	"github.com/signadot/oval/ir"
)

// FromIR fills the struct pointed to by v from the element node.  Fields
// whose element or attribute is absent are left untouched.
func FromIR(node *ir.Node, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return &UnmarshalError{Err: fmt.Errorf("%w: cannot fill %T", ErrUnsupportedType, v)}
	}
	if !node.IsElement() {
		return &UnmarshalError{Path: nodePath(node), Err: oval.ErrNotElement}
	}
	return structFromIR(node, val.Elem(), node.Name)
}

func structFromIR(node *ir.Node, val reflect.Value, path string) error {
	fields, err := StructFields(val.Type())
	if err != nil {
		return &UnmarshalError{Field: path, Path: node.Path(), Err: err}
	}
	for i := range fields {
		fi := &fields[i]
		fv := val.Field(fi.Index)
		fPath := path + "." + fi.Name
		if fi.Attr {
			if err := attrFromIR(node, fi, fv); err != nil {
				return &UnmarshalError{Field: fPath, Path: node.Path(), Err: err}
			}
			continue
		}
		elems := oval.Elements(node, fi.Name)
		if len(elems) == 0 {
			continue
		}
		if err := fieldFromIR(elems, fv, fPath); err != nil {
			return err
		}
	}
	return nil
}

func attrFromIR(node *ir.Node, fi *FieldInfo, fv reflect.Value) error {
	if fi.Flag {
		fv.SetBool(oval.HasAttr(node, fi.Name))
		return nil
	}
	a, ok := oval.AttrValue(node, fi.Name)
	if !ok {
		return nil
	}
	if fv.Kind() == reflect.Pointer && !isScalar(fv.Type()) {
		fv.Set(reflect.New(fv.Type().Elem()))
		fv = fv.Elem()
	}
	return setScalar(fv, a.Atom)
}

func fieldFromIR(elems []*ir.Node, fv reflect.Value, path string) error {
	switch {
	case fv.Kind() == reflect.Slice && !isScalar(fv.Type()):
		res := reflect.MakeSlice(fv.Type(), len(elems), len(elems))
		for i, elm := range elems {
			if err := fieldFromIR([]*ir.Node{elm}, res.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		fv.Set(res)
		return nil
	case fv.Kind() == reflect.Pointer && !isScalar(fv.Type()):
		p := reflect.New(fv.Type().Elem())
		if err := fieldFromIR(elems, p.Elem(), path); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	case fv.Kind() == reflect.Struct && !isScalar(fv.Type()):
		return structFromIR(elems[0], fv, path)
	}
	v, ok := oval.ElementValue(elems[0])
	if !ok || !v.IsAtom() {
		return &UnmarshalError{Field: path, Path: elems[0].Path(), Err: fmt.Errorf("%w: element has no scalar value", oval.ErrNotFound)}
	}
	if err := setScalar(fv, v.Atom); err != nil {
		return &UnmarshalError{Field: path, Path: v.Path(), Err: err}
	}
	return nil
}

func nodePath(node *ir.Node) string {
	if node == nil {
		return ""
	}
	return node.Path()
}
