package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/oval"
	"github.com/signadot/oval/ir"
)

// ToIR builds an element named name from the struct, or pointer to
// struct, v.
func ToIR(name string, v any) (*ir.Node, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, &MarshalError{Err: fmt.Errorf("%w: nil pointer", ErrUnsupportedType)}
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, &MarshalError{Err: fmt.Errorf("%w: cannot map %T", ErrUnsupportedType, v)}
	}
	return structToIR(name, val, name)
}

func structToIR(name string, val reflect.Value, path string) (*ir.Node, error) {
	fields, err := StructFields(val.Type())
	if err != nil {
		return nil, &MarshalError{Field: path, Err: err}
	}
	res, err := oval.CreateElement(oval.ElementSpec{Name: name})
	if err != nil {
		return nil, &MarshalError{Field: path, Err: err}
	}
	for i := range fields {
		fi := &fields[i]
		fv := val.Field(fi.Index)
		fPath := path + "." + fi.Name
		if fi.OmitEmpty && fv.IsZero() {
			continue
		}
		if fi.Attr {
			if err := attrToIR(res, fi, fv); err != nil {
				return nil, &MarshalError{Field: fPath, Err: err}
			}
			continue
		}
		children, err := fieldToIR(fi.Name, fv, fPath)
		if err != nil {
			return nil, err
		}
		res.Append(children...)
	}
	return res, nil
}

func attrToIR(res *ir.Node, fi *FieldInfo, fv reflect.Value) error {
	if fi.Flag {
		if !fv.Bool() {
			return nil
		}
		_, err := oval.AddAttr(res, fi.Name, nil)
		return err
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}
	if !isScalar(fv.Type()) {
		return fmt.Errorf("%w: attribute of type %s", ErrUnsupportedType, fv.Type())
	}
	s, err := formatScalar(fv)
	if err != nil {
		return err
	}
	_, err = oval.AddAttr(res, fi.Name, ir.FromAtom(s))
	return err
}

// fieldToIR returns the elements for one field; slices yield one per item.
func fieldToIR(name string, fv reflect.Value, path string) ([]*ir.Node, error) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil, nil
		}
		if !isScalar(fv.Type()) {
			fv = fv.Elem()
		}
	}
	switch {
	case isScalar(fv.Type()):
		s, err := formatScalar(fv)
		if err != nil {
			return nil, &MarshalError{Field: path, Err: err}
		}
		y, err := oval.CreateElement(oval.Elem(name, s))
		if err != nil {
			return nil, &MarshalError{Field: path, Err: err}
		}
		return []*ir.Node{y}, nil
	case fv.Kind() == reflect.Struct:
		y, err := structToIR(name, fv, path)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{y}, nil
	case fv.Kind() == reflect.Slice || fv.Kind() == reflect.Array:
		var res []*ir.Node
		for i := range fv.Len() {
			ys, err := fieldToIR(name, fv.Index(i), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			res = append(res, ys...)
		}
		return res, nil
	}
	return nil, &MarshalError{Field: path, Err: fmt.Errorf("%w: cannot map %s", ErrUnsupportedType, fv.Type())}
}
