package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Index is the field index within its struct
	Index int

	// Name is the element or attribute name
	Name string

	// Attr places the field in the element header
	Attr bool

	// Flag writes a bool attribute as a flag, present when true
	Flag bool

	OmitEmpty bool
}

var fieldCache sync.Map

// StructFields returns the mapped fields of struct type typ, in
// declaration order.
func StructFields(typ reflect.Type) ([]FieldInfo, error) {
	if v, ok := fieldCache.Load(typ); ok {
		return v.([]FieldInfo), nil
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, typ)
	}
	var res []FieldInfo
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		info, skip, err := parseTag(f)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		info.Index = i
		res = append(res, info)
	}
	fieldCache.Store(typ, res)
	return res, nil
}

func parseTag(f reflect.StructField) (FieldInfo, bool, error) {
	info := FieldInfo{Name: strings.ToLower(f.Name)}
	tag, ok := f.Tag.Lookup("ox")
	if !ok {
		return info, false, nil
	}
	if tag == "-" {
		return info, true, nil
	}
	parts := strings.Split(tag, ",")
	if name := strings.TrimSpace(parts[0]); name != "" {
		info.Name = name
	}
	for _, p := range parts[1:] {
		switch strings.TrimSpace(p) {
		case "attr":
			info.Attr = true
		case "flag":
			info.Flag = true
		case "omitempty":
			info.OmitEmpty = true
		case "":
		default:
			return info, false, fmt.Errorf("invalid tag option %q on field %s", p, f.Name)
		}
	}
	if info.Flag && (!info.Attr || f.Type.Kind() != reflect.Bool) {
		return info, false, fmt.Errorf("flag option on field %s needs a bool attribute", f.Name)
	}
	return info, false, nil
}
