package entity

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Entity is one named, typed value of an object.
type Entity struct {
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Datatype Datatype `json:"datatype" yaml:"datatype" validate:"required,oval_datatype" jsonschema:"enum=string,enum=version,enum=evr_string,enum=float,enum=int,enum=boolean,enum=binary,enum=ipv4_address,enum=ipv6_address,enum=fileset_revision,enum=ios_version,enum=record"`
	Value    string   `json:"value" yaml:"value"`
}

// Content is one item of an object: an entity or a reference to a
// variable.  Exactly one of the two is set.
type Content struct {
	Entity *Entity `json:"entity,omitempty" yaml:"entity,omitempty"`
	VarRef string  `json:"var_ref,omitempty" yaml:"var_ref,omitempty"`
}

type Object struct {
	Contents []Content `json:"contents" yaml:"contents" validate:"dive"`
}

// Document is an object together with its kind, the form read from
// fixture files.
type Document struct {
	Type     string    `json:"type" yaml:"type" validate:"required"`
	Contents []Content `json:"contents" yaml:"contents" validate:"dive"`
}

func (d *Document) Object() *Object {
	return &Object{Contents: d.Contents}
}

// validate is shared, validator.Validate caches struct metadata.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("oval_datatype", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := ParseDatatype(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Content)
		if (c.Entity == nil) == (c.VarRef == "") {
			sl.ReportError(c.VarRef, "VarRef", "var_ref", "entity_xor_var_ref", "")
		}
	}, Content{})
	return v
}

// Validate checks the structure of obj.
func Validate(obj *Object) error {
	if obj == nil {
		return fmt.Errorf("%w: nil object", ErrInvalid)
	}
	if err := validate.Struct(obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalid)
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
