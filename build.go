package oval

import (
	"fmt"
	"strings"

	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/token"
)

// AttrSpec describes one attribute.  Name is given without the ':'
// marker prefix.  A nil Value makes a flag.
type AttrSpec struct {
	Name  string
	Value *ir.Node
}

func Attr(name, value string) AttrSpec {
	return AttrSpec{Name: name, Value: ir.FromAtom(value)}
}

func Flag(name string) AttrSpec {
	return AttrSpec{Name: name}
}

// ElementSpec describes one element.  A nil Value leaves the element
// without children.
type ElementSpec struct {
	Name  string
	Attrs []AttrSpec
	Value *ir.Node
}

func Elem(name, value string) ElementSpec {
	return ElementSpec{Name: name, Value: ir.FromAtom(value)}
}

// Child returns a spec whose value is the element built from sub.
func Child(name string, sub ElementSpec) (ElementSpec, error) {
	y, err := CreateElement(sub)
	if err != nil {
		return ElementSpec{}, err
	}
	return ElementSpec{Name: name, Value: y}, nil
}

// CreateAttrs builds an ordered attribute set.  It fails without
// building anything if a value is not an atom.
func CreateAttrs(specs ...AttrSpec) ([]*ir.Attr, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	res := make([]*ir.Attr, 0, len(specs))
	for i := range specs {
		a, err := newAttr(&specs[i])
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func newAttr(spec *AttrSpec) (*ir.Attr, error) {
	if err := checkAttrName(spec.Name); err != nil {
		return nil, err
	}
	if spec.Value != nil && !spec.Value.IsAtom() {
		return nil, fmt.Errorf("%w: attribute %q has %s value", ErrInvalidAttributeValue, spec.Name, spec.Value.Type)
	}
	return &ir.Attr{Name: spec.Name, Value: spec.Value}, nil
}

func checkAttrName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty attribute name", ErrInvalidName)
	}
	if strings.HasPrefix(name, ir.MarkerPrefix) {
		return fmt.Errorf("%w: attribute %q carries the marker prefix", ErrInvalidName, name)
	}
	if token.NeedsQuote(name) {
		return fmt.Errorf("%w: attribute %q is not a bare token", ErrInvalidName, name)
	}
	return nil
}

// CreateElements builds one element per spec, in order.
func CreateElements(specs ...ElementSpec) ([]*ir.Node, error) {
	res := make([]*ir.Node, 0, len(specs))
	for i := range specs {
		y, err := CreateElement(specs[i])
		if err != nil {
			return nil, err
		}
		res = append(res, y)
	}
	return res, nil
}

func CreateElement(spec ElementSpec) (*ir.Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: empty element name", ErrInvalidName)
	}
	attrs, err := CreateAttrs(spec.Attrs...)
	if err != nil {
		return nil, err
	}
	if spec.Value == nil {
		return ir.NewElement(spec.Name, attrs), nil
	}
	return ir.NewElement(spec.Name, attrs, spec.Value), nil
}

// CreateObject builds an element named name whose children are built
// from elems.
func CreateObject(name string, attrs []AttrSpec, elems ...ElementSpec) (*ir.Node, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty object name", ErrInvalidName)
	}
	as, err := CreateAttrs(attrs...)
	if err != nil {
		return nil, err
	}
	children, err := CreateElements(elems...)
	if err != nil {
		return nil, err
	}
	return ir.NewElement(name, as, children...), nil
}
