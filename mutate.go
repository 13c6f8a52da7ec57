package oval

import (
	"fmt"

	"github.com/signadot/oval/ir"
)

// AddAttr appends an attribute to the header of node.  A nil value adds
// a flag.  The returned node is the one to keep using.  On error node is
// unchanged.
func AddAttr(node *ir.Node, name string, value *ir.Node) (*ir.Node, error) {
	if !node.IsElement() {
		return nil, notElement(node)
	}
	a, err := newAttr(&AttrSpec{Name: name, Value: value})
	if err != nil {
		return nil, err
	}
	node.Attrs = append(node.Attrs, a)
	return node, nil
}

// AddElement builds a child element and appends it after the existing
// children of node.
func AddElement(node *ir.Node, name string, attrs []AttrSpec, value *ir.Node) (*ir.Node, error) {
	if !node.IsElement() {
		return nil, notElement(node)
	}
	child, err := CreateElement(ElementSpec{Name: name, Attrs: attrs, Value: value})
	if err != nil {
		return nil, err
	}
	return node.Append(child), nil
}

// AddElementAttr adds an attribute to the first child of obj named
// elemName.
func AddElementAttr(obj *ir.Node, elemName, attrName string, value *ir.Node) (*ir.Node, error) {
	if !obj.IsElement() {
		return nil, notElement(obj)
	}
	elm, ok := FindElement(obj, elemName)
	if !ok {
		return nil, fmt.Errorf("%w: element %q in %s", ErrNotFound, elemName, obj.Name)
	}
	if _, err := AddAttr(elm, attrName, value); err != nil {
		return nil, err
	}
	return obj, nil
}

// RemoveAttr removes the first attribute of node named name, whether or
// not its marker was prefixed.  Removing an absent attribute is a no-op.
func RemoveAttr(node *ir.Node, name string) (*ir.Node, error) {
	if !node.IsElement() {
		return nil, notElement(node)
	}
	name, _ = ir.MarkerName(name)
	for i, a := range node.Attrs {
		if a.Name != name {
			continue
		}
		node.Attrs = append(node.Attrs[:i], node.Attrs[i+1:]...)
		if len(node.Attrs) == 0 {
			node.Attrs = nil
		}
		break
	}
	return node, nil
}

// RemoveElement removes the first child element of obj named name.
// Removing an absent element is a no-op.
func RemoveElement(obj *ir.Node, name string) (*ir.Node, error) {
	if !obj.IsElement() {
		return nil, notElement(obj)
	}
	elm, ok := FindElement(obj, name)
	if !ok {
		return obj, nil
	}
	return obj.RemoveAt(elm.ParentIndex), nil
}

// RemoveElementAttr removes attribute attrName from the first child of obj
// named elemName.  It is a no-op when either is absent.
func RemoveElementAttr(obj *ir.Node, elemName, attrName string) (*ir.Node, error) {
	if !obj.IsElement() {
		return nil, notElement(obj)
	}
	elm, ok := FindElement(obj, elemName)
	if !ok {
		return obj, nil
	}
	if _, err := RemoveAttr(elm, attrName); err != nil {
		return nil, err
	}
	return obj, nil
}

func notElement(y *ir.Node) error {
	if y == nil {
		return fmt.Errorf("%w: nil node", ErrNotElement)
	}
	return fmt.Errorf("%w: %s at %s", ErrNotElement, y.Type, y.Path())
}
