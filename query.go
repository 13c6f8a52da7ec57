package oval

import "github.com/signadot/oval/ir"

// ElementName returns the name of node if it is an element.
func ElementName(node *ir.Node) (string, bool) {
	if !node.IsElement() {
		return "", false
	}
	return node.Name, true
}

// FindElement returns the first child element of obj named name.
// Children which are not elements are skipped.
func FindElement(obj *ir.Node, name string) (*ir.Node, bool) {
	if !obj.IsElement() {
		return nil, false
	}
	for _, v := range obj.Values {
		if n, ok := ElementName(v); ok && n == name {
			return v, true
		}
	}
	return nil, false
}

// Elements returns every child element of obj named name.
func Elements(obj *ir.Node, name string) []*ir.Node {
	if !obj.IsElement() {
		return nil
	}
	var res []*ir.Node
	for _, v := range obj.Values {
		if n, ok := ElementName(v); ok && n == name {
			res = append(res, v)
		}
	}
	return res
}

// ElementValue returns the first child of elm, its value when elm holds a
// terminal scalar.
func ElementValue(elm *ir.Node) (*ir.Node, bool) {
	if !elm.IsElement() || len(elm.Values) == 0 {
		return nil, false
	}
	return elm.Values[0], true
}

// AttrValue returns the value of the ':'-prefixed attribute name of elm.
// For a flag it returns the marker itself.
func AttrValue(elm *ir.Node, name string) (*ir.Node, bool) {
	if !elm.IsElement() {
		return nil, false
	}
	for _, a := range elm.Attrs {
		if a.Bare || a.Name != name {
			continue
		}
		if a.Value == nil {
			return ir.FromAtom(a.Marker()), true
		}
		return a.Value, true
	}
	return nil, false
}

// HasAttr reports whether elm carries attribute name, prefixed or not.
// name may itself be given with the prefix.
func HasAttr(elm *ir.Node, name string) bool {
	if !elm.IsElement() {
		return false
	}
	name, _ = ir.MarkerName(name)
	for _, a := range elm.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// ElementText returns the atom held by the first child of obj named name.
func ElementText(obj *ir.Node, name string) (string, bool) {
	elm, ok := FindElement(obj, name)
	if !ok {
		return "", false
	}
	v, ok := ElementValue(elm)
	if !ok || !v.IsAtom() {
		return "", false
	}
	return v.Atom, true
}
