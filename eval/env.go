package eval

import (
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/oval"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/operation"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(newEnv(ir.NewElement("_", nil))),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// newEnv returns the variables and functions bound for obj.
func newEnv(obj *ir.Node) map[string]any {
	elements := map[string]string{}
	for _, v := range obj.Values {
		name, ok := oval.ElementName(v)
		if !ok {
			continue
		}
		if _, seen := elements[name]; seen {
			continue
		}
		if text, ok := oval.ElementText(obj, name); ok {
			elements[name] = text
		}
	}
	attrs := map[string]string{}
	for _, a := range obj.Attrs {
		if _, seen := attrs[a.Name]; seen {
			continue
		}
		attrs[a.Name] = attrText(obj, a.Name)
	}
	target := func(e string) (*ir.Node, bool) {
		if e == "" {
			return obj, true
		}
		return oval.FindElement(obj, e)
	}
	return map[string]any{
		"name":     obj.Name,
		"elements": elements,
		"attrs":    attrs,
		"text": func(e string) string {
			text, _ := oval.ElementText(obj, e)
			return text
		},
		"attr": func(e, a string) string {
			elm, ok := target(e)
			if !ok {
				return ""
			}
			return attrText(elm, a)
		},
		"has": func(e string) bool {
			_, ok := oval.FindElement(obj, e)
			return ok
		},
		"hasattr": func(e, a string) bool {
			elm, ok := target(e)
			return ok && oval.HasAttr(elm, a)
		},
		"count": func(e string) int {
			return len(oval.Elements(obj, e))
		},
		// compare applies an entity operation to the text of e, with
		// e's datatype attribute if it has one.
		"compare": func(e, op, pattern string) (bool, error) {
			elm, ok := oval.FindElement(obj, e)
			if !ok {
				return false, nil
			}
			text, ok := oval.ElementText(obj, e)
			if !ok {
				return false, nil
			}
			o, err := operation.Lookup(op, attrText(elm, oval.DatatypeAttr))
			if err != nil {
				return false, err
			}
			return o.Match(text, pattern)
		},
	}
}

// attrText is the value of attribute a, or "" for flags and absent ones.
func attrText(elm *ir.Node, a string) string {
	v, ok := oval.AttrValue(elm, a)
	if !ok {
		return ""
	}
	for _, x := range elm.Attrs {
		if x.Name == a && x.IsFlag() {
			return ""
		}
	}
	return v.Atom
}
