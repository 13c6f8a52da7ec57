package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/oval/debug"
	"github.com/signadot/oval/ir"
)

// Filter is a compiled expression.  It is safe for concurrent use.
type Filter struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates f against the element obj.
func (f *Filter) Match(obj *ir.Node) (bool, error) {
	if !obj.IsElement() {
		return false, fmt.Errorf("%w: %s", ErrNotObject, obj.Type)
	}
	out, err := expr.Run(f.prog, newEnv(obj))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRun, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: result %T", ErrRun, out)
	}
	if debug.Eval() {
		debug.Logf("filter %q on %s: %t\n", f.src, obj.Name, res)
	}
	return res, nil
}

// Select returns the members of objs matched by f, in order.
func (f *Filter) Select(objs []*ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	for _, obj := range objs {
		ok, err := f.Match(obj)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, obj)
		}
	}
	return res, nil
}
