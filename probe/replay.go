package probe

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/oval"
	"github.com/signadot/oval/debug"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/parse"
)

const (
	ObjectSuffix = "_object"
	ItemSuffix   = "_item"
)

// Replay answers objects from recorded items.  An object named
// <type>_object is answered with the <type>_item items it matches,
// ignoring the root names and attributes.  Entity operations such as
// pattern match are honored.
type Replay struct {
	items map[string][]*ir.Node
	order []string
}

func NewReplay(items ...*ir.Node) (*Replay, error) {
	r := &Replay{items: map[string][]*ir.Node{}}
	for i, item := range items {
		if err := r.Add(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return r, nil
}

// LoadReplay reads a sequence of item trees, as written by ox dump.
func LoadReplay(d []byte) (*Replay, error) {
	items, err := parse.ParseAll(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReplay, err)
	}
	return NewReplay(items...)
}

func (r *Replay) Add(item *ir.Node) error {
	name, ok := oval.ElementName(item)
	if !ok || !strings.HasSuffix(name, ItemSuffix) || name == ItemSuffix {
		return fmt.Errorf("%w: item %s is not named <type>%s", ErrReplay, debug.Tree{Node: item}, ItemSuffix)
	}
	if _, ok := r.items[name]; !ok {
		r.order = append(r.order, name)
	}
	r.items[name] = append(r.items[name], item)
	return nil
}

// Objects returns the object names for which items were recorded.
func (r *Replay) Objects() []string {
	res := make([]string, 0, len(r.order))
	for _, name := range r.order {
		res = append(res, strings.TrimSuffix(name, ItemSuffix)+ObjectSuffix)
	}
	slices.Sort(res)
	return res
}

// Register installs r in reg for each of its object names.
func (r *Replay) Register(reg *Registry) {
	for _, name := range r.Objects() {
		reg.Register(name, r)
	}
}

func (r *Replay) Collect(ctx context.Context, obj *ir.Node) ([]*ir.Node, error) {
	name, ok := oval.ElementName(obj)
	if !ok || !strings.HasSuffix(name, ObjectSuffix) {
		return nil, fmt.Errorf("%w: cannot replay %s", ErrBadObject, debug.Tree{Node: obj})
	}
	itemName := strings.TrimSuffix(name, ObjectSuffix) + ItemSuffix
	var res []*ir.Node
	for _, item := range r.items[itemName] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := oval.Match(item, obj, oval.MatchHeader(false), oval.MatchOperations(true))
		if err != nil {
			return nil, err
		}
		if debug.Probe() {
			debug.Logf("replay %s against %s: %t\n", debug.Tree{Node: obj}, debug.Tree{Node: item}, ok)
		}
		if ok {
			res = append(res, item.Clone())
		}
	}
	return res, nil
}
