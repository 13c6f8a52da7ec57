package probe

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/oval"
	"github.com/signadot/oval/ir"
)

// Probe collects the items matching an object.
type Probe interface {
	Collect(ctx context.Context, obj *ir.Node) ([]*ir.Node, error)
}

// ProbeFunc adapts a function to a Probe.
type ProbeFunc func(ctx context.Context, obj *ir.Node) ([]*ir.Node, error)

func (f ProbeFunc) Collect(ctx context.Context, obj *ir.Node) ([]*ir.Node, error) {
	return f(ctx, obj)
}

// Registry maps object names, like "rpminfo_object", to probes.  It is
// safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	probes map[string]Probe
}

func NewRegistry() *Registry {
	return &Registry{probes: map[string]Probe{}}
}

// Register installs p for objects named name, replacing any previous
// probe.
func (r *Registry) Register(name string, p Probe) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = p
}

func (r *Registry) Lookup(name string) (Probe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.probes[name]
	return p, ok
}

// Names returns the registered object names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.probes))
	for k := range r.probes {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Collect dispatches obj to the probe registered under its name.
func (r *Registry) Collect(ctx context.Context, obj *ir.Node) ([]*ir.Node, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil node", ErrBadObject)
	}
	name, ok := oval.ElementName(obj)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an element", ErrBadObject, obj.Type)
	}
	p, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoProbe, name)
	}
	items, err := p.Collect(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProbe, name, err)
	}
	return items, nil
}
