package costmodel

import (
	"fmt"

	"github.com/vk/tensorsched/internal/ir"
)

// entry is the cost record for one operator kind.
type entry struct {
	res    *Resource
	cycles int
}

// Table is a Model backed by a per-kind lookup table, typically built from a
// target description file. An optional default entry answers for kinds the
// table does not list; without one, an unknown kind is an error.
type Table struct {
	resources map[string]*Resource
	ops       map[ir.Kind]entry
	def       *entry
}

// NewTable creates an empty cost table.
func NewTable() *Table {
	return &Table{
		resources: make(map[string]*Resource),
		ops:       make(map[ir.Kind]entry),
	}
}

// AddResource registers a resource class. Registering the same name twice is
// an error so two operators can never disagree on a class's capacity.
func (t *Table) AddResource(name string, units int) (*Resource, error) {
	if _, ok := t.resources[name]; ok {
		return nil, fmt.Errorf("execution resource %q already defined", name)
	}
	res := &Resource{Name: name, Units: units}
	t.resources[name] = res
	return res, nil
}

// Resource returns the registered resource class with the given name, or nil.
func (t *Table) Resource(name string) *Resource {
	return t.resources[name]
}

// AddOp records the cost entry for an operator kind.
func (t *Table) AddOp(kind ir.Kind, resource string, cycles int) error {
	res, ok := t.resources[resource]
	if !ok {
		return fmt.Errorf("operator %q references undefined execution resource %q", kind, resource)
	}
	if _, ok := t.ops[kind]; ok {
		return fmt.Errorf("operator %q already has a cost entry", kind)
	}
	t.ops[kind] = entry{res: res, cycles: cycles}
	return nil
}

// SetDefault records the fallback entry for kinds without their own.
func (t *Table) SetDefault(resource string, cycles int) error {
	res, ok := t.resources[resource]
	if !ok {
		return fmt.Errorf("default cost references undefined execution resource %q", resource)
	}
	t.def = &entry{res: res, cycles: cycles}
	return nil
}

func (t *Table) lookup(n *ir.Node) (entry, error) {
	if e, ok := t.ops[n.Kind()]; ok {
		return e, nil
	}
	if t.def != nil {
		return *t.def, nil
	}
	return entry{}, fmt.Errorf("no cost entry for operator kind %q and no default defined", n.Kind())
}

// OperatorCost implements Model.
func (t *Table) OperatorCost(n *ir.Node, m Metric) (int, error) {
	if m != CycleCount {
		return 0, fmt.Errorf("unsupported cost metric %d", m)
	}
	e, err := t.lookup(n)
	if err != nil {
		return 0, err
	}
	return e.cycles, nil
}

// ResourceFor implements Model.
func (t *Table) ResourceFor(n *ir.Node) (*Resource, error) {
	e, err := t.lookup(n)
	if err != nil {
		return nil, err
	}
	return e.res, nil
}
