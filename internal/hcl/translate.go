package hcl

import (
	"fmt"

	"github.com/vk/tensorsched/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// translateTarget converts a decoded target block into the agnostic model,
// validating capacities and cycle counts on the way in so the scheduler
// never sees a negative value.
func (l *Loader) translateTarget(t *Target) (*config.TargetDef, error) {
	def := &config.TargetDef{Name: t.Name}

	for _, r := range t.Resources {
		if r.Units < 0 {
			return nil, fmt.Errorf("target %q: resource %q has negative units", t.Name, r.Name)
		}
		def.Resources = append(def.Resources, &config.ResourceDef{Name: r.Name, Units: r.Units})
	}

	for _, op := range t.Ops {
		if op.Cycles < 0 {
			return nil, fmt.Errorf("target %q: op %q has negative cycles", t.Name, op.Kind)
		}
		def.Ops = append(def.Ops, &config.OpCostDef{Kind: op.Kind, Resource: op.Resource, Cycles: op.Cycles})
	}

	if t.Default != nil {
		if t.Default.Cycles < 0 {
			return nil, fmt.Errorf("target %q: default op has negative cycles", t.Name)
		}
		def.Default = &config.OpCostDef{Resource: t.Default.Resource, Cycles: t.Default.Cycles}
	}

	return def, nil
}

// translateModel converts a decoded model block into the agnostic model.
func (l *Loader) translateModel(m *Model) (*config.ModelDef, error) {
	def := &config.ModelDef{Name: m.Name, Outputs: m.Outputs}

	for _, in := range m.Inputs {
		def.Inputs = append(def.Inputs, translateTensor(in))
	}

	for _, n := range m.Nodes {
		attrs, err := translateAttrs(n)
		if err != nil {
			return nil, fmt.Errorf("model %q, node %q: %w", m.Name, n.Name, err)
		}
		nd := &config.NodeDef{
			Kind:   n.Kind,
			Name:   n.Name,
			Inputs: n.Inputs,
			Attrs:  attrs,
		}
		for _, out := range n.Outputs {
			nd.Outputs = append(nd.Outputs, translateTensor(out))
		}
		def.Nodes = append(def.Nodes, nd)
	}

	return def, nil
}

func translateTensor(t *Tensor) *config.TensorDef {
	return &config.TensorDef{Name: t.Name, Dims: t.Dims, DType: t.DType}
}

// translateAttrs evaluates the optional attrs expression to a static object
// and spreads it into a name-to-value map.
func translateAttrs(n *Node) (map[string]cty.Value, error) {
	if n.Attrs == nil {
		return nil, nil
	}
	val, diags := n.Attrs.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate attrs: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("attrs must be an object, got %s", val.Type().FriendlyName())
	}
	return val.AsValueMap(), nil
}
