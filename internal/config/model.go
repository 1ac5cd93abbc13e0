package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified, format-agnostic representation of everything loaded
// from configuration: the accelerator targets available for scheduling and
// the network models to schedule.
type Model struct {
	Targets map[string]*TargetDef
	Models  []*ModelDef
}

// TargetDef describes one accelerator target: its execution resource
// classes and the cycle cost of each operator kind on them.
type TargetDef struct {
	Name      string
	Resources []*ResourceDef
	Ops       []*OpCostDef
	Default   *OpCostDef // fallback for unlisted kinds; nil disables it
}

// ResourceDef declares one execution resource class and how many operators
// of that class may run concurrently.
type ResourceDef struct {
	Name  string
	Units int
}

// OpCostDef is the cost record for one operator kind. For the target's
// default entry, Kind is empty.
type OpCostDef struct {
	Kind     string
	Resource string
	Cycles   int
}

// ModelDef is the format-agnostic representation of one network model.
type ModelDef struct {
	Name    string
	Inputs  []*TensorDef
	Nodes   []*NodeDef
	Outputs []string
}

// TensorDef declares a named tensor with its shape and element type.
type TensorDef struct {
	Name  string
	Dims  []int64
	DType string
}

// NodeDef is one operator instance in a model definition. Inputs name the
// values the node consumes; unresolved names become unbound values in the
// IR rather than load errors.
type NodeDef struct {
	Kind    string
	Name    string
	Inputs  []string
	Outputs []*TensorDef
	Attrs   map[string]cty.Value
}
