package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all possible top-level blocks from any file.
type fileRoot struct {
	Targets []*Target `hcl:"target,block"`
	Models  []*Model  `hcl:"model,block"`
	Remain  hcl.Body  `hcl:",remain"`
}

// Target represents a `target` block: one accelerator description.
type Target struct {
	Name      string      `hcl:"name,label"`
	Resources []*Resource `hcl:"resource,block"`
	Ops       []*Op       `hcl:"op,block"`
	Default   *DefaultOp  `hcl:"default,block"`
}

// Resource declares an execution resource class and its concurrency.
type Resource struct {
	Name  string `hcl:"name,label"`
	Units int    `hcl:"units"`
}

// Op records the cycle cost and resource class for one operator kind.
type Op struct {
	Kind     string `hcl:"kind,label"`
	Resource string `hcl:"resource"`
	Cycles   int    `hcl:"cycles"`
}

// DefaultOp is the fallback cost entry for operator kinds without their own
// `op` block.
type DefaultOp struct {
	Resource string `hcl:"resource"`
	Cycles   int    `hcl:"cycles"`
}

// Model represents a `model` block: one network definition.
type Model struct {
	Name    string    `hcl:"name,label"`
	Inputs  []*Tensor `hcl:"input,block"`
	Nodes   []*Node   `hcl:"node,block"`
	Outputs []string  `hcl:"outputs,optional"`
}

// Tensor declares a named tensor with its shape and optional element type.
type Tensor struct {
	Name  string  `hcl:"name,label"`
	Dims  []int64 `hcl:"dims,optional"`
	DType string  `hcl:"dtype,optional"`
}

// Node represents a `node` block: one operator instance, labeled by kind and
// instance name. The optional attrs expression carries operator attributes
// as an object value.
type Node struct {
	Kind    string         `hcl:"kind,label"`
	Name    string         `hcl:"instance_name,label"`
	Inputs  []string       `hcl:"inputs,optional"`
	Outputs []*Tensor      `hcl:"output,block"`
	Attrs   hcl.Expression `hcl:"attrs,optional"`
}
