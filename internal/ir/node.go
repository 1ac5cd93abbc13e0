package ir

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// NodeID is a stable index into a Graph's node arena.
type NodeID int

// NoNode is the null node reference. An unbound value has NoNode as its
// producer.
const NoNode NodeID = -1

// Node is one operator instance: a kind tag, ordered input and output values,
// optional operator attributes, and a position in graph order.
type Node struct {
	g *Graph

	id      NodeID
	kind    Kind
	name    string
	inputs  []ValueID
	outputs []ValueID

	// seq is the node's position in graph order, recomputed whenever the
	// order changes. Unplaced nodes have seq -1.
	seq int

	// Attrs carries operator attributes (e.g. lrn alpha/beta) as typed
	// configuration values.
	Attrs map[string]cty.Value
}

// ID returns the node's stable arena index.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the node's operator kind.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the node's instance name, which may be empty for synthetic
// nodes.
func (n *Node) Name() string { return n.name }

// SetName sets the node's instance name.
func (n *Node) SetName(name string) { n.name = name }

// Seq returns the node's position in graph order, or -1 if the node has not
// been placed.
func (n *Node) Seq() int { return n.seq }

// Inputs returns the node's input values in operand order.
func (n *Node) Inputs() []*Value {
	out := make([]*Value, 0, len(n.inputs))
	for _, id := range n.inputs {
		out = append(out, n.g.value(id))
	}
	return out
}

// Outputs returns the node's output values in result order.
func (n *Node) Outputs() []*Value {
	out := make([]*Value, 0, len(n.outputs))
	for _, id := range n.outputs {
		out = append(out, n.g.value(id))
	}
	return out
}

// AddInput appends v as the node's next operand and registers the use.
func (n *Node) AddInput(v *Value) {
	n.inputs = append(n.inputs, v.id)
	v.addUse(n.id)
}

// NewOutput creates a fresh value produced by this node.
func (n *Node) NewOutput(name string) *Value {
	v := n.g.NewValue(name)
	v.producer = n.id
	n.outputs = append(n.outputs, v.id)
	return v
}

// BindOutput attaches an existing unbound value as the node's next output,
// resolving a forward reference created before the producer was seen.
func (n *Node) BindOutput(v *Value) error {
	if v.producer != NoNode {
		return fmt.Errorf("value %q already has a producer", v.name)
	}
	v.producer = n.id
	n.outputs = append(n.outputs, v.id)
	return nil
}

// AdoptOutputs transfers every output value of from to the receiver. The
// values keep their arena slots and names, so external output registrations
// and existing uses stay valid across the transfer.
func (n *Node) AdoptOutputs(from *Node) {
	for _, id := range from.outputs {
		v := n.g.value(id)
		v.producer = n.id
		n.outputs = append(n.outputs, id)
	}
	from.outputs = nil
}

// Before reports whether n precedes other in graph order. Both nodes must be
// placed.
func (n *Node) Before(other *Node) bool {
	return n.seq >= 0 && other.seq >= 0 && n.seq < other.seq
}
