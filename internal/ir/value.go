package ir

// ValueID is a stable index into a Graph's value arena.
type ValueID int

// Value is one data edge in the dataflow graph: produced by at most one node
// and consumed by any number of nodes. A value with no producer is unbound;
// external inputs start out unbound until normalization wraps them in a Load.
type Value struct {
	g *Graph

	id       ValueID
	name     string
	producer NodeID
	uses     []NodeID

	// Tensor metadata. Dims may be nil until the output-size analysis runs.
	Dims  []int64
	DType string
}

// ID returns the value's stable arena index.
func (v *Value) ID() ValueID { return v.id }

// Name returns the value's unique name within its graph.
func (v *Value) Name() string { return v.name }

// Producer returns the node producing this value, or nil if the value is
// unbound.
func (v *Value) Producer() *Node {
	if v.producer == NoNode {
		return nil
	}
	return v.g.node(v.producer)
}

// Uses returns the consuming nodes in registration order.
func (v *Value) Uses() []*Node {
	out := make([]*Node, 0, len(v.uses))
	for _, id := range v.uses {
		out = append(out, v.g.node(id))
	}
	return out
}

// CopyMetadata copies the tensor shape and element type from src.
func (v *Value) CopyMetadata(src *Value) {
	v.Dims = append([]int64(nil), src.Dims...)
	v.DType = src.DType
}

func (v *Value) addUse(n NodeID) {
	v.uses = append(v.uses, n)
}

func (v *Value) removeUse(n NodeID) {
	for i, id := range v.uses {
		if id == n {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}
