package ir

import "fmt"

// Graph owns the node and value arenas and the explicit graph order. It is a
// single mutable structure; passes require exclusive access while mutating
// it and the type performs no internal locking.
type Graph struct {
	nodes  []*Node
	values []*Value
	order  []NodeID

	byName map[string]ValueID

	inputs  []ValueID
	outputs []ValueID

	// normalized is set once boundary Load/Store nodes have been inserted,
	// so repeated scheduling passes skip re-normalization even if the
	// trailing node is later disturbed.
	normalized bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{byName: make(map[string]ValueID)}
}

func (g *Graph) node(id NodeID) *Node    { return g.nodes[id] }
func (g *Graph) value(id ValueID) *Value { return g.values[id] }

// NewValue allocates an unbound value with the given name. Names are made
// unique by suffixing when they collide.
func (g *Graph) NewValue(name string) *Value {
	if _, taken := g.byName[name]; taken {
		for i := 1; ; i++ {
			candidate := fmt.Sprintf("%s_%d", name, i)
			if _, taken := g.byName[candidate]; !taken {
				name = candidate
				break
			}
		}
	}
	v := &Value{
		g:        g,
		id:       ValueID(len(g.values)),
		name:     name,
		producer: NoNode,
	}
	g.values = append(g.values, v)
	g.byName[name] = v.id
	return v
}

// ValueByName returns the value with the given name, or nil.
func (g *Graph) ValueByName(name string) *Value {
	id, ok := g.byName[name]
	if !ok {
		return nil
	}
	return g.values[id]
}

// CreateNode allocates a node without placing it in graph order. The caller
// must place it with Append or InsertBefore before it is visible to passes.
func (g *Graph) CreateNode(kind Kind, inputs ...*Value) *Node {
	n := &Node{
		g:    g,
		id:   NodeID(len(g.nodes)),
		kind: kind,
		seq:  -1,
	}
	g.nodes = append(g.nodes, n)
	for _, v := range inputs {
		n.AddInput(v)
	}
	return n
}

// AddNode allocates a node and appends it to graph order.
func (g *Graph) AddNode(kind Kind, inputs ...*Value) *Node {
	n := g.CreateNode(kind, inputs...)
	g.Append(n)
	return n
}

// Append places n at the end of graph order.
func (g *Graph) Append(n *Node) {
	g.order = append(g.order, n.id)
	n.seq = len(g.order) - 1
}

// InsertBefore places n immediately before ref in graph order. It returns an
// error if ref is not placed or n already is.
func (g *Graph) InsertBefore(n, ref *Node) error {
	if ref.seq < 0 {
		return fmt.Errorf("insertion point %q is not in graph order", ref.kind)
	}
	if n.seq >= 0 {
		return fmt.Errorf("node %q is already placed", n.kind)
	}
	at := ref.seq
	g.order = append(g.order, 0)
	copy(g.order[at+1:], g.order[at:])
	g.order[at] = n.id
	g.renumber()
	return nil
}

// renumber reassigns sequence numbers to match the order slice.
func (g *Graph) renumber() {
	for i, id := range g.order {
		g.nodes[id].seq = i
	}
}

// Nodes returns the placed nodes in graph order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Len returns the number of placed nodes.
func (g *Graph) Len() int { return len(g.order) }

// Last returns the final node in graph order, or nil for an empty graph.
func (g *Graph) Last() *Node {
	if len(g.order) == 0 {
		return nil
	}
	return g.nodes[g.order[len(g.order)-1]]
}

// MarkInput registers v as an external input of the graph.
func (g *Graph) MarkInput(v *Value) {
	g.inputs = append(g.inputs, v.id)
}

// MarkOutput registers v as an external output of the graph.
func (g *Graph) MarkOutput(v *Value) {
	g.outputs = append(g.outputs, v.id)
}

// Inputs returns the external input values.
func (g *Graph) Inputs() []*Value {
	out := make([]*Value, 0, len(g.inputs))
	for _, id := range g.inputs {
		out = append(out, g.values[id])
	}
	return out
}

// Outputs returns the external output values.
func (g *Graph) Outputs() []*Value {
	out := make([]*Value, 0, len(g.outputs))
	for _, id := range g.outputs {
		out = append(out, g.values[id])
	}
	return out
}

// Normalized reports whether boundary nodes have been inserted.
func (g *Graph) Normalized() bool { return g.normalized }

// SetNormalized records that boundary insertion has run.
func (g *Graph) SetNormalized() { g.normalized = true }

// ReplaceAllUses rewires every consumer of old to consume new instead. The
// producers of both values are left untouched.
func (g *Graph) ReplaceAllUses(old, new *Value) {
	for _, userID := range old.uses {
		user := g.nodes[userID]
		for i, in := range user.inputs {
			if in == old.id {
				user.inputs[i] = new.id
				new.uses = append(new.uses, userID)
			}
		}
	}
	old.uses = nil
}

// RemoveNode tombstones n: its kind becomes undefined, it is detached from
// its inputs, and it leaves graph order. Its output values keep their arena
// slots but lose their producer, so stale references surface as unbound
// values rather than corrupt memory.
func (g *Graph) RemoveNode(n *Node) {
	for _, in := range n.inputs {
		g.values[in].removeUse(n.id)
	}
	n.inputs = nil
	for _, out := range n.outputs {
		g.values[out].producer = NoNode
	}
	n.outputs = nil
	n.kind = KindUndefined
	if n.seq >= 0 {
		g.order = append(g.order[:n.seq], g.order[n.seq+1:]...)
		n.seq = -1
		g.renumber()
	}
}
