package ir

// Module is the unit of work a pass pipeline operates on: one named graph.
type Module struct {
	Name  string
	Graph *Graph
}

// NewModule wraps a graph in a module.
func NewModule(name string, g *Graph) *Module {
	return &Module{Name: name, Graph: g}
}
