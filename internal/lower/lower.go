package lower

import (
	"fmt"

	"github.com/vk/tensorsched/internal/ir"
)

// Lower maps one generic operator kind onto a target compute operator.
type Lower interface {
	// Score rates how well this lower matches n. Zero or negative means it
	// does not apply; the highest positive score wins.
	Score(n *ir.Node) int

	// Activate builds the target compute node replacing n. The replacement
	// adopts n's inputs, outputs, and attributes; n is tombstoned.
	Activate(g *ir.Graph, n *ir.Node) (*ir.Node, error)
}

// Selection holds the lowers registered for one target.
type Selection struct {
	lowers []Lower
}

// NewSelection creates a selection seeded with the given lowers.
func NewSelection(lowers ...Lower) *Selection {
	return &Selection{lowers: lowers}
}

// Register appends a lower to the selection.
func (s *Selection) Register(l Lower) {
	s.lowers = append(s.lowers, l)
}

// Best returns the highest-scoring applicable lower for n, or nil if no
// registered lower claims it. Registration order breaks score ties.
func (s *Selection) Best(n *ir.Node) Lower {
	var best Lower
	bestScore := 0
	for _, l := range s.lowers {
		if sc := l.Score(n); sc > bestScore {
			best = l
			bestScore = sc
		}
	}
	return best
}

// kindLower is the common case: an exact kind match lowered to a fixed
// target kind, with operands, results, and attributes carried over.
type kindLower struct {
	match  ir.Kind
	target ir.Kind
}

func (l *kindLower) Score(n *ir.Node) int {
	if n.Kind() == l.match {
		return 10
	}
	return 0
}

func (l *kindLower) Activate(g *ir.Graph, n *ir.Node) (*ir.Node, error) {
	repl := g.CreateNode(l.target)
	repl.SetName(n.Name())
	repl.Attrs = n.Attrs
	for _, in := range n.Inputs() {
		repl.AddInput(in)
	}
	if err := g.InsertBefore(repl, n); err != nil {
		return nil, fmt.Errorf("lowering %q: %w", n.Kind(), err)
	}
	repl.AdoptOutputs(n)
	g.RemoveNode(n)
	return repl, nil
}
