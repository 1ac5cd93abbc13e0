package lower

import (
	"context"

	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
	"github.com/vk/tensorsched/internal/pass"
)

// PassName is the name the operator-selection pass registers under.
const PassName = "tensor-select"

// Pass replaces generic operator nodes with target compute operators using
// a Selection. Nodes no lower claims are kept as-is with a warning; the
// scheduler can still cost them through the target's default entry.
type Pass struct {
	sel *Selection
}

// NewPass creates the selection pass.
func NewPass(sel *Selection) *Pass {
	return &Pass{sel: sel}
}

// Name implements pass.Pass.
func (p *Pass) Name() string { return PassName }

// Requires implements pass.Pass.
func (p *Pass) Requires() []string { return nil }

// Run implements pass.Pass.
func (p *Pass) Run(ctx context.Context, m *ir.Module) (pass.Result, error) {
	logger := ctxlog.FromContext(ctx)
	changed := false

	// Snapshot the order up front: Activate splices replacements into it.
	for _, n := range m.Graph.Nodes() {
		if n.Kind().Sentinel() || n.Kind() == ir.KindLoad || n.Kind() == ir.KindStore {
			continue
		}
		l := p.sel.Best(n)
		if l == nil {
			logger.Warn("No lowering registered for operator kind; keeping generic node.",
				"kind", n.Kind(), "name", n.Name())
			continue
		}
		from := n.Kind()
		repl, err := l.Activate(m.Graph, n)
		if err != nil {
			return pass.Failure, err
		}
		logger.Debug("Lowered node.", "from", from, "to", repl.Kind(), "name", repl.Name())
		changed = true
	}

	if changed {
		return pass.Changed, nil
	}
	return pass.NoChange, nil
}
