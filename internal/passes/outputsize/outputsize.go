// Package outputsize implements the output-size analysis: it propagates
// tensor shapes through the graph in order so later passes can rely on every
// value carrying its dimensions. The node scheduler declares a hard
// dependency on this pass.
package outputsize

import (
	"context"

	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
	"github.com/vk/tensorsched/internal/pass"
)

// PassName is the name the analysis registers under.
const PassName = "output-size"

// Pass propagates output dims for every node whose outputs lack them. The
// default inference rule is elementwise: an output inherits the dims and
// element type of the node's first sized input. Nodes that cannot be
// resolved are left alone with a warning.
type Pass struct{}

// NewPass creates the analysis pass.
func NewPass() *Pass {
	return &Pass{}
}

// Name implements pass.Pass.
func (p *Pass) Name() string { return PassName }

// Requires implements pass.Pass.
func (p *Pass) Requires() []string { return nil }

// Run implements pass.Pass.
func (p *Pass) Run(ctx context.Context, m *ir.Module) (pass.Result, error) {
	logger := ctxlog.FromContext(ctx)
	changed := false

	for _, n := range m.Graph.Nodes() {
		if n.Kind() == ir.KindUndefined || n.Kind() == ir.KindReturn {
			continue
		}

		var src *ir.Value
		for _, in := range n.Inputs() {
			if len(in.Dims) > 0 {
				src = in
				break
			}
		}

		for _, out := range n.Outputs() {
			if len(out.Dims) > 0 {
				continue
			}
			if src == nil {
				logger.Warn("Cannot infer output size: node has no sized input.",
					"kind", n.Kind(), "name", n.Name(), "output", out.Name())
				continue
			}
			dtype := out.DType
			out.CopyMetadata(src)
			if dtype != "" {
				out.DType = dtype
			}
			changed = true
		}
	}

	if changed {
		return pass.Changed, nil
	}
	return pass.NoChange, nil
}
