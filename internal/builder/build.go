package builder

import (
	"context"
	"fmt"

	"github.com/vk/tensorsched/internal/config"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
)

// BuildModule constructs an ir.Module from a model definition. Values are
// wired by name in definition order. A node input naming a value no node
// produces becomes an unbound placeholder value with a warning, matching the
// scheduler's tolerance for partially specified IR. An unknown name in the
// model's outputs list is an error: the external boundary must be real.
func BuildModule(ctx context.Context, def *config.ModelDef) (*ir.Module, error) {
	logger := ctxlog.FromContext(ctx)
	g := ir.New()

	for _, in := range def.Inputs {
		v := g.NewValue(in.Name)
		v.Dims = in.Dims
		v.DType = elemType(in.DType)
		g.MarkInput(v)
	}

	for _, nd := range def.Nodes {
		var ins []*ir.Value
		for _, name := range nd.Inputs {
			v := g.ValueByName(name)
			if v == nil {
				// Forward references and genuinely dangling names both land
				// here; the scheduler warns about whichever stay unbound.
				logger.Debug("Node references a value not yet produced; creating placeholder.",
					"model", def.Name, "node", nd.Name, "value", name)
				v = g.NewValue(name)
			}
			ins = append(ins, v)
		}

		n := g.AddNode(ir.Kind(nd.Kind), ins...)
		n.SetName(nd.Name)
		n.Attrs = nd.Attrs

		for _, out := range nd.Outputs {
			v := g.ValueByName(out.Name)
			if v != nil && v.Producer() == nil {
				// Claim the placeholder a forward reference created.
				if err := n.BindOutput(v); err != nil {
					return nil, fmt.Errorf("model %q, node %q: %w", def.Name, nd.Name, err)
				}
			} else {
				v = n.NewOutput(out.Name)
			}
			v.Dims = out.Dims
			v.DType = elemType(out.DType)
		}
	}

	if len(def.Outputs) > 0 {
		var outs []*ir.Value
		for _, name := range def.Outputs {
			v := g.ValueByName(name)
			if v == nil {
				return nil, fmt.Errorf("model %q declares unknown output value %q", def.Name, name)
			}
			g.MarkOutput(v)
			outs = append(outs, v)
		}
		// The terminal return node consumes the external outputs so they
		// have a consumer in the dependency structure.
		g.AddNode(ir.KindReturn, outs...)
	}

	return ir.NewModule(def.Name, g), nil
}

// elemType applies the default element type.
func elemType(dtype string) string {
	if dtype == "" {
		return "float32"
	}
	return dtype
}
