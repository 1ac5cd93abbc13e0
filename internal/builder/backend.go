package builder

import (
	"fmt"

	"github.com/vk/tensorsched/internal/config"
	"github.com/vk/tensorsched/internal/costmodel"
	"github.com/vk/tensorsched/internal/ir"
	"github.com/vk/tensorsched/internal/lower"
	"github.com/vk/tensorsched/internal/target"
)

// BuildBackend constructs a target backend from a target definition: a cost
// table populated with the definition's resources and operator costs, plus
// the standard lowering set.
func BuildBackend(def *config.TargetDef) (*target.Backend, error) {
	table := costmodel.NewTable()

	for _, r := range def.Resources {
		if _, err := table.AddResource(r.Name, r.Units); err != nil {
			return nil, fmt.Errorf("target %q: %w", def.Name, err)
		}
	}
	for _, op := range def.Ops {
		if err := table.AddOp(ir.Kind(op.Kind), op.Resource, op.Cycles); err != nil {
			return nil, fmt.Errorf("target %q: %w", def.Name, err)
		}
	}
	if def.Default != nil {
		if err := table.SetDefault(def.Default.Resource, def.Default.Cycles); err != nil {
			return nil, fmt.Errorf("target %q: %w", def.Name, err)
		}
	}

	return target.NewBackend(def.Name, table, lower.Standards()...), nil
}
