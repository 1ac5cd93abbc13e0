package scheduler

import (
	"context"

	"github.com/vk/tensorsched/internal/costmodel"
	"github.com/vk/tensorsched/internal/ir"
	"github.com/vk/tensorsched/internal/pass"
	"github.com/vk/tensorsched/internal/passes/outputsize"
)

// PassName is the name the scheduling pass registers under.
const PassName = "node-scheduler"

// Pass wraps the list scheduler as a pipeline pass. It reports Changed when
// normalization inserted boundary nodes and NoChange when the graph was
// already normalized; the computed Schedule is retained for the caller.
type Pass struct {
	model    costmodel.Model
	schedule *Schedule
}

// NewPass creates the scheduling pass bound to a target's cost model.
func NewPass(model costmodel.Model) *Pass {
	return &Pass{model: model}
}

// Name implements pass.Pass.
func (p *Pass) Name() string { return PassName }

// Requires implements pass.Pass. Scheduling needs sized values, so the
// output-size analysis must have run.
func (p *Pass) Requires() []string {
	return []string{outputsize.PassName}
}

// Run implements pass.Pass.
func (p *Pass) Run(ctx context.Context, m *ir.Module) (pass.Result, error) {
	wasNormalized := normalized(m.Graph)

	sched, err := New(p.model).Run(ctx, m.Graph)
	if err != nil {
		return pass.Failure, err
	}
	p.schedule = sched

	if wasNormalized {
		return pass.NoChange, nil
	}
	return pass.Changed, nil
}

// Schedule returns the result of the last Run, or nil before the first.
func (p *Pass) Schedule() *Schedule {
	return p.schedule
}
