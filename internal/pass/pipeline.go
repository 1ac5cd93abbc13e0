package pass

import (
	"context"
	"fmt"

	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
)

// Pipeline runs a fixed sequence of passes over a module.
type Pipeline struct {
	passes []Pass
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add appends passes to the pipeline in execution order.
func (p *Pipeline) Add(passes ...Pass) {
	p.passes = append(p.passes, passes...)
}

// Run executes every pass in order. A pass whose requirements have not run,
// a pass error, or a Failure result aborts the pipeline.
func (p *Pipeline) Run(ctx context.Context, m *ir.Module) error {
	logger := ctxlog.FromContext(ctx)
	ran := make(map[string]bool)

	for _, ps := range p.passes {
		for _, req := range ps.Requires() {
			if !ran[req] {
				return fmt.Errorf("pass %q requires %q, which has not run", ps.Name(), req)
			}
		}

		res, err := ps.Run(ctx, m)
		if err != nil {
			return fmt.Errorf("pass %q: %w", ps.Name(), err)
		}
		if res == Failure {
			return fmt.Errorf("pass %q reported failure", ps.Name())
		}
		logger.Debug("Pass finished.", "pass", ps.Name(), "result", res.String())
		ran[ps.Name()] = true
	}
	return nil
}
