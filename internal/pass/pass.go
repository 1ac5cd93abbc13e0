package pass

import (
	"context"

	"github.com/vk/tensorsched/internal/ir"
)

// Result is the tri-state outcome of a pass over a module.
type Result int

const (
	// Failure means the pass could not complete; the pipeline aborts.
	Failure Result = iota
	// NoChange means the pass completed without mutating the module.
	NoChange
	// Changed means the pass completed and mutated the module.
	Changed
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Failure:
		return "failure"
	case NoChange:
		return "no-change"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// Pass is one unit of compilation work over a module.
type Pass interface {
	// Name identifies the pass; required-analysis references use it.
	Name() string

	// Requires lists the names of passes that must have run earlier in the
	// same pipeline.
	Requires() []string

	// Run executes the pass against the module.
	Run(ctx context.Context, m *ir.Module) (Result, error)
}
