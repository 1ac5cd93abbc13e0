package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/tensorsched/internal/costmodel"
	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
)

// Round is one admission round: the nodes admitted together and the
// simulated cycle at which they start.
type Round struct {
	Start int
	Nodes []*ir.Node
}

// Schedule is the result of a scheduling run: admission-ordered rounds and
// the total simulated makespan in cycles.
type Schedule struct {
	Rounds   []Round
	Makespan int
}

// Scheduler drives the list-scheduling loop for one target's cost model. The
// ledger and worklist are rebuilt on every Run; a Scheduler may be reused
// across graphs but not concurrently.
type Scheduler struct {
	model  costmodel.Model
	ledger *ledger
}

// New creates a scheduler bound to the given cost model.
func New(model costmodel.Model) *Scheduler {
	return &Scheduler{model: model}
}

// Run schedules g and returns the resulting admission order. A missing cost
// model is a configuration fault reported before any mutation. Boundary
// nodes are inserted on first run; repeated runs skip normalization.
func (s *Scheduler) Run(ctx context.Context, g *ir.Graph) (*Schedule, error) {
	logger := ctxlog.FromContext(ctx)

	if s.model == nil {
		return nil, errors.New("no target backend bound: scheduling requires a cost model")
	}
	s.ledger = newLedger()

	if !normalized(g) {
		n := insertBoundaryNodes(ctx, g)
		logger.Debug("Inserted boundary nodes.", "count", n)
	}

	dmap := buildDegreeMap(ctx, g)

	// Seed the worklist with every schedulable node that has no unsatisfied
	// dependencies, in graph order.
	var worklist []*ir.Node
	for _, n := range g.Nodes() {
		if n.Kind().Sentinel() {
			continue
		}
		if dmap[n] == 0 {
			worklist = append(worklist, n)
		}
	}

	sched := &Schedule{}
	cycle := 0
	for len(worklist) > 0 {
		picked, err := s.greedyPickNextNodes(ctx, &worklist)
		if err != nil {
			return nil, err
		}
		if len(picked) == 0 && s.ledger.active() == 0 {
			// Nothing running and nothing admissible: typically a ready
			// node whose resource class has zero units.
			return nil, fmt.Errorf("scheduling stalled: %d ready nodes but no execution resource can admit them", len(worklist))
		}
		if len(picked) > 0 {
			sched.Rounds = append(sched.Rounds, Round{Start: cycle, Nodes: picked})
			logger.Debug("Admission round complete.", "round", len(sched.Rounds), "start_cycle", cycle, "admitted", len(picked))
		}

		cycle += s.ledger.advance()

		for _, n := range picked {
			dmap.release(n, &worklist)
		}
	}

	// Drain the remaining users so the makespan covers the slowest tail.
	for s.ledger.active() > 0 {
		cycle += s.ledger.advance()
	}
	sched.Makespan = cycle
	logger.Debug("Scheduling finished.", "rounds", len(sched.Rounds), "makespan", sched.Makespan)
	return sched, nil
}

// greedyPickNextNodes makes a single left-to-right pass over the worklist
// and admits every candidate whose resource class has a free unit. The pass
// preserves order and does not look ahead: a blocked candidate does not let
// a later one jump the queue for the same class in this round. Admitted
// nodes are removed from the worklist.
func (s *Scheduler) greedyPickNextNodes(ctx context.Context, worklist *[]*ir.Node) ([]*ir.Node, error) {
	logger := ctxlog.FromContext(ctx)

	var picked []*ir.Node
	kept := (*worklist)[:0]
	for _, n := range *worklist {
		res, err := s.model.ResourceFor(n)
		if err != nil {
			return nil, fmt.Errorf("cannot schedule %q node: %w", n.Kind(), err)
		}
		if !s.ledger.available(res) {
			kept = append(kept, n)
			continue
		}
		cycles, err := s.model.OperatorCost(n, costmodel.CycleCount)
		if err != nil {
			return nil, fmt.Errorf("cannot schedule %q node: %w", n.Kind(), err)
		}
		s.ledger.admit(res, n, cycles)
		picked = append(picked, n)
		logger.Debug("Admitted node.", "kind", n.Kind(), "name", n.Name(), "resource", res.Name, "cycles", cycles)
	}
	*worklist = kept
	return picked, nil
}
