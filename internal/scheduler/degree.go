package scheduler

import (
	"context"
	"fmt"

	"github.com/vk/tensorsched/internal/ctxlog"
	"github.com/vk/tensorsched/internal/ir"
)

// degreeMap tracks, for each schedulable node, the count of its input
// dependencies not yet satisfied by an admitted producer.
type degreeMap map[*ir.Node]int

// buildDegreeMap computes the initial unsatisfied-dependency count for every
// node except the undefined tombstone kind. An input value with no producing
// node is excluded from the count with a warning: partially specified IR is
// tolerated, not fatal.
func buildDegreeMap(ctx context.Context, g *ir.Graph) degreeMap {
	logger := ctxlog.FromContext(ctx)
	dmap := make(degreeMap)
	for _, n := range g.Nodes() {
		if n.Kind() == ir.KindUndefined {
			continue
		}
		deg := len(n.Inputs())
		for _, v := range n.Inputs() {
			if v.Producer() == nil {
				logger.Warn("Operator consumes a value that is not bound to a producing node.",
					"kind", n.Kind(), "value", v.Name())
				deg--
			}
		}
		dmap[n] = deg
	}
	return dmap
}

// release accounts for n having been admitted: each consumer of each of n's
// outputs loses one degree, and consumers reaching zero are appended to the
// worklist. The terminal return node never enters the worklist. A consumer
// missing from the map means the map and the graph have diverged, which is a
// programming error, not an input error.
func (d degreeMap) release(n *ir.Node, worklist *[]*ir.Node) {
	for _, v := range n.Outputs() {
		for _, u := range v.Uses() {
			if u.Kind() == ir.KindReturn {
				continue
			}
			deg, ok := d[u]
			if !ok {
				panic(fmt.Sprintf("scheduler: consumer %q of value %q is missing from the degree map", u.Kind(), v.Name()))
			}
			deg--
			d[u] = deg
			if deg == 0 {
				*worklist = append(*worklist, u)
			}
		}
	}
}
