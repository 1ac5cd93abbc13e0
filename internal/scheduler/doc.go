// Package scheduler implements the resource-constrained list scheduler: the
// pass that simulates executing a model graph on an accelerator target with
// a finite number of functional units per resource class.
//
// The algorithm is a classic greedy list schedule driven by a discrete-event
// resource simulation. Boundary Load/Store nodes are inserted once so the
// graph's external inputs and outputs take part in dependency tracking, a
// degree map seeds the ready worklist, and each round admits as many ready
// nodes as resource capacity allows before advancing simulated time to the
// next release event. The result is an admission-ordered Schedule with per
// round start cycles and the total makespan.
package scheduler
