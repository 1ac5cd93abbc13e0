package costmodel

import "github.com/vk/tensorsched/internal/ir"

// Metric selects which cost dimension OperatorCost reports.
type Metric int

const (
	// CycleCount is the number of cycles an operator occupies its resource.
	CycleCount Metric = iota
)

// Resource identifies a class of accelerator functional unit. Identity is
// pointer identity: a Model must return the same *Resource for every
// operator of the same class. Units is the number of operators of this class
// that may execute concurrently; zero is valid and means the class can never
// admit work.
type Resource struct {
	Name  string
	Units int
}

// Model is the cost oracle consumed by the scheduler.
type Model interface {
	// OperatorCost returns the cost of n under the given metric.
	OperatorCost(n *ir.Node, m Metric) (int, error)

	// ResourceFor returns the execution resource class n occupies.
	ResourceFor(n *ir.Node) (*Resource, error)
}
