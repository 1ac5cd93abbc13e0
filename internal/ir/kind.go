package ir

// Kind tags a node with the operator it represents. Operator kinds are
// free-form strings ("conv", "dla.sigmoid", ...); the values below are the
// sentinel and boundary kinds the passes treat specially.
type Kind string

const (
	// KindUndefined marks a tombstoned arena slot. Undefined nodes are
	// excluded from all scheduling bookkeeping.
	KindUndefined Kind = "undefined"

	// KindReturn is the terminal node consuming the graph's external
	// outputs. It never enters a scheduling worklist.
	KindReturn Kind = "return"

	// KindLoad and KindStore are the synthetic boundary markers inserted by
	// normalization so external inputs and outputs participate in dependency
	// tracking like any other operator.
	KindLoad  Kind = "load"
	KindStore Kind = "store"
)

// Sentinel reports whether k is one of the two kinds excluded from
// scheduling bookkeeping.
func (k Kind) Sentinel() bool {
	return k == KindUndefined || k == KindReturn
}
