// Package lower implements operator selection: replacing each generic
// operator node with the target-specific compute operator that claims it.
// Lowers are registered explicitly on a Selection; there is no global
// registry. The tensor-select pass runs the selection over a module.
package lower
