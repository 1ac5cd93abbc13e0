// Package ir holds the tensor-level intermediate representation the compiler
// passes operate on. Nodes and values live in arenas owned by their Graph and
// are addressed by stable IDs, so a reference to a removed entity is
// detectable instead of dangling. Graph order is an explicit node sequence;
// it is the default tie-break order for every pass that needs one.
package ir
