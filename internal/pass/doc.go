// Package pass defines the compiler pass abstraction and the pipeline that
// runs passes in order. Pipelines are plain objects assembled by the caller;
// there is no process-wide pass registry. A pass declares the analyses it
// requires by name, and running a pass before its requirements is a pipeline
// construction error.
package pass
