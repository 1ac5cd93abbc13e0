// Package hcl implements the HCL loader for target and model definition
// files. Any .hcl file may carry any mix of top-level `target` and `model`
// blocks; the loader merges everything it finds into one config.Model.
package hcl
