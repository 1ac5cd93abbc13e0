// Package config defines the format-agnostic configuration model for the
// compiler: accelerator target definitions and model (network) definitions,
// along with the Loader interface for reading them from various sources.
//
// The config.Model is the single source of truth for the builder package.
// Concrete loader implementations, such as for HCL, live in separate
// packages.
package config
