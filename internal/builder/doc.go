// Package builder turns loaded configuration into the structures the passes
// operate on: model definitions become ir modules, target definitions become
// target backends with populated cost tables.
package builder
