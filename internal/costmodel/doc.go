// Package costmodel defines the per-target cost oracle the scheduler
// consults: which execution resource class an operator occupies and how many
// cycles it holds a unit of it. The Table implementation is driven by a
// target description; other backends can provide their own Model.
package costmodel
