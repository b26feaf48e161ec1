// Package types defines the data model shared by the compiler and the
// executor: operation specs, stage kinds, the values flowing through a
// pipeline, and the frozen Pipeline description that Code.Build produces.
//
// The executor depends only on this package, never on the compiler or the
// registries, so anything it needs to run a pipeline lives here.
package types
