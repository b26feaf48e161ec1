// Package executor runs a compiled pipeline over a stream of input lines.
//
// Lines are read lazily and pushed through the map stages one element at a
// time. A terminal reduce stage consumes the stream exactly once; without
// one, the final values are joined by newlines. Input is read only up to
// end-of-input and never re-read. A failure anywhere abandons the run and no
// result is produced.
package executor
