// Package testutil provides input helpers shared by spline's tests: line
// streams shaped like `seq N`, and readers that record or break reads.
package testutil
