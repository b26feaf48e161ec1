// Package compiler turns operation tokens into a frozen pipeline.
//
// A Context resolves names against the operation catalog and the capability
// allowlist. A Code accumulates capabilities and stages for one pipeline;
// every mutating call either applies completely or leaves the Code exactly
// as it was. The Compiler drives a token list through a fresh Code and stops
// at the first token that cannot be applied.
//
//	code, err := compiler.Compile([]string{"to_int", "sum"})
//	if err != nil {
//		return err // nothing has been read yet
//	}
//	pipeline, err := code.Build()
package compiler
