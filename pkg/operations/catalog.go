package operations

import (
	"fmt"

	"github.com/arthur-debert/spline/pkg/registry"
	"github.com/arthur-debert/spline/pkg/types"
)

// Operation tokens
const (
	OpToInt    = "to_int"
	OpToFloat  = "to_float"
	OpStrip    = "strip"
	OpUpper    = "upper"
	OpLower    = "lower"
	OpLen      = "len"
	OpDigits   = "digits"
	OpCapwords = "capwords"
	OpAbs      = "abs"
	OpSqrt     = "sqrt"
	OpFloor    = "floor"
	OpCeil     = "ceil"

	OpSum    = "sum"
	OpCount  = "count"
	OpMin    = "min"
	OpMax    = "max"
	OpMean   = "mean"
	OpMedian = "median"
)

var (
	defaultCatalog      registry.Registry[types.OperationSpec]
	defaultCapabilities registry.Registry[types.Capability]
)

func init() {
	defaultCapabilities = MustCapabilities(builtinCapabilities()...)
	defaultCatalog = MustCatalog(builtinOperations()...)
}

// Default returns the built-in operation catalog
func Default() registry.Registry[types.OperationSpec] {
	return defaultCatalog
}

// Capabilities returns the built-in capability allowlist
func Capabilities() registry.Registry[types.Capability] {
	return defaultCapabilities
}

// NewCatalog validates specs and builds a catalog from them
func NewCatalog(specs ...types.OperationSpec) (registry.Registry[types.OperationSpec], error) {
	b := registry.NewBuilder[types.OperationSpec]()
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if err := b.Register(spec.Name, spec); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// MustCatalog is NewCatalog for package initialisation and tests
func MustCatalog(specs ...types.OperationSpec) registry.Registry[types.OperationSpec] {
	reg, err := NewCatalog(specs...)
	if err != nil {
		panic(fmt.Sprintf("invalid operation catalog: %v", err))
	}
	return reg
}

func mapOp(name, description string, fn types.MapFunc, caps ...string) types.OperationSpec {
	return types.OperationSpec{
		Name:         name,
		Kind:         types.KindMap,
		Capabilities: caps,
		Description:  description,
		Map:          fn,
	}
}

func reduceOp(name, description string, fn types.ReduceFunc, caps ...string) types.OperationSpec {
	return types.OperationSpec{
		Name:         name,
		Kind:         types.KindReduce,
		Capabilities: caps,
		Description:  description,
		Reduce:       fn,
	}
}

func builtinOperations() []types.OperationSpec {
	return []types.OperationSpec{
		mapOp(OpToInt, "parse each line as a base-10 integer", toInt),
		mapOp(OpToFloat, "parse each line as a floating point number", toFloat),
		mapOp(OpStrip, "remove surrounding whitespace", strip),
		mapOp(OpUpper, "convert text to upper case", upper),
		mapOp(OpLower, "convert text to lower case", lower),
		mapOp(OpLen, "replace each value by its length in characters", length),
		mapOp(OpDigits, "keep only the digits of each value", digits, CapPattern),
		mapOp(OpCapwords, "capitalise every word", capwords, CapString),
		mapOp(OpAbs, "absolute value of a number", abs),
		mapOp(OpSqrt, "square root of a number", sqrt, CapMath),
		mapOp(OpFloor, "round a number down to an integer", floor, CapMath),
		mapOp(OpCeil, "round a number up to an integer", ceil, CapMath),

		reduceOp(OpSum, "add up every number", sum),
		reduceOp(OpCount, "count the values", count),
		reduceOp(OpMin, "smallest number", minimum),
		reduceOp(OpMax, "largest number", maximum),
		reduceOp(OpMean, "arithmetic mean of the numbers", mean, CapStatistics),
		reduceOp(OpMedian, "median of the numbers", median, CapStatistics),
	}
}
