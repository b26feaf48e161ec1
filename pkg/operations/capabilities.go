package operations

import (
	"github.com/arthur-debert/spline/pkg/registry"
	"github.com/arthur-debert/spline/pkg/types"
)

// Capability ids understood by spline
const (
	CapPattern    = "re"
	CapMath       = "math"
	CapString     = "string"
	CapStatistics = "statistics"
)

func builtinCapabilities() []types.Capability {
	return []types.Capability{
		{ID: CapPattern, Description: "regular-expression pattern matching"},
		{ID: CapMath, Description: "floating point math functions"},
		{ID: CapString, Description: "word-level string helpers"},
		{ID: CapStatistics, Description: "statistical reductions"},
	}
}

// NewCapabilities builds an allowlist from the given capabilities
func NewCapabilities(caps ...types.Capability) (registry.Registry[types.Capability], error) {
	b := registry.NewBuilder[types.Capability]()
	for _, c := range caps {
		if err := b.Register(c.ID, c); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// MustCapabilities is NewCapabilities for package initialisation and tests
func MustCapabilities(caps ...types.Capability) registry.Registry[types.Capability] {
	reg, err := NewCapabilities(caps...)
	if err != nil {
		panic(err)
	}
	return reg
}
