package operations

import (
	"math"

	"github.com/arthur-debert/spline/pkg/types"
)

func abs(v types.Value) (types.Value, error) {
	if n, ok := v.Int(); ok {
		if n == math.MinInt64 {
			return types.Value{}, errOverflow
		}
		if n < 0 {
			n = -n
		}
		return types.IntValue(n), nil
	}

	f, ok := v.Float()
	if !ok {
		return types.Value{}, errNotNumber
	}
	return types.FloatValue(math.Abs(f)), nil
}

func sqrt(v types.Value) (types.Value, error) {
	f, ok := v.Float()
	if !ok {
		return types.Value{}, errNotNumber
	}
	if f < 0 {
		return types.Value{}, errDomain
	}
	return types.FloatValue(math.Sqrt(f)), nil
}

func floor(v types.Value) (types.Value, error) {
	return round(v, math.Floor)
}

func ceil(v types.Value) (types.Value, error) {
	return round(v, math.Ceil)
}

func round(v types.Value, fn func(float64) float64) (types.Value, error) {
	if _, ok := v.Int(); ok {
		return v, nil
	}
	f, ok := v.Float()
	if !ok {
		return types.Value{}, errNotNumber
	}
	return truncate(fn(f))
}
