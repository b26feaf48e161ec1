package operations

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/spline/pkg/types"
)

var (
	errNotInteger = errors.New("not a valid integer")
	errNotFloat   = errors.New("not a valid number")
	errNotNumber  = errors.New("not a number")
	errOutOfRange = errors.New("value out of range")
	errOverflow   = errors.New("integer overflow")
	errDomain     = errors.New("math domain error")
)

func toInt(v types.Value) (types.Value, error) {
	switch v.Kind() {
	case types.ValueInt:
		return v, nil
	case types.ValueFloat:
		f, _ := v.Float()
		return truncate(f)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(v.String()), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return types.Value{}, errOutOfRange
		}
		return types.Value{}, errNotInteger
	}
	return types.IntValue(n), nil
}

func toFloat(v types.Value) (types.Value, error) {
	if f, ok := v.Float(); ok {
		return types.FloatValue(f), nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return types.Value{}, errOutOfRange
		}
		return types.Value{}, errNotFloat
	}
	return types.FloatValue(f), nil
}

// truncate converts f to an int, rounding toward zero
func truncate(f float64) (types.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return types.Value{}, errOutOfRange
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return types.Value{}, errOutOfRange
	}
	return types.IntValue(int64(t)), nil
}
