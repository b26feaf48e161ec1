package operations

import (
	"math"
	"sort"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/types"
)

func sum(stream types.Stream) (types.Value, error) {
	var (
		total   int64
		ftotal  float64
		isFloat bool
	)

	for e, err := range stream {
		if err != nil {
			return types.Value{}, err
		}

		switch e.Value.Kind() {
		case types.ValueInt:
			n, _ := e.Value.Int()
			if isFloat {
				ftotal += float64(n)
				continue
			}
			if (n > 0 && total > math.MaxInt64-n) || (n < 0 && total < math.MinInt64-n) {
				return types.Value{}, errors.Conversion(OpSum, e.Line, e.Raw, errOverflow)
			}
			total += n
		case types.ValueFloat:
			if !isFloat {
				ftotal = float64(total)
				isFloat = true
			}
			f, _ := e.Value.Float()
			ftotal += f
		default:
			return types.Value{}, errors.Conversion(OpSum, e.Line, e.Raw, errNotNumber)
		}
	}

	if isFloat {
		return types.FloatValue(ftotal), nil
	}
	return types.IntValue(total), nil
}

func count(stream types.Stream) (types.Value, error) {
	var n int64
	for _, err := range stream {
		if err != nil {
			return types.Value{}, err
		}
		n++
	}
	return types.IntValue(n), nil
}

func minimum(stream types.Stream) (types.Value, error) {
	return extreme(OpMin, stream, func(candidate, best float64) bool { return candidate < best })
}

func maximum(stream types.Stream) (types.Value, error) {
	return extreme(OpMax, stream, func(candidate, best float64) bool { return candidate > best })
}

// extreme keeps the first value for which better reports true against every
// later one. The winning value keeps its original kind.
func extreme(name string, stream types.Stream, better func(candidate, best float64) bool) (types.Value, error) {
	var (
		best  types.Value
		bestF float64
		found bool
	)

	for e, err := range stream {
		if err != nil {
			return types.Value{}, err
		}
		f, ok := e.Value.Float()
		if !ok {
			return types.Value{}, errors.Conversion(name, e.Line, e.Raw, errNotNumber)
		}
		if !found || better(f, bestF) {
			best, bestF, found = e.Value, f, true
		}
	}

	if !found {
		return types.Value{}, emptyInput(name)
	}
	return best, nil
}

func mean(stream types.Stream) (types.Value, error) {
	numbers, err := collectFloats(OpMean, stream)
	if err != nil {
		return types.Value{}, err
	}

	var total float64
	for _, f := range numbers {
		total += f
	}
	return types.FloatValue(total / float64(len(numbers))), nil
}

func median(stream types.Stream) (types.Value, error) {
	numbers, err := collectFloats(OpMedian, stream)
	if err != nil {
		return types.Value{}, err
	}

	sort.Float64s(numbers)
	mid := len(numbers) / 2
	if len(numbers)%2 == 1 {
		return types.FloatValue(numbers[mid]), nil
	}
	return types.FloatValue((numbers[mid-1] + numbers[mid]) / 2), nil
}

// collectFloats drains the stream into a slice. An empty stream is an error.
func collectFloats(name string, stream types.Stream) ([]float64, error) {
	var numbers []float64
	for e, err := range stream {
		if err != nil {
			return nil, err
		}
		f, ok := e.Value.Float()
		if !ok {
			return nil, errors.Conversion(name, e.Line, e.Raw, errNotNumber)
		}
		numbers = append(numbers, f)
	}

	if len(numbers) == 0 {
		return nil, emptyInput(name)
	}
	return numbers, nil
}

func emptyInput(name string) error {
	return errors.Newf(errors.ErrConversion, "%s: empty input", name).
		WithDetail("stage", name)
}
