package operations

import (
	"math"
	"testing"

	"github.com/arthur-debert/spline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOperations(t *testing.T) {
	tests := []struct {
		name  string
		fn    types.MapFunc
		input types.Value
		want  types.Value
	}{
		{"to_int decimal", toInt, types.StringValue("42"), types.IntValue(42)},
		{"to_int surrounding space", toInt, types.StringValue("  -7 "), types.IntValue(-7)},
		{"to_int explicit sign", toInt, types.StringValue("+3"), types.IntValue(3)},
		{"to_int int passthrough", toInt, types.IntValue(9), types.IntValue(9)},
		{"to_int truncates float", toInt, types.FloatValue(-2.7), types.IntValue(-2)},
		{"to_float", toFloat, types.StringValue("2.5"), types.FloatValue(2.5)},
		{"to_float widens int", toFloat, types.IntValue(2), types.FloatValue(2)},
		{"strip", strip, types.StringValue("\t a b  "), types.StringValue("a b")},
		{"upper", upper, types.StringValue("abc"), types.StringValue("ABC")},
		{"lower", lower, types.StringValue("AbC"), types.StringValue("abc")},
		{"len counts runes", length, types.StringValue("héllo"), types.IntValue(5)},
		{"len of number", length, types.IntValue(1234), types.IntValue(4)},
		{"digits", digits, types.StringValue("a1-b2 c3"), types.StringValue("123")},
		{"digits none", digits, types.StringValue("abc"), types.StringValue("")},
		{"capwords", capwords, types.StringValue("  hello   WORLD "), types.StringValue("Hello World")},
		{"upper keeps invalid bytes", upper, types.StringValue("a\xffb"), types.StringValue("A\xffB")},
		{"upper multibyte", upper, types.StringValue("héllo"), types.StringValue("HÉLLO")},
		{"lower keeps invalid bytes", lower, types.StringValue("\xfeAB\xff"), types.StringValue("\xfeab\xff")},
		{"capwords keeps invalid bytes", capwords, types.StringValue("\xffOO BAR\xfe"), types.StringValue("\xffoo Bar\xfe")},
		{"abs int", abs, types.IntValue(-5), types.IntValue(5)},
		{"abs float", abs, types.FloatValue(-1.5), types.FloatValue(1.5)},
		{"sqrt", sqrt, types.IntValue(9), types.FloatValue(3)},
		{"floor", floor, types.FloatValue(2.7), types.IntValue(2)},
		{"floor negative", floor, types.FloatValue(-2.1), types.IntValue(-3)},
		{"ceil", ceil, types.FloatValue(2.1), types.IntValue(3)},
		{"ceil int passthrough", ceil, types.IntValue(4), types.IntValue(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapOperationFailures(t *testing.T) {
	tests := []struct {
		name  string
		fn    types.MapFunc
		input types.Value
		want  error
	}{
		{"to_int letters", toInt, types.StringValue("abc"), errNotInteger},
		{"to_int decimal point", toInt, types.StringValue("1.5"), errNotInteger},
		{"to_int empty", toInt, types.StringValue(""), errNotInteger},
		{"to_int too large", toInt, types.StringValue("99999999999999999999"), errOutOfRange},
		{"to_int infinite float", toInt, types.FloatValue(math.Inf(1)), errOutOfRange},
		{"to_float letters", toFloat, types.StringValue("x1"), errNotFloat},
		{"abs string", abs, types.StringValue("-1"), errNotNumber},
		{"abs min int", abs, types.IntValue(math.MinInt64), errOverflow},
		{"sqrt negative", sqrt, types.IntValue(-1), errDomain},
		{"sqrt string", sqrt, types.StringValue("4"), errNotNumber},
		{"floor string", floor, types.StringValue("4"), errNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
