package compiler

import (
	"testing"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	code, err := Compile([]string{"to_int", "sum"})
	require.NoError(t, err)

	pipeline, err := code.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"to_int", "sum"}, pipeline.Names())
	assert.Empty(t, pipeline.Capabilities())
}

func TestCompileDerivesCapabilities(t *testing.T) {
	code, err := Compile([]string{"digits", "to_int", "sqrt", "mean"})
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "re", "statistics"}, code.Capabilities())
}

func TestCompileStopsAtUnknownToken(t *testing.T) {
	code, err := Compile([]string{"to_int", "frobnicate", "sum"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Contains(t, err.Error(), "frobnicate")
	assert.Equal(t, 1, code.Len(), "tokens after the failing one are never attempted")

	_, err = code.Build()
	assert.Error(t, err, "a failed compilation cannot be built")
}

func TestCompileReduceMustBeLast(t *testing.T) {
	_, err := Compile([]string{"sum", "to_int"})

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestCompileEmpty(t *testing.T) {
	code, err := Compile(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code.Len())
}

func TestCompileWithDisabledCapability(t *testing.T) {
	c := New(WithDisabled(operations.CapPattern))

	_, err := c.Compile([]string{"digits"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Equal(t, "re", errors.GetErrorDetails(err)["capability"])

	_, err = c.Compile([]string{"to_int", "sqrt", "sum"})
	assert.NoError(t, err, "other capabilities stay available")
}

func TestCompileWithCustomRegistries(t *testing.T) {
	ctx := testContext()
	c := New(WithCatalog(ctx.operations), WithCapabilities(ctx.capabilities))

	code, err := c.Compile([]string{"grep", "total"})
	require.NoError(t, err)
	assert.Equal(t, []string{"re"}, code.Capabilities())

	_, err = c.Compile([]string{"to_int"})
	assert.Error(t, err, "built-in operations are not visible through a custom catalog")
}

func TestCompileUsesFreshState(t *testing.T) {
	c := New()

	first, err := c.Compile([]string{"digits"})
	require.NoError(t, err)
	second, err := c.Compile([]string{"to_int"})
	require.NoError(t, err)

	assert.Equal(t, []string{"re"}, first.Capabilities())
	assert.Empty(t, second.Capabilities())
}

func TestCompilerRegistries(t *testing.T) {
	c := New(WithDisabled(operations.CapMath))

	assert.Equal(t, operations.Default().Count(), c.Operations().Count())
	assert.False(t, c.Capabilities().Has(operations.CapMath))
	assert.True(t, c.Capabilities().Has(operations.CapPattern))
}
