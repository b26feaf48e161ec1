// pkg/compiler/code_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: operations (test catalogs)
// PURPOSE: Test capability tracking, stage ordering and failure atomicity of Code

package compiler

import (
	"bytes"
	"io"
	"testing"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/logging"
	"github.com/arthur-debert/spline/pkg/operations"
	"github.com/arthur-debert/spline/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(v types.Value) (types.Value, error) { return v, nil }

func drain(s types.Stream) (types.Value, error) {
	for _, err := range s {
		if err != nil {
			return types.Value{}, err
		}
	}
	return types.StringValue("done"), nil
}

// testContext is a small catalog isolated from the built-in one. "grep"
// and "both" need allowlisted capabilities; "ghost" needs one that is not.
func testContext() *Context {
	ops := operations.MustCatalog(
		types.OperationSpec{Name: "plain", Kind: types.KindMap, Map: passthrough},
		types.OperationSpec{Name: "grep", Kind: types.KindMap, Map: passthrough, Capabilities: []string{"re"}},
		types.OperationSpec{Name: "both", Kind: types.KindMap, Map: passthrough, Capabilities: []string{"re", "math"}},
		types.OperationSpec{Name: "ghost", Kind: types.KindMap, Map: passthrough, Capabilities: []string{"re", "missing"}},
		types.OperationSpec{Name: "total", Kind: types.KindReduce, Reduce: drain},
	)
	caps := operations.MustCapabilities(
		types.Capability{ID: "re"},
		types.Capability{ID: "math"},
	)
	return NewContext(ops, caps)
}

func TestImports(t *testing.T) {
	code := NewCode(testContext()).Imports("re")

	require.NoError(t, code.Err())
	assert.Equal(t, []string{"re"}, code.Capabilities())
}

func TestImportsIsIdempotent(t *testing.T) {
	code := NewCode(testContext()).Imports("re")
	before := len(code.Capabilities())

	code.Imports("re").Imports("re")

	require.NoError(t, code.Err())
	assert.Equal(t, before, len(code.Capabilities()))
}

func TestImportsChains(t *testing.T) {
	code := NewCode(testContext())
	assert.Same(t, code, code.Imports("re"))
	assert.Same(t, code, code.Apply("plain"))
}

func TestImportsMissingCapability(t *testing.T) {
	code := NewCode(testContext()).Imports("math")
	before := code.Capabilities()

	code.Imports("missing")

	// Checked after the failing call returned, not inside it
	err := code.Err()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["capability"])
	assert.Equal(t, before, code.Capabilities())
}

func TestImportsMissingCapabilityOnEmptyCode(t *testing.T) {
	code := NewCode(testContext()).Imports("missing")

	assert.True(t, errors.IsErrorCode(code.Err(), errors.ErrUnsupported))
	assert.Empty(t, code.Capabilities())
}

func TestApplyDerivesImports(t *testing.T) {
	code := NewCode(testContext()).Apply("grep")

	require.NoError(t, code.Err())
	assert.Equal(t, []string{"re"}, code.Capabilities())

	code.Apply("both")
	require.NoError(t, code.Err())
	assert.Equal(t, []string{"math", "re"}, code.Capabilities())
	assert.Equal(t, 2, code.Len())
}

func TestApplyLogsStagesAndImports(t *testing.T) {
	var buf bytes.Buffer
	logging.Setup(logging.Options{Verbosity: 3, Console: &buf})
	defer logging.Setup(logging.Options{Console: io.Discard})

	code := NewCode(testContext()).Apply("grep").Apply("total")
	require.NoError(t, code.Err())

	output := buf.String()
	assert.Contains(t, output, "Capability imported")
	assert.Contains(t, output, "Stage applied")
	assert.Contains(t, output, "total")
}

func TestApplyBindsArgs(t *testing.T) {
	args := []string{"x"}
	code := NewCode(testContext()).Apply("plain", args...)
	args[0] = "changed"

	require.NoError(t, code.Err())
	assert.Equal(t, []string{"x"}, code.Stages()[0].Args)
}

func TestApplyUnknownOperation(t *testing.T) {
	code := NewCode(testContext()).Apply("plain")

	code.Apply("nope")

	err := code.Err()
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Contains(t, err.Error(), "nope")
	assert.Equal(t, 1, code.Len())
}

func TestApplyWithUnavailableCapabilityIsAtomic(t *testing.T) {
	code := NewCode(testContext()).Apply("plain")

	// "ghost" needs "re" (allowed) and "missing" (not allowed). Neither the
	// stage nor the allowed capability may be left behind.
	code.Apply("ghost")

	err := code.Err()
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["capability"])
	assert.Empty(t, code.Capabilities())
	assert.Equal(t, 1, code.Len())
}

func TestApplyAfterReduce(t *testing.T) {
	code := NewCode(testContext()).Apply("plain").Apply("total")
	require.NoError(t, code.Err())
	before := code.Stages()

	code.Apply("grep")

	err := code.Err()
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported), "got %v", err)
	assert.Equal(t, "grep", errors.GetErrorDetails(err)["operation"])
	assert.Len(t, code.Stages(), len(before))
	assert.Empty(t, code.Capabilities(), "rejected stage must not import its capabilities")
}

func TestApplyTwoReductions(t *testing.T) {
	code := NewCode(testContext()).Apply("total").Apply("total")

	assert.True(t, errors.IsErrorCode(code.Err(), errors.ErrUnsupported))
	assert.Equal(t, 1, code.Len())
}

func TestErrorsAreSticky(t *testing.T) {
	code := NewCode(testContext()).Apply("nope").Apply("plain").Imports("re")

	assert.Contains(t, code.Err().Error(), "nope", "the first error is kept")
	assert.Equal(t, 0, code.Len())
	assert.Empty(t, code.Capabilities())
}

func TestBuild(t *testing.T) {
	t.Run("frozen pipeline", func(t *testing.T) {
		code := NewCode(testContext()).Apply("grep").Apply("total")

		pipeline, err := code.Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"grep", "total"}, pipeline.Names())
		assert.Equal(t, []string{"re"}, pipeline.Capabilities())

		// Later changes to the Code do not reach the built pipeline
		code.Imports("math")
		assert.Equal(t, []string{"re"}, pipeline.Capabilities())
	})

	t.Run("empty pipeline is identity", func(t *testing.T) {
		pipeline, err := NewCode(testContext()).Build()
		require.NoError(t, err)
		assert.True(t, pipeline.Empty())
	})

	t.Run("failed code cannot be built", func(t *testing.T) {
		pipeline, err := NewCode(testContext()).Apply("nope").Build()
		assert.Nil(t, pipeline)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported))
	})
}
