package compiler

import (
	"github.com/arthur-debert/spline/pkg/logging"
	"github.com/arthur-debert/spline/pkg/operations"
	"github.com/arthur-debert/spline/pkg/registry"
	"github.com/arthur-debert/spline/pkg/types"
)

// Compiler compiles token lists against one catalog and allowlist
type Compiler struct {
	operations   registry.Registry[types.OperationSpec]
	capabilities registry.Registry[types.Capability]
}

// Option configures a Compiler
type Option func(*Compiler)

// WithCatalog replaces the built-in operation catalog
func WithCatalog(operations registry.Registry[types.OperationSpec]) Option {
	return func(c *Compiler) {
		c.operations = operations
	}
}

// WithCapabilities replaces the built-in capability allowlist
func WithCapabilities(capabilities registry.Registry[types.Capability]) Option {
	return func(c *Compiler) {
		c.capabilities = capabilities
	}
}

// WithDisabled removes capability ids from the allowlist. Operations that
// need a disabled capability become unsupported.
func WithDisabled(ids ...string) Option {
	return func(c *Compiler) {
		if len(ids) > 0 {
			c.capabilities = registry.Without(c.capabilities, ids...)
		}
	}
}

// New creates a Compiler over the built-in catalog, adjusted by opts in order
func New(opts ...Option) *Compiler {
	c := &Compiler{
		operations:   operations.Default(),
		capabilities: operations.Capabilities(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Context returns a fresh Context over the compiler's registries
func (c *Compiler) Context() *Context {
	return NewContext(c.operations, c.capabilities)
}

// Operations returns the catalog the compiler resolves tokens against
func (c *Compiler) Operations() registry.Registry[types.OperationSpec] {
	return c.operations
}

// Capabilities returns the allowlist in effect
func (c *Compiler) Capabilities() registry.Registry[types.Capability] {
	return c.capabilities
}

// Compile applies each token, in order, to a fresh Code. It stops at the
// first token that cannot be applied and returns that error; the returned
// Code must then not be built or run.
func (c *Compiler) Compile(tokens []string) (*Code, error) {
	logger := logging.GetLogger("compiler")
	done := logging.LogOperationStart(logger, "compile")
	defer done()

	code := NewCode(c.Context())
	for i, token := range tokens {
		if err := code.Apply(token).Err(); err != nil {
			logger.Debug().
				Err(err).
				Str("token", token).
				Int("position", i).
				Msg("Compilation stopped")
			return code, err
		}
	}

	logger.Debug().
		Strs("tokens", tokens).
		Strs("capabilities", code.Capabilities()).
		Msg("Pipeline compiled")
	return code, nil
}

// Compile compiles tokens against the built-in catalog
func Compile(tokens []string) (*Code, error) {
	return New().Compile(tokens)
}
