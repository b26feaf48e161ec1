package compiler

import (
	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/registry"
	"github.com/arthur-debert/spline/pkg/types"
)

// Context answers "is this a legal operation" and "is this a legal
// capability". It holds no state besides the two registries and may back
// any number of Code values.
type Context struct {
	operations   registry.Registry[types.OperationSpec]
	capabilities registry.Registry[types.Capability]
}

// NewContext creates a Context over the given catalog and allowlist
func NewContext(operations registry.Registry[types.OperationSpec], capabilities registry.Registry[types.Capability]) *Context {
	return &Context{
		operations:   operations,
		capabilities: capabilities,
	}
}

// Resolve returns the spec registered under name, or ErrUnsupported
func (c *Context) Resolve(name string) (types.OperationSpec, error) {
	spec, err := c.operations.Get(name)
	if err != nil {
		return types.OperationSpec{}, errors.Newf(errors.ErrUnsupported, "unsupported operation: %s", name).
			WithDetail("operation", name)
	}
	return spec, nil
}

// ResolveCapability returns the allowlisted capability id, or ErrUnsupported
func (c *Context) ResolveCapability(id string) (types.Capability, error) {
	capability, err := c.capabilities.Get(id)
	if err != nil {
		return types.Capability{}, errors.Newf(errors.ErrUnsupported, "unsupported capability: %s", id).
			WithDetail("capability", id)
	}
	return capability, nil
}

// Operations lists every operation name the context can resolve
func (c *Context) Operations() []string {
	return c.operations.List()
}
