package compiler

import (
	"sort"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/logging"
	"github.com/arthur-debert/spline/pkg/types"
)

// Code accumulates the capabilities and stages of one pipeline.
//
// Imports and Apply return the Code itself so calls can be chained. The
// first failing call is recorded and returned by Err; every call after it is
// a no-op, so a chain stops at its first error. A failing call never changes
// the capabilities or stages established before it.
type Code struct {
	ctx          *Context
	capabilities map[string]struct{}
	stages       []types.Stage
	err          error
}

// NewCode creates an empty Code bound to ctx
func NewCode(ctx *Context) *Code {
	return &Code{
		ctx:          ctx,
		capabilities: make(map[string]struct{}),
	}
}

// Imports makes capability id available to the pipeline. Importing an id
// twice is a no-op; an id outside the allowlist fails with ErrUnsupported.
func (c *Code) Imports(id string) *Code {
	if c.err != nil {
		return c
	}
	if _, ok := c.capabilities[id]; ok {
		return c
	}
	if _, err := c.ctx.ResolveCapability(id); err != nil {
		c.err = err
		return c
	}

	c.capabilities[id] = struct{}{}
	logger := logging.GetLogger("compiler")
	logger.Trace().Str("capability", id).Msg("Capability imported")
	return c
}

// Apply appends the operation registered as name, importing every
// capability it requires. It fails with ErrUnsupported when the name is
// unknown, when a required capability is not allowed, or when the pipeline
// already ends with a reduce stage.
func (c *Code) Apply(name string, args ...string) *Code {
	if c.err != nil {
		return c
	}

	spec, err := c.ctx.Resolve(name)
	if err != nil {
		c.err = err
		return c
	}

	if last, ok := c.terminal(); ok {
		c.err = errors.Newf(errors.ErrUnsupported,
			"%s is a terminal reduction and cannot be followed by %s", last.Name(), name).
			WithDetail("operation", name)
		return c
	}

	// Validate every requirement before importing any of them so a
	// rejected capability leaves nothing behind.
	for _, id := range spec.Capabilities {
		if _, err := c.ctx.ResolveCapability(id); err != nil {
			c.err = errors.Newf(errors.ErrUnsupported, "operation %s requires unsupported capability: %s", name, id).
				WithDetail("operation", name).
				WithDetail("capability", id)
			return c
		}
	}
	for _, id := range spec.Capabilities {
		c.Imports(id)
	}

	bound := make([]string, len(args))
	copy(bound, args)
	c.stages = append(c.stages, types.Stage{Spec: spec, Args: bound})

	logger := logging.GetLogger("compiler")
	logger.Debug().
		Str("operation", name).
		Str("kind", spec.Kind.String()).
		Strs("capabilities", spec.Capabilities).
		Msg("Stage applied")
	return c
}

// Err returns the first error raised by Imports or Apply
func (c *Code) Err() error {
	return c.err
}

// Capabilities returns the imported capability ids in sorted order
func (c *Code) Capabilities() []string {
	ids := make([]string, 0, len(c.capabilities))
	for id := range c.capabilities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Stages returns a copy of the stages applied so far
func (c *Code) Stages() []types.Stage {
	stages := make([]types.Stage, len(c.stages))
	for i, stage := range c.stages {
		args := make([]string, len(stage.Args))
		copy(args, stage.Args)
		stages[i] = types.Stage{Spec: stage.Spec, Args: args}
	}
	return stages
}

// Len returns the number of stages
func (c *Code) Len() int {
	return len(c.stages)
}

// Build freezes the Code into a Pipeline. A Code that has recorded an error
// cannot be built. A Code without stages builds the identity pipeline.
func (c *Code) Build() (*types.Pipeline, error) {
	if c.err != nil {
		return nil, c.err
	}
	return types.NewPipeline(c.stages, c.Capabilities())
}

func (c *Code) terminal() (types.Stage, bool) {
	if len(c.stages) == 0 {
		return types.Stage{}, false
	}
	last := c.stages[len(c.stages)-1]
	return last, last.Spec.Kind.Terminal()
}
