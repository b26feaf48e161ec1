package types

import (
	"github.com/arthur-debert/spline/pkg/errors"
)

// MapFunc transforms one element. A returned error aborts the run and is
// reported against the input line the element came from.
type MapFunc func(Value) (Value, error)

// ReduceFunc consumes a whole stream and returns one value. It must stop at
// the first error the stream yields and return it unchanged.
type ReduceFunc func(Stream) (Value, error)

// OperationSpec describes one entry of the operation catalog
type OperationSpec struct {
	// Name is the command-line token that selects the operation
	Name string

	Kind Kind

	// Capabilities lists the capability ids the operation needs. They are
	// imported automatically when the operation is applied.
	Capabilities []string

	Description string

	// Exactly one of Map or Reduce is set, matching Kind
	Map    MapFunc
	Reduce ReduceFunc
}

// Validate checks that the behavior matches the kind
func (s OperationSpec) Validate() error {
	if s.Name == "" {
		return errors.New(errors.ErrInvalidInput, "operation name cannot be empty")
	}

	switch s.Kind {
	case KindMap:
		if s.Map == nil || s.Reduce != nil {
			return errors.Newf(errors.ErrInvalidInput, "map operation %s must define only a map function", s.Name)
		}
	case KindReduce:
		if s.Reduce == nil || s.Map != nil {
			return errors.Newf(errors.ErrInvalidInput, "reduce operation %s must define only a reduce function", s.Name)
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "operation %s has unknown kind %d", s.Name, s.Kind)
	}

	for _, id := range s.Capabilities {
		if id == "" {
			return errors.Newf(errors.ErrInvalidInput, "operation %s requires an empty capability id", s.Name)
		}
	}
	return nil
}

// Capability is an auxiliary facility an operation may depend on, such as
// pattern matching
type Capability struct {
	ID          string
	Description string
}
