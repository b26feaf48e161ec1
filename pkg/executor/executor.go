package executor

import (
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/logging"
	"github.com/arthur-debert/spline/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Executor runs pipelines
type Executor struct {
	logger zerolog.Logger
}

// Result is the outcome of a successful run
type Result struct {
	// Value is the computed output, without trailing newline
	Value string

	// Lines is the number of input lines consumed
	Lines int
}

// WriteTo writes the value followed by a single newline
func (r Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Value+"\n")
	if err != nil {
		return int64(n), errors.Wrap(err, errors.ErrOutputWrite, "failed to write result")
	}
	return int64(n), nil
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Executor{
		logger: logger,
	}
}

// Run executes pipeline over the lines of input
func Run(pipeline *types.Pipeline, input io.Reader) (Result, error) {
	return New(Options{}).Run(pipeline, input)
}

// Run executes pipeline over the lines of input. On error the returned
// Result is empty.
func (e *Executor) Run(pipeline *types.Pipeline, input io.Reader) (Result, error) {
	start := time.Now()
	source := newLineSource(input)

	stream := source.Stream()
	for _, stage := range pipeline.Maps() {
		stream = mapStage(stage, stream)
	}

	var (
		value string
		err   error
	)
	if terminal, ok := pipeline.Terminal(); ok {
		value, err = reduce(terminal, stream)
	} else {
		value, err = join(stream)
	}

	if err != nil {
		e.logger.Debug().
			Err(err).
			Int("lines", source.Lines()).
			Msg("Pipeline failed")
		return Result{}, err
	}

	e.logger.Debug().
		Strs("stages", pipeline.Names()).
		Int("lines", source.Lines()).
		Dur("duration", time.Since(start)).
		Msg("Pipeline completed")

	return Result{Value: value, Lines: source.Lines()}, nil
}

// mapStage applies a map stage to every element of in, lazily
func mapStage(stage types.Stage, in types.Stream) types.Stream {
	return func(yield func(types.Element, error) bool) {
		for elem, err := range in {
			if err != nil {
				yield(types.Element{}, err)
				return
			}

			value, err := stage.Spec.Map(elem.Value)
			if err != nil {
				yield(types.Element{}, errors.Conversion(stage.Name(), elem.Line, elem.Raw, err))
				return
			}

			elem.Value = value
			if !yield(elem, nil) {
				return
			}
		}
	}
}

func reduce(stage types.Stage, stream types.Stream) (string, error) {
	value, err := stage.Spec.Reduce(stream)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return "", errors.Wrapf(err, errors.ErrConversion, "%s failed", stage.Name())
		}
		return "", err
	}
	return value.String(), nil
}

// join renders every value of the stream, one per line
func join(stream types.Stream) (string, error) {
	var values []string
	for elem, err := range stream {
		if err != nil {
			return "", err
		}
		values = append(values, elem.Value.String())
	}
	return strings.Join(values, "\n"), nil
}
