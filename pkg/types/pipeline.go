package types

import (
	"sort"

	"github.com/arthur-debert/spline/pkg/errors"
)

// Stage is a resolved operation bound to its arguments
type Stage struct {
	Spec OperationSpec
	Args []string
}

// Name returns the operation token of the stage
func (s Stage) Name() string {
	return s.Spec.Name
}

// Pipeline is the frozen output of compilation: the ordered stages and the
// set of capabilities they pulled in. Accessors return copies.
type Pipeline struct {
	stages       []Stage
	capabilities []string
}

// NewPipeline freezes stages and capabilities into a Pipeline. A reduce
// stage anywhere but last is rejected with ErrUnsupported.
func NewPipeline(stages []Stage, capabilities []string) (*Pipeline, error) {
	for i, stage := range stages {
		if stage.Spec.Kind.Terminal() && i != len(stages)-1 {
			return nil, errors.Newf(errors.ErrUnsupported,
				"%s is a terminal reduction and cannot be followed by %s",
				stage.Name(), stages[i+1].Name()).
				WithDetail("operation", stages[i+1].Name())
		}
	}

	p := &Pipeline{
		stages:       make([]Stage, len(stages)),
		capabilities: make([]string, len(capabilities)),
	}
	for i, stage := range stages {
		p.stages[i] = copyStage(stage)
	}
	copy(p.capabilities, capabilities)
	sort.Strings(p.capabilities)

	return p, nil
}

// Stages returns the stages in execution order
func (p *Pipeline) Stages() []Stage {
	stages := make([]Stage, len(p.stages))
	for i, stage := range p.stages {
		stages[i] = copyStage(stage)
	}
	return stages
}

func copyStage(stage Stage) Stage {
	args := make([]string, len(stage.Args))
	copy(args, stage.Args)
	return Stage{Spec: stage.Spec, Args: args}
}

// Maps returns the map stages in execution order
func (p *Pipeline) Maps() []Stage {
	var maps []Stage
	for _, stage := range p.stages {
		if stage.Spec.Kind == KindMap {
			maps = append(maps, copyStage(stage))
		}
	}
	return maps
}

// Terminal returns the reduce stage, if the pipeline has one
func (p *Pipeline) Terminal() (Stage, bool) {
	if len(p.stages) == 0 {
		return Stage{}, false
	}
	last := p.stages[len(p.stages)-1]
	return copyStage(last), last.Spec.Kind.Terminal()
}

// Capabilities returns the sorted capability ids the pipeline requires
func (p *Pipeline) Capabilities() []string {
	capabilities := make([]string, len(p.capabilities))
	copy(capabilities, p.capabilities)
	return capabilities
}

// Names returns the operation tokens of every stage, in order
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}

// Empty reports whether the pipeline has no stages. An empty pipeline passes
// its input through unchanged.
func (p *Pipeline) Empty() bool {
	return len(p.stages) == 0
}
