package render

import (
	"github.com/arthur-debert/spline/pkg/registry"
	"github.com/arthur-debert/spline/pkg/types"
)

// StageView describes one pipeline stage
type StageView struct {
	Position     int      `json:"position" yaml:"position" toml:"position"`
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Kind         string   `json:"kind" yaml:"kind" toml:"kind"`
	Args         []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Capabilities []string `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
}

// PipelineView describes a compiled pipeline
type PipelineView struct {
	Stages       []StageView `json:"stages" yaml:"stages" toml:"stages"`
	Capabilities []string    `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
}

// OperationView describes one catalog entry
type OperationView struct {
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Kind         string   `json:"kind" yaml:"kind" toml:"kind"`
	Capabilities []string `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Description  string   `json:"description" yaml:"description" toml:"description"`
	Available    bool     `json:"available" yaml:"available" toml:"available"`
}

// CapabilityView describes one allowlisted capability
type CapabilityView struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// CatalogView describes every operation and the capability allowlist
type CatalogView struct {
	Operations   []OperationView  `json:"operations" yaml:"operations" toml:"operations"`
	Capabilities []CapabilityView `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
}

// NewPipelineView builds the view of p
func NewPipelineView(p *types.Pipeline) PipelineView {
	stages := p.Stages()
	view := PipelineView{
		Stages:       make([]StageView, 0, len(stages)),
		Capabilities: nonNil(p.Capabilities()),
	}
	for i, stage := range stages {
		view.Stages = append(view.Stages, StageView{
			Position:     i + 1,
			Name:         stage.Name(),
			Kind:         stage.Spec.Kind.String(),
			Args:         stage.Args,
			Capabilities: nonNil(append([]string(nil), stage.Spec.Capabilities...)),
		})
	}
	return view
}

// NewCatalogView builds the view of ops and caps. An operation is available
// when every capability it needs is in caps.
func NewCatalogView(ops registry.Registry[types.OperationSpec], caps registry.Registry[types.Capability]) CatalogView {
	view := CatalogView{
		Operations:   make([]OperationView, 0, ops.Count()),
		Capabilities: make([]CapabilityView, 0, caps.Count()),
	}

	for _, name := range ops.List() {
		spec, err := ops.Get(name)
		if err != nil {
			continue
		}
		available := true
		for _, id := range spec.Capabilities {
			if !caps.Has(id) {
				available = false
				break
			}
		}
		view.Operations = append(view.Operations, OperationView{
			Name:         spec.Name,
			Kind:         spec.Kind.String(),
			Capabilities: nonNil(append([]string(nil), spec.Capabilities...)),
			Description:  spec.Description,
			Available:    available,
		})
	}

	for _, id := range caps.List() {
		capability, err := caps.Get(id)
		if err != nil {
			continue
		}
		view.Capabilities = append(view.Capabilities, CapabilityView{
			ID:          capability.ID,
			Description: capability.Description,
		})
	}
	return view
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
