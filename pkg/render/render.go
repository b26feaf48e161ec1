package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/spline/pkg/registry"
	"github.com/arthur-debert/spline/pkg/style"
	"github.com/arthur-debert/spline/pkg/types"
)

// Renderer writes views in a fixed format
type Renderer struct {
	format Format
	styled bool
}

// New returns a renderer for format. When styled is true, text output uses
// terminal styles.
func New(format Format, styled bool) *Renderer {
	return &Renderer{format: format, styled: styled}
}

// Pipeline writes p using format without styles
func Pipeline(w io.Writer, format Format, p *types.Pipeline) error {
	return New(format, false).Pipeline(w, p)
}

// Catalog writes ops and caps using format without styles
func Catalog(w io.Writer, format Format, ops registry.Registry[types.OperationSpec], caps registry.Registry[types.Capability]) error {
	return New(format, false).Catalog(w, ops, caps)
}

// Pipeline writes the stages and capabilities of p
func (r *Renderer) Pipeline(w io.Writer, p *types.Pipeline) error {
	view := NewPipelineView(p)
	if r.format != FormatText {
		return Encode(w, r.format, view)
	}

	var b strings.Builder
	b.WriteString(r.style("Heading", "Pipeline") + "\n")
	if len(view.Stages) == 0 {
		b.WriteString("  " + r.style("Muted", "(empty: input lines are echoed)") + "\n")
	}

	names := make([]string, len(view.Stages))
	for i, stage := range view.Stages {
		names[i] = stage.Name
	}
	width := maxWidth(names)

	for _, stage := range view.Stages {
		line := fmt.Sprintf("  %d  %s  %s", stage.Position,
			r.style("Token", padRight(stage.Name, width)),
			padRight(stage.Kind, len("reduce")))
		if len(stage.Capabilities) > 0 {
			line += "  " + r.style("Capability", strings.Join(stage.Capabilities, ", "))
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	b.WriteString(r.style("Heading", "Capabilities") + "\n")
	if len(view.Capabilities) == 0 {
		b.WriteString("  " + r.style("Muted", "(none)") + "\n")
	}
	for _, id := range view.Capabilities {
		b.WriteString("  " + r.style("Capability", id) + "\n")
	}
	return writeString(w, b.String())
}

// Catalog writes every operation and the capability allowlist
func (r *Renderer) Catalog(w io.Writer, ops registry.Registry[types.OperationSpec], caps registry.Registry[types.Capability]) error {
	view := NewCatalogView(ops, caps)
	if r.format != FormatText {
		return Encode(w, r.format, view)
	}

	names := make([]string, len(view.Operations))
	for i, op := range view.Operations {
		names[i] = op.Name
	}
	width := maxWidth(names)

	var b strings.Builder
	b.WriteString(r.style("Heading", "Operations") + "\n")
	for _, op := range view.Operations {
		line := fmt.Sprintf("  %s  %s  %s", r.style("Token", padRight(op.Name, width)),
			padRight(op.Kind, len("reduce")), op.Description)
		if len(op.Capabilities) > 0 {
			line += " " + r.style("Capability", "["+strings.Join(op.Capabilities, ", ")+"]")
		}
		if !op.Available {
			line += " " + r.style("Muted", "(disabled)")
		}
		b.WriteString(line + "\n")
	}

	ids := make([]string, len(view.Capabilities))
	for i, c := range view.Capabilities {
		ids[i] = c.ID
	}
	idWidth := maxWidth(ids)

	b.WriteString(r.style("Heading", "Capabilities") + "\n")
	if len(view.Capabilities) == 0 {
		b.WriteString("  " + r.style("Muted", "(none)") + "\n")
	}
	for _, c := range view.Capabilities {
		b.WriteString("  " + r.style("Capability", padRight(c.ID, idWidth)) + "  " + c.Description + "\n")
	}
	return writeString(w, b.String())
}

// Value writes an arbitrary value, e.g. the effective configuration. Text
// falls back to YAML.
func (r *Renderer) Value(w io.Writer, v interface{}) error {
	if r.format == FormatText {
		return Encode(w, FormatYAML, v)
	}
	return Encode(w, r.format, v)
}

func (r *Renderer) style(name, text string) string {
	return style.Render(r.styled, name, text)
}
