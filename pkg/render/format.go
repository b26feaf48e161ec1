package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/spline/pkg/errors"
)

// Format selects how a view is written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat converts a user supplied name, case insensitive
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (expected text, json, yaml or toml)", name).
		WithDetail("format", name)
}

// Encode writes v in one of the structured formats
func Encode(w io.Writer, format Format, v interface{}) error {
	var err error
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err = encoder.Encode(v)
		if err == nil {
			err = encoder.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(v)
	default:
		return errors.Newf(errors.ErrInvalidInput, "format %s cannot encode structured data", format).
			WithDetail("format", string(format))
	}

	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to write %s", format)
	}
	return nil
}

// writeString writes s, mapping failures to ErrOutputWrite
func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}
	return nil
}

// padRight pads s with spaces to width runes
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func maxWidth(values []string) int {
	width := 0
	for _, v := range values {
		if n := len([]rune(v)); n > width {
			width = n
		}
	}
	return width
}
