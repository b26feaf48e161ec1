package config

import (
	"github.com/arthur-debert/spline/pkg/errors"
	"github.com/arthur-debert/spline/pkg/operations"
	"github.com/arthur-debert/spline/pkg/render"
)

// Config is the merged configuration
type Config struct {
	Logging      Logging      `koanf:"logging"`
	Capabilities Capabilities `koanf:"capabilities"`
	Render       Render       `koanf:"render"`
}

// Logging configures the global logger
type Logging struct {
	Verbosity int  `koanf:"verbosity" json:"verbosity" yaml:"verbosity" toml:"verbosity"`
	File      bool `koanf:"file" json:"file" yaml:"file" toml:"file"`
}

// Capabilities adjusts the capability allowlist
type Capabilities struct {
	Disabled []string `koanf:"disabled" json:"disabled" yaml:"disabled" toml:"disabled"`
}

// Render configures descriptive output
type Render struct {
	Format string `koanf:"format" json:"format" yaml:"format" toml:"format"`
}

// Validate checks values that cannot be expressed by types alone
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}

	if _, err := render.ParseFormat(c.Render.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid render.format")
	}

	known := operations.Capabilities()
	for _, id := range c.Capabilities.Disabled {
		if !known.Has(id) {
			return errors.Newf(errors.ErrConfigValid, "capabilities.disabled names unknown capability %q", id).
				WithDetail("capability", id)
		}
	}
	return nil
}

// View is the shape used when the effective configuration is printed
type View struct {
	Logging      Logging      `json:"logging" yaml:"logging" toml:"logging"`
	Capabilities Capabilities `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Render       Render       `json:"render" yaml:"render" toml:"render"`
}

// View returns the printable form of the configuration
func (c *Config) View() View {
	disabled := c.Capabilities.Disabled
	if disabled == nil {
		disabled = []string{}
	}
	return View{
		Logging:      c.Logging,
		Capabilities: Capabilities{Disabled: disabled},
		Render:       c.Render,
	}
}
