// Package config loads spline's configuration.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file in $XDG_CONFIG_HOME/spline (config.toml, config.yaml or config.yml)
//  3. an explicit file given with --config
//  4. SPLINE_SECTION_KEY environment variables
//
// The configuration only tunes the tool around the pipeline (logging,
// capability allowlist, rendering). It can never add operations.
package config
