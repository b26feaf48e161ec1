// Package render describes compiled pipelines and the operation catalog
// without running anything. Every view can be written as aligned text or
// encoded as JSON, YAML or TOML.
package render
