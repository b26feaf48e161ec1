// Package operations holds the closed catalog of built-in pipeline
// operations and the allowlist of capabilities they may require.
//
// Both registries are built once when the package is initialised and never
// change afterwards. Tests that need a smaller or stranger catalog build
// their own with NewCatalog and NewCapabilities.
package operations
