// Package registry provides a generic, immutable name-to-item table.
//
// A registry is assembled once with a Builder and frozen with Build. The
// frozen Registry has no mutating methods, so it can be shared by any number
// of readers without locking. spline keeps two of them: the operation
// catalog and the capability allowlist.
package registry
