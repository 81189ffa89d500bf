// Package recipes holds build-level metadata shared across the module.
package recipes

// Version is the semantic version of the recipes CLI and library.
const Version = "0.1.0"
