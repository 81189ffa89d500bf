// Package types defines the Recipe aggregate, its value objects, the
// storage-port interface, filter/sort descriptors, statistics payloads,
// configuration, and the standard errors shared across the recipe manager.
package types
