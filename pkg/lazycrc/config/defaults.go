// Package config provides configuration management for the lazycrc tool.
package config

// Default configuration values for lazycrc.
const (
	// DefaultChunkSize is the checksum read chunk size.
	DefaultChunkSize = "4K"

	// DefaultOutput is the default output format.
	DefaultOutput = "plain"

	// DefaultWorkers is the default traversal worker count (0 = auto).
	DefaultWorkers = 0

	// ManifestExt is the extension of generated SFV manifests.
	ManifestExt = ".sfv"
)

// DefaultExclusions contains patterns excluded from traversal by default.
// Empty: a checksum manifest should normally cover everything.
var DefaultExclusions = []string{}
