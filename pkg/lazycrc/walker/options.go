// Package walker enumerates regular files under a root and feeds each
// through the checksum computer into a result store. It uses fastwalk for
// parallel traversal: checksum computation shares no state, and only the
// store insertion is serialized behind the store's own mutex.
package walker

import (
	"github.com/lazycrc/lazycrc/pkg/lazycrc/checksum"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

// Options configures a build traversal.
type Options struct {
	// Root is the directory to traverse.
	Root string

	// ChunkSize is the checksum read chunk size in bytes.
	// Zero or less means checksum.DefaultChunkSize. The chunk size never
	// affects the resulting checksums.
	ChunkSize int

	// Workers is the number of concurrent traversal workers.
	// Zero or less lets fastwalk pick based on the host.
	Workers int

	// Exclude contains glob patterns for paths to skip during traversal.
	// Patterns are matched against the base name and the full path.
	Exclude []string

	// OnFile is an optional callback invoked after each file is
	// checksummed and stored. It must be safe to call from multiple
	// goroutines.
	OnFile func(types.FileEntry)
}

// Validate applies defaults for invalid values.
func (o *Options) Validate() {
	if o.ChunkSize <= 0 {
		o.ChunkSize = checksum.DefaultChunkSize
	}
	if o.Workers < 0 {
		o.Workers = 0
	}
}
