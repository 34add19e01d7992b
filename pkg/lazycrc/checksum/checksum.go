// Package checksum computes streaming CRC32 digests over files.
//
// Files are read sequentially in fixed-size chunks and folded into a
// running CRC32 state (IEEE polynomial 0xEDB88320, reflected). The chunk
// size is purely a memory/performance knob: the digest is identical for
// any chunking of the same bytes.
package checksum

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// DefaultChunkSize is the read chunk size used when none is configured.
const DefaultChunkSize = 4 * 1024

var (
	// ErrOpen indicates the file could not be opened for reading.
	ErrOpen = errors.New("cannot open file")

	// ErrSize indicates the file size could not be determined.
	ErrSize = errors.New("cannot determine file size")
)

// File computes the CRC32 of the file at path, reading it in chunkSize-byte
// chunks. It returns the digest and the number of bytes read. A chunkSize
// of zero or less falls back to DefaultChunkSize. An empty file yields
// digest zero without any read calls.
//
// The file handle is closed on every return path.
func File(path string, chunkSize int) (uint32, int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrSize, path, err)
	}

	size := info.Size()
	if size == 0 {
		return 0, 0, nil
	}

	var crc uint32
	var processed int64
	buf := make([]byte, chunkSize)

	for processed < size {
		n, err := f.Read(buf)
		if n > 0 {
			crc = crc32.Update(crc, crc32.IEEETable, buf[:n])
			processed += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, processed, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return crc, processed, nil
}

// Sum computes the CRC32 of everything readable from r in chunkSize-byte
// chunks. It exists for checksumming in-memory or piped data; File is the
// path-based entry point.
func Sum(r io.Reader, chunkSize int) (uint32, int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var crc uint32
	var processed int64
	buf := make([]byte, chunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			crc = crc32.Update(crc, crc32.IEEETable, buf[:n])
			processed += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return crc, processed, nil
			}
			return 0, processed, err
		}
	}
}
