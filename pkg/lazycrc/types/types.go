// Package types provides core data types for the lazycrc checksum tool.
// It includes the manifest entry and bad-file record structures shared by
// the build and verify pipelines, the top-level error taxonomy, and utility
// functions for parsing and formatting byte sizes.
package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Size constants for binary (IEC) units.
const (
	KiB int64 = 1024
	MiB int64 = 1024 * KiB
	GiB int64 = 1024 * MiB
)

// FileEntry pairs a manifest path with its CRC32 checksum.
// The path is the file's base name in single-file mode or its
// slash-separated path relative to the traversal root in directory mode.
type FileEntry struct {
	// Path is the manifest-relative path of the file.
	Path string `json:"path"`

	// CRC is the CRC32 checksum of the file contents.
	CRC uint32 `json:"crc"`
}

// BadReason identifies why a manifest entry failed verification.
type BadReason string

// Verification failure reasons, rendered verbatim in the bad-file report.
const (
	ReasonOpenFailed      BadReason = "open-failed"
	ReasonSizeUnavailable BadReason = "size-unavailable"
	ReasonMismatch        BadReason = "checksum-mismatch"
)

// BadFileRecord describes one manifest entry that failed verification.
// Records accumulate in discovery order and are never deduplicated.
type BadFileRecord struct {
	// Path is the entry path as recorded in the manifest.
	Path string `json:"path"`

	// Reason is why the entry failed.
	Reason BadReason `json:"reason"`
}

// String renders the record as a bad-file report line.
func (r BadFileRecord) String() string {
	return r.Path + " " + string(r.Reason)
}

// RunStats aggregates counters for one build or verify run.
type RunStats struct {
	// Files is the number of files checksummed.
	Files int64 `json:"files"`

	// Bytes is the total number of bytes read.
	Bytes int64 `json:"bytes"`

	// Elapsed is the total wall time of the run.
	Elapsed time.Duration `json:"elapsed"`
}

// Top-level error conditions. These stop the whole run before any output
// is produced; per-file conditions never surface through them.
var (
	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("input path does not exist")

	// ErrUnsupportedInput indicates the input is neither a regular file
	// nor a directory.
	ErrUnsupportedInput = errors.New("input is not a regular file or directory")

	// ErrBadFilesFound indicates verification completed and found at least
	// one bad file.
	ErrBadFilesFound = errors.New("bad files found")
)

// sizePattern matches size strings like "4K", "64KiB", "1.5MB", "4096".
var sizePattern = regexp.MustCompile(`(?i)^\s*([0-9]+(?:\.[0-9]+)?)\s*([KMG]?(?:i?B)?)\s*$`)

// ErrInvalidSize indicates that a size string could not be parsed.
var ErrInvalidSize = errors.New("invalid size format")

// ErrNegativeSize indicates that a negative size value was provided.
var ErrNegativeSize = errors.New("size cannot be negative")

// ParseSize parses a human-readable size string and returns the size in
// bytes. It supports plain bytes ("4096"), byte suffixes ("512B"), and
// K/M/G with optional B or iB ("4K", "64KiB", "1.5MB"). Decimal values
// are truncated to the nearest byte.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSize)
	}

	if strings.HasPrefix(s, "-") {
		return 0, ErrNegativeSize
	}

	matches := sizePattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	suffix := strings.ToUpper(matches[2])
	suffix = strings.TrimSuffix(suffix, "IB")
	suffix = strings.TrimSuffix(suffix, "B")

	var multiplier int64
	switch suffix {
	case "":
		multiplier = 1
	case "K":
		multiplier = KiB
	case "M":
		multiplier = MiB
	case "G":
		multiplier = GiB
	default:
		return 0, fmt.Errorf("%w: unknown suffix %q", ErrInvalidSize, suffix)
	}

	return int64(value * float64(multiplier)), nil
}

// FormatSize converts a size in bytes to a human-readable string using
// binary (IEC) units.
func FormatSize(bytes int64) string {
	return humanize.IBytes(uint64(bytes))
}
