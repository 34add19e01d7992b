package sfv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/checksum"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/logging"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/store"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

// VerifyResult summarizes one verification pass.
type VerifyResult struct {
	// Entries is the number of manifest lines that parsed as entries.
	Entries int

	// Good is the number of entries whose recomputed checksum matched.
	Good int

	// Stats aggregates bytes read and elapsed time.
	Stats types.RunStats
}

// Failed reports whether the pass found at least one bad file.
// The bad-file log lives in the store the pass was run against.
func (r *VerifyResult) Failed(st *store.Store) bool {
	return len(st.BadFiles()) > 0
}

// Verify parses the manifest at manifestPath and recomputes the checksum of
// every entry, resolving entry paths against the manifest's directory.
// Failures accumulate in the store's bad-file log; the pass never stops at
// the first bad entry. Only the manifest itself being unreadable is an
// error.
//
// Per entry: a file that cannot be opened records open-failed, a file whose
// size cannot be determined records size-unavailable, and a checksum that
// does not match the recorded value records checksum-mismatch. A matching
// entry leaves no trace beyond the good count.
func Verify(manifestPath string, chunkSize int, st *store.Store) (*VerifyResult, error) {
	// Resolved per call so loggers handed out after logging.Init are used.
	logger := logging.Get("sfv")
	start := time.Now()

	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	dir := filepath.Dir(manifestPath)
	result := &VerifyResult{Entries: len(entries)}

	for _, entry := range entries {
		target := filepath.Join(dir, normalizePath(entry.Path))

		crc, n, err := checksum.File(target, chunkSize)
		result.Stats.Bytes += n
		if err != nil {
			reason := types.ReasonOpenFailed
			if errors.Is(err, checksum.ErrSize) {
				reason = types.ReasonSizeUnavailable
			}
			logger.Warn("bad file", "path", entry.Path, "reason", reason)
			st.AddBad(entry.Path, reason)
			continue
		}
		result.Stats.Files++

		if crc != entry.CRC {
			logger.Warn("bad file",
				"path", entry.Path,
				"reason", types.ReasonMismatch,
				"want", checksum.FormatCRC(entry.CRC),
				"got", checksum.FormatCRC(crc))
			st.AddBad(entry.Path, types.ReasonMismatch)
			continue
		}
		result.Good++
	}

	result.Stats.Elapsed = time.Since(start)
	logger.Info("verify complete",
		"manifest", manifestPath,
		"entries", result.Entries,
		"good", result.Good,
		"bad", len(st.BadFiles()))

	return result, nil
}

// normalizePath converts a manifest entry path to the host separator.
// SFV files authored on Windows record backslash-separated paths.
func normalizePath(path string) string {
	return filepath.FromSlash(strings.ReplaceAll(path, "\\", "/"))
}
