package sfv

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

// ReportExt is appended to the manifest path to form the bad-file report
// path.
const ReportExt = ".bad"

// ReportPath returns the bad-file report path for a manifest.
func ReportPath(manifestPath string) string {
	return manifestPath + ReportExt
}

// WriteReport writes the bad-file report alongside the manifest, one
// `<path> <reason>` line per record in discovery order, and returns the
// report path. Callers only invoke it when at least one record exists; an
// empty log writes nothing and returns an empty path.
func WriteReport(manifestPath string, bad []types.BadFileRecord) (string, error) {
	if len(bad) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	for _, record := range bad {
		buf.WriteString(record.String())
		buf.WriteByte('\n')
	}

	path := ReportPath(manifestPath)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write bad-file report: %w", err)
	}
	return path, nil
}
