package sfv

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/checksum"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/store"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

// Encode serializes entries as SFV text, one `<path> <8-hex>` line per
// entry in the given order. Any entry whose path equals selfName is
// excluded: a manifest never lists itself. Output is plain UTF-8.
func Encode(entries []types.FileEntry, selfName string) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		if e.Path == selfName {
			continue
		}
		buf.WriteString(e.Path)
		buf.WriteByte(' ')
		buf.WriteString(checksum.FormatCRC(e.CRC))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Write serializes the store's entries to an SFV manifest at outPath and
// returns the number of entries written. The entry matching outPath's base
// name is excluded without mutating the store. If no entries remain after
// that exclusion, no file is created and Write returns zero.
func Write(st *store.Store, outPath string) (int, error) {
	data := Encode(st.Entries(), filepath.Base(outPath))
	if len(data) == 0 {
		return 0, nil
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write manifest: %w", err)
	}
	return bytes.Count(data, []byte{'\n'}), nil
}
