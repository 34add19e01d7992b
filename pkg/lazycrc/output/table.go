package output

import (
	"bytes"
	"fmt"
)

// TSVFormatter formats output as tab-separated values.
// It produces a header row followed by data rows: entries in build mode,
// bad files in verify mode.
type TSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TSVFormatter) Format(w *bytes.Buffer, r *Result) error {
	if r.Mode == ModeVerify {
		w.WriteString("PATH\tREASON\n")
		for _, bad := range r.BadFiles {
			fmt.Fprintf(w, "%s\t%s\n", bad.Path, bad.Reason)
		}
		return nil
	}

	w.WriteString("CRC\tPATH\n")
	for _, entry := range r.Entries {
		fmt.Fprintf(w, "%s\t%s\n", entry.CRC, entry.Path)
	}
	return nil
}

func init() {
	Register("tsv", func() Formatter {
		return &TSVFormatter{}
	})
}

// Ensure TSVFormatter implements Formatter.
var _ Formatter = (*TSVFormatter)(nil)
