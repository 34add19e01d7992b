package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"
)

// PlainFormatter formats output as simple aligned text suitable for
// scripting and piping. No colors or styling are applied.
//
// Build mode prints one `CRC PATH` row per entry plus a summary line.
// Verify mode prints the bad files, if any, and the outcome.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	switch r.Mode {
	case ModeVerify:
		return f.formatVerify(w, r)
	default:
		return f.formatBuild(w, r)
	}
}

func (f *PlainFormatter) formatBuild(w *bytes.Buffer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	if _, err := tw.Write([]byte("CRC\tPATH\n")); err != nil {
		return err
	}
	for _, entry := range r.Entries {
		if _, err := tw.Write([]byte(entry.CRC + "\t" + entry.Path + "\n")); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Manifest != "" {
		fmt.Fprintf(w, "\nSFV file created '%s'\n", r.Manifest)
	}
	fmt.Fprintf(w, "%d files, %s in %s\n", r.Stats.Files, r.Stats.BytesHuman, r.Stats.Duration.Round(time.Millisecond))
	return nil
}

func (f *PlainFormatter) formatVerify(w *bytes.Buffer, r *Result) error {
	for _, bad := range r.BadFiles {
		fmt.Fprintf(w, "%s %s\n", bad.Path, bad.Reason)
	}

	if len(r.BadFiles) == 0 {
		fmt.Fprintf(w, "OK: %d files verified\n", r.Good)
	} else {
		fmt.Fprintf(w, "FAILED: %d of %d files bad\n", len(r.BadFiles), r.Good+len(r.BadFiles))
		if r.Report != "" {
			fmt.Fprintf(w, "Bad-file report written '%s'\n", r.Report)
		}
	}
	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
