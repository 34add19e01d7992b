package output

import (
	"bytes"
	"encoding/json"
	"time"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Mode     string    `json:"mode"`
	Entries  []Entry   `json:"entries,omitempty"`
	BadFiles []BadFile `json:"bad_files,omitempty"`
	Stats    jsonStats `json:"stats"`
	Meta     jsonMeta  `json:"meta"`
}

// jsonStats represents run statistics in JSON output.
type jsonStats struct {
	Files      int64  `json:"files"`
	Bytes      int64  `json:"bytes"`
	BytesHuman string `json:"bytes_human"`
	Duration   string `json:"duration"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Source   string   `json:"source"`
	Manifest string   `json:"manifest,omitempty"`
	Good     int      `json:"good,omitempty"`
	Report   string   `json:"report,omitempty"`
	Failed   bool     `json:"failed"`
	Warnings []string `json:"warnings,omitempty"`
}

// JSONFormatter formats output as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := f.buildOutput(r)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts Result to the JSON output structure.
func (f *JSONFormatter) buildOutput(r *Result) jsonOutput {
	return jsonOutput{
		Mode:     string(r.Mode),
		Entries:  r.Entries,
		BadFiles: r.BadFiles,
		Stats: jsonStats{
			Files:      r.Stats.Files,
			Bytes:      r.Stats.Bytes,
			BytesHuman: r.Stats.BytesHuman,
			Duration:   formatDurationString(r.Stats.Duration),
		},
		Meta: jsonMeta{
			Source:   r.Source,
			Manifest: r.Manifest,
			Good:     r.Good,
			Report:   r.Report,
			Failed:   r.Failed(),
			Warnings: r.Warnings,
		},
	}
}

// formatDurationString formats a duration as a string for structured output.
func formatDurationString(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
