package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Mode     string    `yaml:"mode"`
	Entries  []Entry   `yaml:"entries,omitempty"`
	BadFiles []BadFile `yaml:"bad_files,omitempty"`
	Stats    yamlStats `yaml:"stats"`
	Meta     yamlMeta  `yaml:"meta"`
}

// yamlStats represents run statistics in YAML output.
type yamlStats struct {
	Files      int64  `yaml:"files"`
	Bytes      int64  `yaml:"bytes"`
	BytesHuman string `yaml:"bytes_human"`
	Duration   string `yaml:"duration"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Source   string   `yaml:"source"`
	Manifest string   `yaml:"manifest,omitempty"`
	Good     int      `yaml:"good,omitempty"`
	Report   string   `yaml:"report,omitempty"`
	Failed   bool     `yaml:"failed"`
	Warnings []string `yaml:"warnings,omitempty"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := yamlOutput{
		Mode:     string(r.Mode),
		Entries:  r.Entries,
		BadFiles: r.BadFiles,
		Stats: yamlStats{
			Files:      r.Stats.Files,
			Bytes:      r.Stats.Bytes,
			BytesHuman: r.Stats.BytesHuman,
			Duration:   formatDurationString(r.Stats.Duration),
		},
		Meta: yamlMeta{
			Source:   r.Source,
			Manifest: r.Manifest,
			Good:     r.Good,
			Report:   r.Report,
			Failed:   r.Failed(),
			Warnings: r.Warnings,
		},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(output); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
