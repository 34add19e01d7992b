package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixture returns a Result representing a successful build run.
func buildFixture() *Result {
	return &Result{
		Mode:     ModeBuild,
		Source:   "/data/photos",
		Manifest: "/data/photos/photos.sfv",
		Entries: []Entry{
			{Path: "a.jpg", CRC: "CBF43926"},
			{Path: "sub/b.jpg", CRC: "00000000"},
		},
		Stats: Stats{
			Files:      2,
			Bytes:      2048,
			BytesHuman: "2.0 KiB",
			Duration:   1500 * time.Millisecond,
		},
	}
}

// verifyFixture returns a Result representing a failed verify run.
func verifyFixture() *Result {
	return &Result{
		Mode:     ModeVerify,
		Source:   "/data/photos/photos.sfv",
		Manifest: "/data/photos/photos.sfv",
		Good:     1,
		BadFiles: []BadFile{
			{Path: "gone.jpg", Reason: "open-failed"},
			{Path: "changed.jpg", Reason: "checksum-mismatch"},
		},
		Report: "/data/photos/photos.sfv.bad",
		Stats: Stats{
			Files:    1,
			Bytes:    1024,
			Duration: time.Second,
		},
	}
}

func TestResultFailed(t *testing.T) {
	assert.False(t, buildFixture().Failed())
	assert.True(t, verifyFixture().Failed())

	clean := verifyFixture()
	clean.BadFiles = nil
	assert.False(t, clean.Failed())
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register("test", func() Formatter {
		return &PlainFormatter{}
	})

	formatter, err := registry.Get("test")
	require.NoError(t, err)
	assert.NotNil(t, formatter)
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formatter")
}

func TestRegistryAvailable(t *testing.T) {
	registry := NewRegistry()
	registry.Register("zebra", func() Formatter { return &PlainFormatter{} })
	registry.Register("alpha", func() Formatter { return &PlainFormatter{} })

	assert.Equal(t, []string{"alpha", "zebra"}, registry.Available())
}

func TestDefaultRegistryFormatters(t *testing.T) {
	for _, name := range []string{"plain", "tsv", "json", "yaml"} {
		t.Run(name, func(t *testing.T) {
			formatter, err := Get(name)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, formatter.Format(&buf, buildFixture()))
			assert.NotEmpty(t, buf.String())

			buf.Reset()
			require.NoError(t, formatter.Format(&buf, verifyFixture()))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestAvailableIncludesBuiltins(t *testing.T) {
	names := Available()
	assert.Contains(t, names, "plain")
	assert.Contains(t, names, "tsv")
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "yaml")
}
