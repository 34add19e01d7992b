package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLFormatterBuild(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}

	require.NoError(t, f.Format(&buf, buildFixture()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "build", decoded["mode"])

	entries, ok := decoded["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 2)

	stats := decoded["stats"].(map[string]any)
	assert.Equal(t, 2, stats["files"])
	assert.Equal(t, "2.0 KiB", stats["bytes_human"])
}

func TestYAMLFormatterVerify(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}

	require.NoError(t, f.Format(&buf, verifyFixture()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	bad, ok := decoded["bad_files"].([]any)
	require.True(t, ok)
	require.Len(t, bad, 2)

	meta := decoded["meta"].(map[string]any)
	assert.Equal(t, true, meta["failed"])
}
