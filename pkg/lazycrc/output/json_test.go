package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatterBuild(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	require.NoError(t, f.Format(&buf, buildFixture()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "build", decoded["mode"])

	entries, ok := decoded["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 2)
	first := entries[0].(map[string]any)
	assert.Equal(t, "a.jpg", first["path"])
	assert.Equal(t, "CBF43926", first["crc"])

	stats := decoded["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["files"])
	assert.Equal(t, float64(2048), stats["bytes"])
	assert.Equal(t, "2.0 KiB", stats["bytes_human"])
	assert.Equal(t, "1.5s", stats["duration"])

	meta := decoded["meta"].(map[string]any)
	assert.Equal(t, "/data/photos", meta["source"])
	assert.Equal(t, "/data/photos/photos.sfv", meta["manifest"])
	assert.Equal(t, false, meta["failed"])
}

func TestJSONFormatterVerify(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	require.NoError(t, f.Format(&buf, verifyFixture()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "verify", decoded["mode"])

	bad, ok := decoded["bad_files"].([]any)
	require.True(t, ok)
	require.Len(t, bad, 2)
	assert.Equal(t, "open-failed", bad[0].(map[string]any)["reason"])

	meta := decoded["meta"].(map[string]any)
	assert.Equal(t, true, meta["failed"])
	assert.Equal(t, float64(1), meta["good"])
	assert.Equal(t, "/data/photos/photos.sfv.bad", meta["report"])
}

func TestJSONFormatterValidOutput(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	require.NoError(t, f.Format(&buf, &Result{Mode: ModeBuild}))
	assert.True(t, json.Valid(buf.Bytes()))
}
