package checksum

import (
	"bytes"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file with the given contents in a temp dir.
func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestFile_GoldenVector(t *testing.T) {
	t.Parallel()

	// Standard CRC32 check value for the ASCII digits "123456789".
	path := writeTestFile(t, "golden.txt", []byte("123456789"))

	crc, n, err := File(path, DefaultChunkSize)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if n != 9 {
		t.Errorf("bytes read = %d, want 9", n)
	}
	if got := FormatCRC(crc); got != "CBF43926" {
		t.Errorf("FormatCRC(crc) = %s, want CBF43926", got)
	}
}

func TestFile_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "empty", nil)

	crc, n, err := File(path, DefaultChunkSize)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if crc != 0 {
		t.Errorf("crc = %08X, want 00000000", crc)
	}
	if n != 0 {
		t.Errorf("bytes read = %d, want 0", n)
	}
	if got := FormatCRC(crc); got != "00000000" {
		t.Errorf("FormatCRC(crc) = %s, want 00000000", got)
	}
}

func TestFile_ChunkingInvariance(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 373)
	path := writeTestFile(t, "data.bin", data)
	want := crc32.ChecksumIEEE(data)

	for _, chunkSize := range []int{1, 3, 7, 64, 4096, len(data), len(data) + 17} {
		crc, n, err := File(path, chunkSize)
		if err != nil {
			t.Fatalf("File(chunk=%d) error = %v", chunkSize, err)
		}
		if crc != want {
			t.Errorf("File(chunk=%d) = %08X, want %08X", chunkSize, crc, want)
		}
		if n != int64(len(data)) {
			t.Errorf("File(chunk=%d) read %d bytes, want %d", chunkSize, n, len(data))
		}
	}
}

func TestFile_DefaultChunkSizeFallback(t *testing.T) {
	t.Parallel()

	data := []byte("some bytes")
	path := writeTestFile(t, "data", data)

	crc, _, err := File(path, 0)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if want := crc32.ChecksumIEEE(data); crc != want {
		t.Errorf("crc = %08X, want %08X", crc, want)
	}
}

func TestFile_OpenError(t *testing.T) {
	t.Parallel()

	_, _, err := File(filepath.Join(t.TempDir(), "missing"), DefaultChunkSize)
	if err == nil {
		t.Fatal("File() error = nil, want error for missing file")
	}
	if !errors.Is(err, ErrOpen) {
		t.Errorf("error = %v, want ErrOpen", err)
	}
}

func TestSum_MatchesFile(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 1000)

	crc, n, err := Sum(bytes.NewReader(data), 128)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if want := crc32.ChecksumIEEE(data); crc != want {
		t.Errorf("crc = %08X, want %08X", crc, want)
	}
	if n != int64(len(data)) {
		t.Errorf("bytes read = %d, want %d", n, len(data))
	}
}
