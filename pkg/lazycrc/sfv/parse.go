// Package sfv implements the Simple File Verification manifest format:
// writing a checksum store as SFV text, parsing SFV text back into entries,
// and verifying a directory tree against a previously written manifest.
//
// The on-disk format is one `<path> <8-hex-CRC32>` pair per line, with `;`
// comments and blank lines ignored. Manifests are written as UTF-8; readers
// additionally tolerate UTF-16 input with a byte order mark.
package sfv

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/checksum"
)

// Entry is a single parsed manifest line.
type Entry struct {
	// Path is the recorded file path, verbatim from the manifest.
	Path string

	// CRC is the recorded checksum.
	CRC uint32
}

// Parse reads SFV text from r and returns its entries in line order.
//
// Blank lines and lines whose first non-space character is ';' are skipped.
// A line is an entry when its last whitespace-delimited token is exactly 8
// hex digits; the text before that token, with trailing spaces trimmed, is
// the path. Lines not matching this shape are skipped silently, never
// reported. Note the known edge case this contract implies: a path that
// itself ends in a space-separated 8-hex-digit token cannot be told apart
// from an entry, so such a line parses with the token as its checksum.
//
// Input may be UTF-8 or BOM-marked UTF-16; the BOM is consumed.
func Parse(r io.Reader) ([]Entry, error) {
	decoded := transform.NewReader(r, textunicode.BOMOverride(textunicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	entries := make([]Entry, 0, 16)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		entry, ok := parseLine(line)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseLine extracts the trailing checksum token and preceding path.
// ok is false for any line that does not match the entry shape.
func parseLine(line string) (Entry, bool) {
	last := len(line) - 1
	for last >= 0 && unicode.IsSpace(rune(line[last])) {
		last--
	}
	if last < 0 {
		return Entry{}, false
	}

	crcEnd := last + 1
	for last >= 0 && checksum.IsHexDigit(line[last]) {
		last--
	}

	crcStart := last + 1
	if crcEnd-crcStart != 8 {
		return Entry{}, false
	}
	if last < 0 || !unicode.IsSpace(rune(line[last])) {
		return Entry{}, false
	}

	path := strings.TrimSpace(line[:last+1])
	if path == "" {
		return Entry{}, false
	}

	crc, err := checksum.ParseCRC(line[crcStart:crcEnd])
	if err != nil {
		return Entry{}, false
	}

	return Entry{Path: path, CRC: crc}, true
}
