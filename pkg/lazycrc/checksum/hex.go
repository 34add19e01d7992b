package checksum

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCRC renders a CRC32 value as 8 uppercase hex digits, zero-padded.
func FormatCRC(crc uint32) string {
	return fmt.Sprintf("%08X", crc)
}

// ParseCRC parses an 8-digit hex string into a CRC32 value. Mixed case is
// accepted on input; output formatting never produces it.
func ParseCRC(s string) (uint32, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("crc must be 8 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid crc %q: %w", s, err)
	}
	return uint32(v), nil
}

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// EqualCRC reports whether two hex checksum strings denote the same value,
// ignoring case.
func EqualCRC(a, b string) bool {
	return strings.EqualFold(a, b)
}
