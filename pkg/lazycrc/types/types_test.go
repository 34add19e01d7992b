package types

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"4096", 4096},
		{"0", 0},
		{"512B", 512},
		{"4K", 4 * KiB},
		{"4k", 4 * KiB},
		{"64KiB", 64 * KiB},
		{"64KB", 64 * KiB},
		{"1M", MiB},
		{"1.5M", MiB + 512*KiB},
		{"2G", 2 * GiB},
		{" 8K ", 8 * KiB},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if err != nil {
				t.Fatalf("ParseSize(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q): got %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidSize},
		{"negative", "-4K", ErrNegativeSize},
		{"garbage", "lots", ErrInvalidSize},
		{"unknown suffix", "4T", ErrInvalidSize},
		{"suffix only", "K", ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSize(tt.input)
			if err == nil {
				t.Fatalf("ParseSize(%q): expected error", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSize(%q): got %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{KiB, "1.0 KiB"},
		{2 * MiB, "2.0 MiB"},
		{GiB, "1.0 GiB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d): got %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestBadFileRecordString(t *testing.T) {
	tests := []struct {
		record BadFileRecord
		want   string
	}{
		{BadFileRecord{Path: "gone.bin", Reason: ReasonOpenFailed}, "gone.bin open-failed"},
		{BadFileRecord{Path: "big.bin", Reason: ReasonSizeUnavailable}, "big.bin size-unavailable"},
		{BadFileRecord{Path: "sub/changed.bin", Reason: ReasonMismatch}, "sub/changed.bin checksum-mismatch"},
	}

	for _, tt := range tests {
		if got := tt.record.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}
