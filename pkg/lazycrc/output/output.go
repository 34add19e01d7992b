// Package output provides formatters for rendering lazycrc run results
// in various output formats (plain, tsv, json, yaml).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("plain")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Mode identifies which pipeline produced a Result.
type Mode string

// Run modes.
const (
	ModeBuild  Mode = "build"
	ModeVerify Mode = "verify"
)

// Entry is one manifest entry prepared for rendering.
type Entry struct {
	// Path is the manifest-relative path of the file.
	Path string `json:"path" yaml:"path"`

	// CRC is the checksum rendered as 8 uppercase hex digits.
	CRC string `json:"crc" yaml:"crc"`
}

// BadFile is one verification failure prepared for rendering.
type BadFile struct {
	// Path is the entry path as recorded in the manifest.
	Path string `json:"path" yaml:"path"`

	// Reason is the failure reason text.
	Reason string `json:"reason" yaml:"reason"`
}

// Stats contains statistics about one run.
type Stats struct {
	// Files is the number of files checksummed.
	Files int64 `json:"files" yaml:"files"`

	// Bytes is the total number of bytes read.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// BytesHuman is the human-readable form of Bytes.
	BytesHuman string `json:"bytes_human" yaml:"bytes_human"`

	// Duration is the total wall time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result contains the complete output data for formatting.
type Result struct {
	// Mode is the run mode (build or verify).
	Mode Mode `json:"mode" yaml:"mode"`

	// Source is the input path the run operated on.
	Source string `json:"source" yaml:"source"`

	// Manifest is the manifest path written (build) or read (verify).
	// Empty in build mode when no manifest was produced.
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`

	// Entries contains the manifest entries, in manifest order.
	Entries []Entry `json:"entries,omitempty" yaml:"entries,omitempty"`

	// Good is the number of verified entries that matched (verify only).
	Good int `json:"good,omitempty" yaml:"good,omitempty"`

	// BadFiles contains verification failures in discovery order.
	BadFiles []BadFile `json:"bad_files,omitempty" yaml:"bad_files,omitempty"`

	// Report is the bad-file report path, when one was written.
	Report string `json:"report,omitempty" yaml:"report,omitempty"`

	// Stats contains run statistics.
	Stats Stats `json:"stats" yaml:"stats"`

	// Warnings contains per-file build warnings (skipped files).
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Failed reports whether a verify run found bad files.
func (r *Result) Failed() bool {
	return r.Mode == ModeVerify && len(r.BadFiles) > 0
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
