// Package store provides the shared result store for one checksum run:
// a path-keyed checksum mapping and an append-only bad-file log.
//
// All mutation is mutex-guarded so the walker's checksum workers can insert
// concurrently; reads return snapshots. Manifest ordering comes from the
// sorted snapshot, never from arrival order.
package store

import (
	"sort"
	"sync"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

// Store collects per-file checksums and verification failures for one run.
// The zero value is not usable; call New.
type Store struct {
	mu       sync.Mutex
	checksum map[string]uint32
	bad      []types.BadFileRecord
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		checksum: make(map[string]uint32),
	}
}

// Add records the checksum for path. Insertion is first-wins: if the path
// is already present the existing checksum is kept and Add reports false.
func (s *Store) Add(path string, crc uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.checksum[path]; ok {
		return false
	}
	s.checksum[path] = crc
	return true
}

// Len returns the number of distinct paths recorded.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.checksum)
}

// Entries returns a snapshot of all recorded entries sorted by path in
// lexicographic order.
func (s *Store) Entries() []types.FileEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]types.FileEntry, 0, len(s.checksum))
	for path, crc := range s.checksum {
		entries = append(entries, types.FileEntry{Path: path, CRC: crc})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}

// AddBad appends a bad-file record. Records keep discovery order and are
// never deduplicated.
func (s *Store) AddBad(path string, reason types.BadReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bad = append(s.bad, types.BadFileRecord{Path: path, Reason: reason})
}

// BadFiles returns a snapshot of the bad-file log in discovery order.
func (s *Store) BadFiles() []types.BadFileRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.BadFileRecord, len(s.bad))
	copy(out, s.bad)
	return out
}
