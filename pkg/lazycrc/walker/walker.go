package walker

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/checksum"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/logging"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/store"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

// WalkError pairs a path with the error encountered there. Per-file errors
// never abort the traversal; the file is simply absent from the store.
type WalkError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Result contains the aggregated outcome of one traversal.
type Result struct {
	// Stats counts checksummed files, bytes read, and elapsed time.
	Stats types.RunStats

	// Errors contains per-file failures (open, read, relative path).
	Errors []WalkError
}

// Walker traverses a directory tree and checksums every regular file.
type Walker struct {
	opts Options

	files atomic.Int64
	bytes atomic.Int64

	errs   []WalkError
	errsMu sync.Mutex

	// root is the resolved absolute path being traversed.
	root string

	// logger is resolved at the start of each Walk so handles created
	// after logging.Init are used.
	logger *logging.Logger
}

// New creates a Walker with the given options.
func New(opts Options) *Walker {
	opts.Validate()
	return &Walker{opts: opts}
}

// Walk traverses the root and inserts one entry per regular file into st,
// keyed by the file's slash-separated path relative to the root. Insertion
// is first-wins; traversal order carries no guarantee. It blocks until the
// walk completes or ctx is cancelled.
func (w *Walker) Walk(ctx context.Context, st *store.Store) (*Result, error) {
	w.logger = logging.Get("walker")
	startTime := time.Now()

	root, err := w.validateRoot()
	if err != nil {
		return nil, err
	}
	w.root = root

	conf := fastwalk.Config{
		Follow:     false, // Don't follow symlinks.
		NumWorkers: w.opts.Workers,
	}

	walkCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		<-walkCtx.Done()
		close(done)
	}()

	walkErr := fastwalk.Walk(&conf, root, w.walkCallback(st, done))
	if walkErr != nil && !errors.Is(walkErr, context.Canceled) && !errors.Is(walkErr, fastwalk.ErrSkipFiles) {
		return nil, walkErr
	}

	result := &Result{
		Stats: types.RunStats{
			Files:   w.files.Load(),
			Bytes:   w.bytes.Load(),
			Elapsed: time.Since(startTime),
		},
		Errors: w.errs,
	}

	w.logger.Info("walk complete",
		"root", root,
		"files", result.Stats.Files,
		"bytes", result.Stats.Bytes,
		"errors", len(result.Errors))

	return result, nil
}

// validateRoot resolves the root path to absolute and verifies it is a
// directory.
func (w *Walker) validateRoot() (string, error) {
	root, err := filepath.Abs(w.opts.Root)
	if err != nil {
		return "", err
	}

	rootInfo, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !rootInfo.IsDir() {
		return "", os.ErrInvalid
	}

	return root, nil
}

// walkCallback returns the callback function for fastwalk.Walk.
func (w *Walker) walkCallback(st *store.Store, done <-chan struct{}) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		select {
		case <-done:
			return fastwalk.ErrSkipFiles
		default:
		}

		// Handle errors gracefully - log and continue.
		if err != nil {
			w.addError(path, err)
			return nil
		}

		if w.isExcluded(path) {
			if d.IsDir() {
				return fastwalk.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() {
			w.processFile(st, path)
		}

		return nil
	}
}

// processFile checksums one regular file and inserts it into the store.
// Any failure aborts only this file.
func (w *Walker) processFile(st *store.Store, path string) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		w.logger.Warn("cannot resolve relative path", "path", path, "error", err)
		w.addError(path, err)
		return
	}

	crc, n, err := checksum.File(path, w.opts.ChunkSize)
	if err != nil {
		w.logger.Warn("cannot checksum file", "path", path, "error", err)
		w.addError(path, err)
		return
	}

	w.files.Add(1)
	w.bytes.Add(n)

	entry := types.FileEntry{Path: filepath.ToSlash(rel), CRC: crc}
	if !st.Add(entry.Path, entry.CRC) {
		// Duplicate path: the first computed checksum is kept.
		w.logger.Debug("duplicate path ignored", "path", entry.Path)
		return
	}

	if w.opts.OnFile != nil {
		w.opts.OnFile(entry)
	}
}

// addError records a per-file error thread-safely.
func (w *Walker) addError(path string, err error) {
	w.errsMu.Lock()
	w.errs = append(w.errs, WalkError{
		Path:  path,
		Error: err.Error(),
	})
	w.errsMu.Unlock()
}

// isExcluded checks if a path matches any exclusion pattern.
func (w *Walker) isExcluded(path string) bool {
	for _, pattern := range w.opts.Exclude {
		if pattern == "" {
			continue
		}

		if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
