package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/checksum"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/config"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/output"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/sfv"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/store"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
	"github.com/lazycrc/lazycrc/pkg/lazycrc/walker"
)

// runRoot dispatches the input path to the build or verify pipeline.
func runRoot(_ *cobra.Command, args []string) error {
	expandedPath, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", types.ErrInputNotFound, absPath)
		}
		return fmt.Errorf("cannot access path: %w", err)
	}

	chunkSize, err := parseChunkSize()
	if err != nil {
		return err
	}

	switch {
	case viper.GetBool("verify"):
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s (verify expects a manifest file)", types.ErrUnsupportedInput, absPath)
		}
		return runVerify(absPath, chunkSize)
	case info.IsDir():
		return runBuildDir(absPath, chunkSize)
	case info.Mode().IsRegular():
		return runBuildFile(absPath, chunkSize)
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedInput, absPath)
	}
}

// parseChunkSize resolves the configured checksum chunk size.
func parseChunkSize() (int, error) {
	chunkStr := viper.GetString("chunk_size")
	if chunkStr == "" {
		chunkStr = config.DefaultChunkSize
	}
	chunkSize, err := types.ParseSize(chunkStr)
	if err != nil {
		return 0, fmt.Errorf("invalid chunk size %q: %w", chunkStr, err)
	}
	return int(chunkSize), nil
}

// manifestName returns the configured manifest file name, or fallback when
// none is set.
func manifestName(fallback string) string {
	if name := viper.GetString("manifest_name"); name != "" {
		return filepath.Base(name)
	}
	return fallback
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runBuildDir checksums every regular file under dir and writes the SFV
// manifest inside it, named after the directory.
func runBuildDir(dir string, chunkSize int) error {
	ctx, cancel := signalContext()
	defer cancel()

	printVerbose("Building manifest for %s (chunk %d)", dir, chunkSize)

	st := store.New()
	w := walker.New(walker.Options{
		Root:      dir,
		ChunkSize: chunkSize,
		Workers:   viper.GetInt("workers"),
		Exclude:   viper.GetStringSlice("exclude"),
	})

	res, err := w.Walk(ctx, st)
	if err != nil {
		return fmt.Errorf("traversal failed: %w", err)
	}

	manifestPath := filepath.Join(dir, manifestName(filepath.Base(dir)+config.ManifestExt))
	written, err := sfv.Write(st, manifestPath)
	if err != nil {
		return err
	}
	if written == 0 {
		manifestPath = ""
	}

	return renderResult(buildResult(dir, manifestPath, st, res))
}

// runBuildFile checksums a single file and writes `<file>.sfv` next to it,
// keyed by the file's base name.
func runBuildFile(path string, chunkSize int) error {
	start := time.Now()
	printVerbose("Checksumming %s (chunk %d)", path, chunkSize)

	st := store.New()
	res := &walker.Result{}

	crc, n, err := checksum.File(path, chunkSize)
	if err != nil {
		// Per-file failure: the file is simply absent from the manifest.
		printError("%v", err)
		res.Errors = append(res.Errors, walker.WalkError{Path: path, Error: err.Error()})
	} else {
		st.Add(filepath.Base(path), crc)
		res.Stats.Files = 1
		res.Stats.Bytes = n
	}
	res.Stats.Elapsed = time.Since(start)

	manifestPath := filepath.Join(filepath.Dir(path), manifestName(filepath.Base(path)+config.ManifestExt))
	written, err := sfv.Write(st, manifestPath)
	if err != nil {
		return err
	}
	if written == 0 {
		manifestPath = ""
	}

	return renderResult(buildResult(path, manifestPath, st, res))
}

// runVerify re-verifies the tree around manifestPath and, on failure,
// writes the bad-file report alongside the manifest.
func runVerify(manifestPath string, chunkSize int) error {
	printVerbose("Verifying %s (chunk %d)", manifestPath, chunkSize)

	st := store.New()
	vres, err := sfv.Verify(manifestPath, chunkSize, st)
	if err != nil {
		return err
	}

	bad := st.BadFiles()
	reportPath := ""
	if len(bad) > 0 {
		reportPath, err = sfv.WriteReport(manifestPath, bad)
		if err != nil {
			return err
		}
	}

	result := &output.Result{
		Mode:     output.ModeVerify,
		Source:   filepath.Dir(manifestPath),
		Manifest: manifestPath,
		Good:     vres.Good,
		Report:   reportPath,
		Stats: output.Stats{
			Files:      vres.Stats.Files,
			Bytes:      vres.Stats.Bytes,
			BytesHuman: types.FormatSize(vres.Stats.Bytes),
			Duration:   vres.Stats.Elapsed,
		},
	}
	for _, record := range bad {
		result.BadFiles = append(result.BadFiles, output.BadFile{
			Path:   record.Path,
			Reason: string(record.Reason),
		})
	}

	if err := renderResult(result); err != nil {
		return err
	}

	if len(bad) > 0 {
		return fmt.Errorf("%w: %d", types.ErrBadFilesFound, len(bad))
	}
	return nil
}

// buildResult assembles the renderable result for a build run.
func buildResult(source, manifestPath string, st *store.Store, res *walker.Result) *output.Result {
	result := &output.Result{
		Mode:     output.ModeBuild,
		Source:   source,
		Manifest: manifestPath,
		Stats: output.Stats{
			Files:      res.Stats.Files,
			Bytes:      res.Stats.Bytes,
			BytesHuman: types.FormatSize(res.Stats.Bytes),
			Duration:   res.Stats.Elapsed,
		},
	}

	selfName := ""
	if manifestPath != "" {
		selfName = filepath.Base(manifestPath)
	}
	for _, entry := range st.Entries() {
		if entry.Path == selfName {
			continue
		}
		result.Entries = append(result.Entries, output.Entry{
			Path: entry.Path,
			CRC:  checksum.FormatCRC(entry.CRC),
		})
	}

	for _, e := range res.Errors {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", e.Path, e.Error))
	}
	return result
}

// renderResult formats the result with the configured formatter and prints
// it, honoring quiet mode.
func renderResult(result *output.Result) error {
	if getQuiet() {
		return nil
	}

	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutput
	}

	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}
