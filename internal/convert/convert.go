// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the Markdown-to-record conversion over a batch of
// knowledge-base files, overwriting each source with its rendered records.
package convert

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/kb-convert/internal/extract"
	"github.com/pdiddy/kb-convert/internal/fileutil"
	"github.com/pdiddy/kb-convert/internal/render"
	"github.com/pdiddy/kb-convert/pkg/types"
)

// ErrAlreadyConverted is returned by Inspect for files that already hold
// rendered records.
var ErrAlreadyConverted = errors.New("file is already converted")

// Status is the outcome of converting one file.
type Status string

const (
	StatusConverted        Status = "converted"
	StatusMissing          Status = "missing"
	StatusEmpty            Status = "empty"
	StatusAlreadyConverted Status = "already-converted"
)

// FileResult describes the conversion of one file.
type FileResult struct {
	Path       string
	OutputPath string
	Status     Status
	Records    int
	Skipped    int
	Bytes      int
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted        int
	Missing          int
	Empty            int
	AlreadyConverted int

	// SectionsSkipped counts sections dropped for unresolvable metadata
	// across all files.
	SectionsSkipped int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Missing + r.Empty + r.AlreadyConverted
}

// Untouched returns the number of files left as they were.
func (r BatchResult) Untouched() int {
	return r.Missing + r.Empty + r.AlreadyConverted
}

func (r *BatchResult) add(fr FileResult) {
	r.SectionsSkipped += fr.Skipped
	switch fr.Status {
	case StatusConverted:
		r.Converted++
	case StatusMissing:
		r.Missing++
	case StatusEmpty:
		r.Empty++
	case StatusAlreadyConverted:
		r.AlreadyConverted++
	}
}

// ConvertFile converts a single file and writes the records back in place,
// or next to it when cfg.OutputSuffix is set. Missing files, files that
// yield no sections, and files that are already converted are reported on w
// and left untouched. Only I/O failures on an existing file return an error.
func ConvertFile(path string, cfg types.ConvertConfig, w io.Writer) (FileResult, error) {
	name := filepath.Base(path)
	fr := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "warning: %s not found\n", name)
			fr.Status = StatusMissing
			return fr, nil
		}
		return fr, fmt.Errorf("stat %s: %w", path, err)
	}

	fmt.Fprintf(w, "converting %s\n", name)

	data, err := os.ReadFile(path)
	if err != nil {
		return fr, fmt.Errorf("reading %s: %w", path, err)
	}

	if render.IsConverted(string(data)) {
		fmt.Fprintf(w, "warning: %s is already converted, skipping\n", name)
		fr.Status = StatusAlreadyConverted
		return fr, nil
	}

	res := extract.ExtractDocument(string(data), extract.DefaultResolvers(cfg.DefaultPersona))
	for i := 0; i < res.Skipped; i++ {
		fmt.Fprintln(w, "warning: skipping section - cannot extract topic/subtopic")
	}
	fr.Skipped = res.Skipped
	fr.Records = len(res.Records)

	if len(res.Records) == 0 {
		fmt.Fprintf(w, "warning: no content generated for %s\n", name)
		fr.Status = StatusEmpty
		return fr, nil
	}

	out := render.Document(res.Records)
	fr.OutputPath = OutputPath(path, cfg.OutputSuffix)
	if err := fileutil.AtomicWrite(fr.OutputPath, []byte(out), info.Mode().Perm()); err != nil {
		return fr, err
	}
	fr.Bytes = len(out)
	fr.Status = StatusConverted

	fmt.Fprintf(w, "converted %s (%d sections, %d bytes written)\n", filepath.Base(fr.OutputPath), fr.Records, fr.Bytes)
	return fr, nil
}

// ConvertPaths converts each file in order, printing per-file status and a
// summary to w. It stops at the first I/O error and returns the counts so
// far together with that error.
func ConvertPaths(paths []string, cfg types.ConvertConfig, w io.Writer) (BatchResult, error) {
	var result BatchResult
	for _, p := range paths {
		fr, err := ConvertFile(p, cfg, w)
		if err != nil {
			return result, err
		}
		result.add(fr)
	}

	fmt.Fprintln(w, "conversion complete")
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d missing, %d empty, %d already converted, %d untouched (total: %d)\n",
		result.Converted, result.Missing, result.Empty, result.AlreadyConverted, result.Untouched(), result.Total())
	return result, nil
}

// Inspect reads and extracts a file without writing anything.
func Inspect(path string, cfg types.ConvertConfig) (extract.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if render.IsConverted(string(data)) {
		return extract.Result{}, fmt.Errorf("%s: %w", path, ErrAlreadyConverted)
	}
	return extract.ExtractDocument(string(data), extract.DefaultResolvers(cfg.DefaultPersona)), nil
}

// OutputPath returns where the records for path are written. An empty
// suffix means in place.
func OutputPath(path, suffix string) string {
	if suffix == "" {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix
}

// InputPaths resolves the configured file list against cfg.KnowledgeDir.
// Absolute entries are used as is.
func InputPaths(cfg types.ConvertConfig) []string {
	paths := make([]string, len(cfg.Files))
	for i, f := range cfg.Files {
		if filepath.IsAbs(f) || cfg.KnowledgeDir == "" {
			paths[i] = f
			continue
		}
		paths[i] = filepath.Join(cfg.KnowledgeDir, f)
	}
	return paths
}
