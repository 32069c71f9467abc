package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"giclean/internal/exporter"
)

// Output extensions supported by the write step.
const (
	ExtXLSX = ".xlsx"
	ExtCSV  = ".csv"
)

// WriteStep serializes the cleaned table to a dated file in the recipe's
// target directory.
type WriteStep struct {
	targetDir string
	ext       string
	overwrite bool
	bom       bool
}

// NewWriteStep creates a write step targeting dir with the given extension.
// With overwrite false a filename collision fails the run; bom controls the
// UTF-8 BOM on CSV output.
func NewWriteStep(dir, ext string, overwrite, bom bool) *WriteStep {
	return &WriteStep{targetDir: dir, ext: ext, overwrite: overwrite, bom: bom}
}

func (s *WriteStep) ID() string   { return "write_output" }
func (s *WriteStep) Name() string { return "Write Output File" }

func (s *WriteStep) Execute(ctx context.Context, state *RunState) error {
	// Fail fast on a missing target rather than creating it: a mistyped
	// configured directory must not silently grow a new output location.
	info, err := os.Stat(s.targetDir)
	if err != nil || !info.IsDir() {
		return NewDirectoryNotFoundError(s.ID(), s.targetDir)
	}

	name := exporter.OutputFilename(state.BaseName, state.RunDate, s.ext)
	path := filepath.Join(s.targetDir, name)

	if !s.overwrite {
		if _, err := os.Stat(path); err == nil {
			return NewOutputExistsError(s.ID(), path)
		}
	}

	switch s.ext {
	case ExtXLSX:
		err = exporter.WriteXLSX(path, state.Table)
	case ExtCSV:
		err = exporter.WriteCSV(path, state.Table, exporter.CSVWriteOptions{BOMPrefix: s.bom})
	default:
		return WrapError(os.ErrInvalid, s.ID(), "unsupported output extension "+s.ext)
	}
	if err != nil {
		return WrapError(err, s.ID(), "failed to write output")
	}

	state.OutputPath = path
	return nil
}
