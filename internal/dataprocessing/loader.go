package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"giclean/pkg/contracts/domain"
)

// ErrEmptyInput is returned when a source file yields no rows at all.
var ErrEmptyInput = errors.New("input file contains no rows")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadTable reads a tabular input file into a raw table. The first row of
// the result is whatever the file starts with; header promotion happens in
// the pipeline, after the leading metadata rows are stripped.
func LoadTable(path string) (*domain.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// loadWorkbook reads the first sheet of an Excel workbook. The macros always
// operated on the active (first) sheet of the raw export.
func loadWorkbook(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	slog.Debug("loaded workbook",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("rows", len(rows)))
	return domain.NewTable(rows), nil
}

// loadCSV reads a CSV file, decoding UTF-8 directly and falling back through
// the legacy Windows encodings the SAP exports occasionally arrive in.
func loadCSV(path string) (*domain.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		data, err = decodeLegacy(path, data)
		if err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // raw exports have ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	slog.Debug("loaded csv", slog.String("path", path), slog.Int("rows", len(rows)))
	return domain.NewTable(rows), nil
}

// decodeLegacy converts non-UTF-8 input, trying Windows-1252 before Latin-1.
func decodeLegacy(path string, data []byte) ([]byte, error) {
	fallbacks := []struct {
		name string
		enc  encoding.Encoding
	}{
		{"windows-1252", charmap.Windows1252},
		{"latin-1", charmap.ISO8859_1},
	}
	for _, fb := range fallbacks {
		decoded, err := fb.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		slog.Info("decoded csv with fallback encoding",
			slog.String("path", path),
			slog.String("encoding", fb.name))
		return decoded, nil
	}
	return nil, fmt.Errorf("failed to decode %s with any known encoding", path)
}
