package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"giclean/pkg/contracts/domain"
)

// CSVWriteOptions configures CSV serialization behavior
type CSVWriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM so Excel opens the file correctly
	BOMPrefix bool
}

// WriteCSV writes the table to path as UTF-8 CSV, header first when one has
// been promoted. The destination directory must already exist; the caller
// decides whether a missing directory is an error (it is, for every recipe).
func WriteCSV(path string, t *domain.Table, options CSVWriteOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if t.Header != nil {
		if err := writer.Write(t.Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for i, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	slog.Info("wrote csv output",
		slog.String("path", path),
		slog.Int("rows", t.RowCount()))
	return nil
}
