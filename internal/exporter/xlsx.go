package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"giclean/pkg/contracts/domain"
)

const xlsxSheetName = "Sheet1"

// WriteXLSX writes the table to path as a single-sheet workbook, header row
// first when one has been promoted.
func WriteXLSX(path string, t *domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	rowNum := 1
	if t.Header != nil {
		if err := writeRow(f, rowNum, t.Header); err != nil {
			return err
		}
		rowNum++
	}
	for _, row := range t.Rows {
		if err := writeRow(f, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("wrote xlsx output",
		slog.String("path", path),
		slog.Int("rows", t.RowCount()))
	return nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell name for row %d: %w", rowNum, err)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(xlsxSheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
