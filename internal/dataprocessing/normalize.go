package dataprocessing

import (
	"strings"
	"time"

	"giclean/pkg/contracts/domain"
)

// dateFormats are tried in order when normalizing date cells. The exports
// mix US and ISO styles depending on which terminal produced them.
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"01-02-2006",
	"02-01-2006",
}

// NormalizeDate parses a date cell against the known export formats and
// returns it as YYYY-MM-DD. Empty input stays empty; unparseable input
// returns ok=false with the original value untouched by the caller.
func NormalizeDate(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", true
	}
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, trimmed); err == nil {
			return d.Format("2006-01-02"), true
		}
	}
	return value, false
}

// NormalizeNumber strips thousands separators and surrounding whitespace
// from a numeric cell. Empty cells stay empty; the value is not validated
// as a number here, the database load surfaces genuine garbage.
func NormalizeNumber(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
}

// TrimTable strips surrounding whitespace from every cell. Header names are
// left alone; header cleanup is its own step with its own rules.
func TrimTable(t *domain.Table) {
	for _, row := range t.Rows {
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
	}
}

// ColumnFill describes how populated a single column is.
type ColumnFill struct {
	Name     string
	Total    int
	Empty    int
	FillRate float64
}

// ColumnFillStats computes per-column fill rates for a table with a promoted
// header. The runner warns on sparsely filled columns so a broken export is
// visible before it reaches the database.
func ColumnFillStats(t *domain.Table) []ColumnFill {
	if t.Header == nil || t.RowCount() == 0 {
		return nil
	}
	stats := make([]ColumnFill, len(t.Header))
	for i, name := range t.Header {
		empty := 0
		for r := range t.Rows {
			if t.Cell(r, i) == "" {
				empty++
			}
		}
		stats[i] = ColumnFill{
			Name:     name,
			Total:    t.RowCount(),
			Empty:    empty,
			FillRate: float64(t.RowCount()-empty) / float64(t.RowCount()),
		}
	}
	return stats
}
