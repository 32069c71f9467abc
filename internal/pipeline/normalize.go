package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"giclean/internal/dataprocessing"
	"giclean/pkg/contracts/domain"
)

// NormalizeHeadersStep trims whitespace from header names and drops columns
// with no header name at all, which the exports grow when someone leaves a
// stray cell above the data region.
type NormalizeHeadersStep struct{}

// NewNormalizeHeadersStep creates a header normalization step.
func NewNormalizeHeadersStep() *NormalizeHeadersStep {
	return &NormalizeHeadersStep{}
}

func (s *NormalizeHeadersStep) ID() string   { return "normalize_headers" }
func (s *NormalizeHeadersStep) Name() string { return "Normalize Header Names" }

func (s *NormalizeHeadersStep) Execute(ctx context.Context, state *RunState) error {
	t := state.Table
	if t.Header == nil {
		return NewColumnNotFoundError(s.ID(), "(no header promoted)")
	}
	var keep []int
	for i, name := range t.Header {
		if strings.TrimSpace(name) == "" {
			slog.DebugContext(ctx, "dropping unnamed column", slog.Int("index", i))
			continue
		}
		keep = append(keep, i)
	}
	projectColumns(t, keep)
	for i, name := range t.Header {
		t.Header[i] = strings.TrimSpace(name)
	}
	return nil
}

// MapColumnsStep keeps only the columns known to the database schema,
// renames them to their snake_case database names, and drops the rest.
// Unknown headers are logged so schema drift in the export shows up in the
// run log instead of the database.
type MapColumnsStep struct {
	mapping map[string]string
	drop    []string
}

// NewMapColumnsStep creates a column mapping step.
func NewMapColumnsStep(mapping map[string]string, drop []string) *MapColumnsStep {
	return &MapColumnsStep{mapping: mapping, drop: drop}
}

func (s *MapColumnsStep) ID() string   { return "map_columns" }
func (s *MapColumnsStep) Name() string { return "Map Columns To Schema" }

func (s *MapColumnsStep) Execute(ctx context.Context, state *RunState) error {
	t := state.Table
	if t.Header == nil {
		return NewColumnNotFoundError(s.ID(), "(no header promoted)")
	}

	dropped := make(map[string]bool, len(s.drop))
	for _, name := range s.drop {
		dropped[name] = true
	}

	var keep []int
	var unknown []string
	for i, name := range t.Header {
		if dropped[name] {
			continue
		}
		if _, ok := s.mapping[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		keep = append(keep, i)
	}
	if len(unknown) > 0 {
		slog.WarnContext(ctx, "unknown columns dropped during mapping",
			slog.Any("columns", unknown))
	}

	projectColumns(t, keep)
	for i, name := range t.Header {
		t.Header[i] = s.mapping[name]
	}
	return nil
}

// TrimCellsStep strips surrounding whitespace from every data cell. This
// runs only in the database export flow; the reporting flows keep the
// literal cell values the dashboard was built against.
type TrimCellsStep struct{}

// NewTrimCellsStep creates a cell trimming step.
func NewTrimCellsStep() *TrimCellsStep {
	return &TrimCellsStep{}
}

func (s *TrimCellsStep) ID() string   { return "trim_cells" }
func (s *TrimCellsStep) Name() string { return "Trim Cell Whitespace" }

func (s *TrimCellsStep) Execute(ctx context.Context, state *RunState) error {
	dataprocessing.TrimTable(state.Table)
	return nil
}

// NormalizeDatesStep rewrites the named date columns as YYYY-MM-DD.
// Unparseable values are blanked and counted; a handful is normal in the
// raw exports, so they warn instead of failing the run.
type NormalizeDatesStep struct {
	columns []string
}

// NewNormalizeDatesStep creates a date normalization step for the given
// mapped column names.
func NewNormalizeDatesStep(columns []string) *NormalizeDatesStep {
	return &NormalizeDatesStep{columns: columns}
}

func (s *NormalizeDatesStep) ID() string   { return "normalize_dates" }
func (s *NormalizeDatesStep) Name() string { return "Normalize Date Columns" }

func (s *NormalizeDatesStep) Execute(ctx context.Context, state *RunState) error {
	t := state.Table
	for _, col := range s.columns {
		idx := t.ColumnIndex(col)
		if idx == -1 {
			continue
		}
		failures := 0
		for _, row := range t.Rows {
			if idx >= len(row) {
				continue
			}
			normalized, ok := dataprocessing.NormalizeDate(row[idx])
			if !ok {
				failures++
				row[idx] = ""
				continue
			}
			row[idx] = normalized
		}
		if failures > 0 {
			slog.WarnContext(ctx, "unparseable dates blanked",
				slog.String("column", col),
				slog.Int("count", failures))
		}
	}
	return nil
}

// NormalizeNumbersStep strips thousands separators from the named numeric
// columns.
type NormalizeNumbersStep struct {
	columns []string
}

// NewNormalizeNumbersStep creates a numeric normalization step for the given
// mapped column names.
func NewNormalizeNumbersStep(columns []string) *NormalizeNumbersStep {
	return &NormalizeNumbersStep{columns: columns}
}

func (s *NormalizeNumbersStep) ID() string   { return "normalize_numbers" }
func (s *NormalizeNumbersStep) Name() string { return "Normalize Numeric Columns" }

func (s *NormalizeNumbersStep) Execute(ctx context.Context, state *RunState) error {
	t := state.Table
	for _, col := range s.columns {
		idx := t.ColumnIndex(col)
		if idx == -1 {
			continue
		}
		for _, row := range t.Rows {
			if idx >= len(row) {
				continue
			}
			row[idx] = dataprocessing.NormalizeNumber(row[idx])
		}
	}
	return nil
}

// projectColumns rewrites the table keeping only the columns at the given
// indexes, in the given order.
func projectColumns(t *domain.Table, keep []int) {
	header := make([]string, len(keep))
	for i, idx := range keep {
		header[i] = t.Header[idx]
	}
	t.Header = header
	for r, row := range t.Rows {
		projected := make([]string, len(keep))
		for i, idx := range keep {
			if idx < len(row) {
				projected[i] = row[idx]
			}
		}
		t.Rows[r] = projected
	}
}
