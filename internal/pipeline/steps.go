package pipeline

import (
	"context"
	"log/slog"

	"giclean/pkg/contracts/domain"
)

// StripRowsStep removes a fixed number of leading metadata rows. The raw
// SAP exports carry report banners and filter summaries above the header.
type StripRowsStep struct {
	count int
}

// NewStripRowsStep creates a step that removes the first count rows.
func NewStripRowsStep(count int) *StripRowsStep {
	return &StripRowsStep{count: count}
}

func (s *StripRowsStep) ID() string   { return "strip_rows" }
func (s *StripRowsStep) Name() string { return "Strip Leading Rows" }

func (s *StripRowsStep) Execute(ctx context.Context, state *RunState) error {
	if s.count == 0 {
		return nil
	}
	// Something must remain below the stripped prefix.
	if state.Table.RowCount() < s.count+1 {
		return NewMalformedInputError(s.ID(), "rows", s.count+1, state.Table.RowCount())
	}
	state.Table.Rows = state.Table.Rows[s.count:]
	slog.DebugContext(ctx, "stripped leading rows",
		slog.Int("count", s.count),
		slog.Int("rows_remaining", state.Table.RowCount()))
	return nil
}

// StripColumnsStep removes a fixed number of leading columns from every row.
type StripColumnsStep struct {
	count int
}

// NewStripColumnsStep creates a step that removes the first count columns.
func NewStripColumnsStep(count int) *StripColumnsStep {
	return &StripColumnsStep{count: count}
}

func (s *StripColumnsStep) ID() string   { return "strip_columns" }
func (s *StripColumnsStep) Name() string { return "Strip Leading Columns" }

func (s *StripColumnsStep) Execute(ctx context.Context, state *RunState) error {
	if s.count == 0 {
		return nil
	}
	if state.Table.Width() < s.count+1 {
		return NewMalformedInputError(s.ID(), "columns", s.count+1, state.Table.Width())
	}
	if state.Table.Header != nil {
		state.Table.Header = state.Table.Header[s.count:]
	}
	for i, row := range state.Table.Rows {
		if len(row) <= s.count {
			state.Table.Rows[i] = []string{}
			continue
		}
		state.Table.Rows[i] = row[s.count:]
	}
	slog.DebugContext(ctx, "stripped leading columns", slog.Int("count", s.count))
	return nil
}

// StripRowAtStep removes the row at a fixed zero-based index. The macros
// delete "row 2" after the big strip, which is the first row below the
// header while the header still sits at index 0.
type StripRowAtStep struct {
	index int
}

// NewStripRowAtStep creates a step that removes the row at index.
func NewStripRowAtStep(index int) *StripRowAtStep {
	return &StripRowAtStep{index: index}
}

func (s *StripRowAtStep) ID() string   { return "strip_row_at" }
func (s *StripRowAtStep) Name() string { return "Strip Row At Index" }

func (s *StripRowAtStep) Execute(ctx context.Context, state *RunState) error {
	if s.index < 0 || s.index >= state.Table.RowCount() {
		return NewMalformedInputError(s.ID(), "rows", s.index+1, state.Table.RowCount())
	}
	state.Table.Rows = append(state.Table.Rows[:s.index], state.Table.Rows[s.index+1:]...)
	return nil
}

// PromoteHeaderStep turns the first remaining row into the table header so
// later steps can address columns by name.
type PromoteHeaderStep struct{}

// NewPromoteHeaderStep creates a header promotion step.
func NewPromoteHeaderStep() *PromoteHeaderStep {
	return &PromoteHeaderStep{}
}

func (s *PromoteHeaderStep) ID() string   { return "promote_header" }
func (s *PromoteHeaderStep) Name() string { return "Promote Header Row" }

func (s *PromoteHeaderStep) Execute(ctx context.Context, state *RunState) error {
	if state.Table.RowCount() == 0 {
		return NewMalformedInputError(s.ID(), "rows", 1, 0)
	}
	state.Table.Header = state.Table.Rows[0]
	state.Table.Rows = state.Table.Rows[1:]
	state.Table.PadRows(len(state.Table.Header))
	return nil
}

// ReorderStep rearranges columns into the canonical order expected by the
// reporting layer. Matching is exact and case-sensitive against the raw
// export headers.
type ReorderStep struct {
	order        []string
	allowMissing bool
}

// NewReorderStep creates a reorder step for the given canonical order. With
// allowMissing false a target name absent from the header fails the run;
// true restores the macros' silent skip.
func NewReorderStep(order []string, allowMissing bool) *ReorderStep {
	return &ReorderStep{order: order, allowMissing: allowMissing}
}

func (s *ReorderStep) ID() string   { return "reorder_columns" }
func (s *ReorderStep) Name() string { return "Reorder Columns" }

func (s *ReorderStep) Execute(ctx context.Context, state *RunState) error {
	t := state.Table
	if t.Header == nil {
		return NewColumnNotFoundError(s.ID(), "(no header promoted)")
	}
	for target, name := range s.order {
		// Positions before target already hold canonical columns, so the
		// first match at or after target is the macros' first match.
		found := -1
		for j := target; j < len(t.Header); j++ {
			if t.Header[j] == name {
				found = j
				break
			}
		}
		if found == -1 {
			if s.allowMissing {
				slog.WarnContext(ctx, "canonical column missing from input, skipping",
					slog.String("column", name))
				continue
			}
			return NewColumnNotFoundError(s.ID(), name)
		}
		if found != target {
			moveColumn(t, found, target)
		}
	}
	return nil
}

// moveColumn moves column from to position to (from > to), shifting the
// intervening columns one place right. Cell values travel with their column.
func moveColumn(t *domain.Table, from, to int) {
	moveCell := func(row []string) {
		if from >= len(row) {
			return
		}
		v := row[from]
		copy(row[to+1:from+1], row[to:from])
		row[to] = v
	}
	moveCell(t.Header)
	for _, row := range t.Rows {
		moveCell(row)
	}
}

// BlankFilterStep drops rows whose business-key column holds the literal
// empty string. No trimming: whitespace-only values count as present, which
// matches the source behavior the reporting layer was built against.
type BlankFilterStep struct {
	keyColumn string
}

// NewBlankFilterStep creates a blank-row filter keyed on keyColumn.
func NewBlankFilterStep(keyColumn string) *BlankFilterStep {
	return &BlankFilterStep{keyColumn: keyColumn}
}

func (s *BlankFilterStep) ID() string   { return "blank_filter" }
func (s *BlankFilterStep) Name() string { return "Drop Blank Rows" }

func (s *BlankFilterStep) Execute(ctx context.Context, state *RunState) error {
	t := state.Table
	idx := t.ColumnIndex(s.keyColumn)
	if idx == -1 {
		return NewColumnNotFoundError(s.ID(), s.keyColumn)
	}
	kept := t.Rows[:0]
	dropped := 0
	for _, row := range t.Rows {
		// A row too short to reach the key column has no value there.
		if idx >= len(row) || row[idx] == "" {
			dropped++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	if dropped > 0 {
		slog.DebugContext(ctx, "dropped blank rows",
			slog.String("key_column", s.keyColumn),
			slog.Int("dropped", dropped),
			slog.Int("remaining", len(kept)))
	}
	return nil
}
