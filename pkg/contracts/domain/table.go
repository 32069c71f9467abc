package domain

// Table is an in-memory tabular dataset. Header is nil for raw input where
// the header row still sits inside Rows; PromoteHeader separates it once the
// leading metadata rows have been stripped.
type Table struct {
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows"`
}

// NewTable creates a table from raw rows with no promoted header.
func NewTable(rows [][]string) *Table {
	return &Table{Rows: rows}
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Width returns the number of columns, taken from the header when promoted
// and from the widest row otherwise.
func (t *Table) Width() int {
	if t.Header != nil {
		return len(t.Header)
	}
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// ColumnIndex returns the index of the first column whose header equals name
// exactly, including whitespace. Returns -1 when absent or when no header
// has been promoted.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at the given row and column, or "" when the row is
// shorter than col. Short rows are common in spreadsheet exports where
// trailing empty cells are omitted.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{}
	if t.Header != nil {
		c.Header = append([]string(nil), t.Header...)
	}
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// PadRows extends every row with empty cells so each row has exactly width
// cells. Rows longer than width are left untouched.
func (t *Table) PadRows(width int) {
	for i, row := range t.Rows {
		for len(row) < width {
			row = append(row, "")
		}
		t.Rows[i] = row
	}
}
