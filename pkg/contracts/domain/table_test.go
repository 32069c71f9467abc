package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ColumnIndex(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		lookup string
		want   int
	}{
		{
			name:   "exact match",
			header: []string{"Material", "Type", "State"},
			lookup: "Type",
			want:   1,
		},
		{
			name:   "case sensitive",
			header: []string{"Material", "Type"},
			lookup: "type",
			want:   -1,
		},
		{
			name:   "whitespace significant",
			header: []string{"Type "},
			lookup: "Type",
			want:   -1,
		},
		{
			name:   "first match wins",
			header: []string{"Qty", "Type", "Type"},
			lookup: "Type",
			want:   1,
		},
		{
			name:   "no header promoted",
			header: nil,
			lookup: "Type",
			want:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := &Table{Header: tt.header}
			assert.Equal(t, tt.want, tbl.ColumnIndex(tt.lookup))
		})
	}
}

func TestTable_Cell(t *testing.T) {
	tbl := &Table{
		Header: []string{"A", "B", "C"},
		Rows: [][]string{
			{"1", "2", "3"},
			{"4"}, // short row, trailing cells omitted
		},
	}

	assert.Equal(t, "2", tbl.Cell(0, 1))
	assert.Equal(t, "", tbl.Cell(1, 2), "short row reads as empty")
	assert.Equal(t, "", tbl.Cell(5, 0), "out of range row reads as empty")
}

func TestTable_Clone(t *testing.T) {
	orig := &Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}},
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Header[0] = "X"
	clone.Rows[0][0] = "9"
	assert.Equal(t, "A", orig.Header[0])
	assert.Equal(t, "1", orig.Rows[0][0])
}

func TestTable_PadRows(t *testing.T) {
	tbl := &Table{Rows: [][]string{{"1"}, {"1", "2", "3"}}}
	tbl.PadRows(3)

	assert.Equal(t, [][]string{{"1", "", ""}, {"1", "2", "3"}}, tbl.Rows)
}

func TestCanonicalOrder_ContainsKeyColumn(t *testing.T) {
	assert.Contains(t, CanonicalOrder, KeyColumn)
}

func TestColumnMapping_CoversCanonicalOrder(t *testing.T) {
	for _, name := range CanonicalOrder {
		_, ok := ColumnMapping[name]
		assert.True(t, ok, "canonical column %q has no database mapping", name)
	}
}
