package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"giclean/pkg/contracts/domain"
)

func TestWriteStep_DirectoryNotFound(t *testing.T) {
	state := newTestState(t, domain.NewTable([][]string{{"a"}}))
	step := NewWriteStep(filepath.Join(t.TempDir(), "does-not-exist"), ExtXLSX, false, false)

	err := step.Execute(context.Background(), state)
	require.Error(t, err)
	assert.True(t, IsDirectoryNotFound(err))
	assert.Empty(t, state.OutputPath)
}

func TestWriteStep_TargetIsFile(t *testing.T) {
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	state := newTestState(t, domain.NewTable([][]string{{"a"}}))
	err := NewWriteStep(notADir, ExtXLSX, false, false).Execute(context.Background(), state)
	assert.True(t, IsDirectoryNotFound(err))
}

func TestWriteStep_OutputExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "input_20250314.xlsx")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	state := newTestState(t, domain.NewTable([][]string{{"a"}}))

	t.Run("collision fails without overwrite", func(t *testing.T) {
		err := NewWriteStep(dir, ExtXLSX, false, false).Execute(context.Background(), state)
		require.Error(t, err)
		assert.Equal(t, ErrorTypeOutputExists, GetErrorType(err))
	})

	t.Run("overwrite replaces the file", func(t *testing.T) {
		require.NoError(t, NewWriteStep(dir, ExtXLSX, true, false).Execute(context.Background(), state))
		assert.Equal(t, existing, state.OutputPath)
	})
}

func TestWriteStep_WritesDatedXLSX(t *testing.T) {
	dir := t.TempDir()
	table := &domain.Table{
		Header: []string{"Material", "Type"},
		Rows:   [][]string{{"M-1", "ZLF"}},
	}
	state := newTestState(t, table)

	require.NoError(t, NewWriteStep(dir, ExtXLSX, false, false).Execute(context.Background(), state))
	assert.Equal(t, filepath.Join(dir, "input_20250314.xlsx"), state.OutputPath)

	f, err := excelize.OpenFile(state.OutputPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Material", "Type"}, {"M-1", "ZLF"}}, rows)
}

func TestWriteStep_WritesCSVWithBOM(t *testing.T) {
	dir := t.TempDir()
	table := &domain.Table{
		Header: []string{"Material"},
		Rows:   [][]string{{"M-1"}},
	}
	state := newTestState(t, table)

	require.NoError(t, NewWriteStep(dir, ExtCSV, false, true).Execute(context.Background(), state))

	data, err := os.ReadFile(state.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	assert.Equal(t, "Material\nM-1\n", string(data[3:]))
}
