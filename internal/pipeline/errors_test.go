package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StepError
		want string
	}{
		{
			name: "with step",
			err:  &StepError{Type: ErrorTypeMalformedInput, Step: "strip_rows", Message: "too short"},
			want: "[malformed_input] strip_rows: too short",
		},
		{
			name: "without step",
			err:  &StepError{Type: ErrorTypeExecution, Message: "boom"},
			want: "[execution] boom",
		},
		{
			name: "nil receiver",
			err:  nil,
			want: "unknown pipeline error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	t.Run("malformed input carries counts", func(t *testing.T) {
		err := NewMalformedInputError("strip_rows", "rows", 9, 3)
		assert.Equal(t, ErrorTypeMalformedInput, err.Type)
		assert.Contains(t, err.Error(), "input has 3 rows, need at least 9")
		assert.Equal(t, 9, err.Context["expected"])
		assert.Equal(t, 3, err.Context["actual"])
	})

	t.Run("column not found names the column", func(t *testing.T) {
		err := NewColumnNotFoundError("reorder_columns", "Ac.GI date")
		assert.True(t, IsColumnNotFound(err))
		assert.Contains(t, err.Error(), `"Ac.GI date"`)
	})

	t.Run("directory not found names the directory", func(t *testing.T) {
		err := NewDirectoryNotFoundError("write_output", "/missing/dir")
		assert.True(t, IsDirectoryNotFound(err))
		assert.Equal(t, "/missing/dir", err.Context["directory"])
	})

	t.Run("output exists names the path", func(t *testing.T) {
		err := NewOutputExistsError("write_output", "/out/Jan_GI_20250314.xlsx")
		assert.Equal(t, ErrorTypeOutputExists, err.Type)
		assert.Equal(t, "/out/Jan_GI_20250314.xlsx", err.Context["path"])
	})
}

func TestWrapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, WrapError(nil, "step", "msg"))
	})

	t.Run("plain errors become execution errors", func(t *testing.T) {
		cause := errors.New("disk full")
		err := WrapError(cause, "write_output", "failed to write output")
		require.NotNil(t, err)
		assert.Equal(t, ErrorTypeExecution, err.Type)
		assert.Equal(t, "write_output", err.Step)
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("classified errors keep their type", func(t *testing.T) {
		inner := NewColumnNotFoundError("reorder_columns", "Type")
		wrapped := WrapError(fmt.Errorf("step failed: %w", inner), "runner", "step failed")
		assert.Equal(t, ErrorTypeColumnNotFound, wrapped.Type)
		assert.Equal(t, "reorder_columns", wrapped.Step)
	})
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, ErrorType(""), GetErrorType(nil))
	assert.Equal(t, ErrorTypeExecution, GetErrorType(errors.New("anything")))
	assert.Equal(t, ErrorTypeMalformedInput, GetErrorType(NewMalformedInputError("s", "rows", 1, 0)))
	assert.True(t, IsMalformedInput(fmt.Errorf("wrapped: %w", NewMalformedInputError("s", "rows", 1, 0))))
}
