package pipeline

import (
	"errors"
	"fmt"
)

// ErrorType classifies a step failure
type ErrorType string

const (
	ErrorTypeMalformedInput    ErrorType = "malformed_input"
	ErrorTypeColumnNotFound    ErrorType = "column_not_found"
	ErrorTypeDirectoryNotFound ErrorType = "directory_not_found"
	ErrorTypeOutputExists      ErrorType = "output_exists"
	ErrorTypeExecution         ErrorType = "execution"
)

// StepError is a pipeline failure with the step it came from and enough
// context to diagnose the input file without re-running.
type StepError struct {
	Type    ErrorType              `json:"type"`
	Step    string                 `json:"step,omitempty"`
	Message string                 `json:"message"`
	Cause   error                  `json:"cause,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e == nil {
		return "unknown pipeline error"
	}
	if e.Step != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Step, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewMalformedInputError reports a table smaller than a strip step expects.
// Expected vs actual counts are carried so the operator can spot a truncated
// or mis-exported source file.
func NewMalformedInputError(step, dimension string, expected, actual int) *StepError {
	return &StepError{
		Type:    ErrorTypeMalformedInput,
		Step:    step,
		Message: fmt.Sprintf("input has %d %s, need at least %d", actual, dimension, expected),
		Context: map[string]interface{}{
			"dimension": dimension,
			"expected":  expected,
			"actual":    actual,
		},
	}
}

// NewColumnNotFoundError reports a required header missing from the input.
func NewColumnNotFoundError(step, column string) *StepError {
	return &StepError{
		Type:    ErrorTypeColumnNotFound,
		Step:    step,
		Message: fmt.Sprintf("column %q not found in header", column),
		Context: map[string]interface{}{
			"column": column,
		},
	}
}

// NewDirectoryNotFoundError reports a missing output directory. The writer
// never creates the target directory itself, so a typo in configuration
// fails here instead of writing somewhere unintended.
func NewDirectoryNotFoundError(step, dir string) *StepError {
	return &StepError{
		Type:    ErrorTypeDirectoryNotFound,
		Step:    step,
		Message: fmt.Sprintf("output directory does not exist: %s", dir),
		Context: map[string]interface{}{
			"directory": dir,
		},
	}
}

// NewOutputExistsError reports a filename collision with overwrite disabled.
func NewOutputExistsError(step, path string) *StepError {
	return &StepError{
		Type:    ErrorTypeOutputExists,
		Step:    step,
		Message: fmt.Sprintf("output file already exists: %s", path),
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

// WrapError wraps an error with step context, preserving an existing
// StepError's classification.
func WrapError(err error, step, message string) *StepError {
	if err == nil {
		return nil
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		if stepErr.Step == "" {
			stepErr.Step = step
		}
		return stepErr
	}
	return &StepError{
		Type:    ErrorTypeExecution,
		Step:    step,
		Message: message,
		Cause:   err,
	}
}

// GetErrorType returns the classification of an error
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ""
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Type
	}
	return ErrorTypeExecution
}

// IsMalformedInput reports whether the error is a malformed-input failure
func IsMalformedInput(err error) bool {
	return GetErrorType(err) == ErrorTypeMalformedInput
}

// IsColumnNotFound reports whether the error is a missing-column failure
func IsColumnNotFound(err error) bool {
	return GetErrorType(err) == ErrorTypeColumnNotFound
}

// IsDirectoryNotFound reports whether the error is a missing-directory failure
func IsDirectoryNotFound(err error) bool {
	return GetErrorType(err) == ErrorTypeDirectoryNotFound
}
