package pipeline

import (
	"context"
	"sync"
	"time"

	"giclean/pkg/contracts/domain"
)

// Step is a single transformation in a cleaning recipe. Steps run strictly
// in sequence; each consumes the previous step's full output via RunState.
type Step interface {
	// ID returns the unique identifier for this step
	ID() string

	// Name returns the human-readable name for this step
	Name() string

	// Execute runs the step against the current run state
	Execute(ctx context.Context, state *RunState) error
}

// RunState carries the in-memory table and run metadata through a recipe.
// One RunState per input file; nothing is shared across runs.
type RunState struct {
	Recipe   string
	Source   string
	BaseName string
	RunDate  time.Time
	Table    *domain.Table

	// OutputPath is set by the write step, empty for recipes that do not
	// write (log_trend).
	OutputPath string

	RowsIn  int
	RowsOut int

	Steps []*StepState
}

// NewRunState creates run state for a single input file.
func NewRunState(recipe, source, baseName string, runDate time.Time, table *domain.Table) *RunState {
	return &RunState{
		Recipe:   recipe,
		Source:   source,
		BaseName: baseName,
		RunDate:  runDate,
		Table:    table,
		RowsIn:   table.RowCount(),
	}
}

// StepStatus represents the current status of a step
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// StepState is the runtime record of one step execution.
type StepState struct {
	mu        sync.Mutex
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    StepStatus `json:"status"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	RowsAfter int        `json:"rows_after"`
	Error     error      `json:"error,omitempty"`
}

// NewStepState creates a pending step state.
func NewStepState(id, name string) *StepState {
	return &StepState{ID: id, Name: name, Status: StepStatusPending}
}

// Start marks the step as active
func (s *StepState) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.StartTime = &now
	s.Status = StepStatusActive
}

// Complete marks the step as completed, recording the surviving row count
func (s *StepState) Complete(rowsAfter int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.EndTime = &now
	s.Status = StepStatusCompleted
	s.RowsAfter = rowsAfter
}

// Fail marks the step as failed with the given error
func (s *StepState) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.EndTime = &now
	s.Status = StepStatusFailed
	s.Error = err
}

// Duration returns how long the step ran
func (s *StepState) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.StartTime == nil {
		return 0
	}
	if s.EndTime != nil {
		return s.EndTime.Sub(*s.StartTime)
	}
	return time.Since(*s.StartTime)
}
