package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"giclean/internal/dataprocessing"
	"giclean/internal/infrastructure"
)

// sparseColumnThreshold is the fill rate below which a column is reported
// as suspiciously empty after cleaning.
const sparseColumnThreshold = 0.5

// Runner executes recipes over single input files. Each run is isolated:
// one table in memory, no state shared across runs.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner logging through the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run loads source, executes the recipe's steps in sequence, and returns
// the final run state. The returned state is valid even on error, with the
// failed step recorded in state.Steps.
func (r *Runner) Run(ctx context.Context, recipe *Recipe, source string, runDate time.Time) (*RunState, error) {
	runID := uuid.New().String()
	ctx = infrastructure.WithRunID(ctx, runID)
	logger := r.logger.With(
		slog.String("run_id", runID),
		slog.String("recipe", recipe.Name),
		slog.String("source", source))

	start := time.Now()
	logger.Info("starting cleaning run")

	table, err := dataprocessing.LoadTable(source)
	if err != nil {
		if errors.Is(err, dataprocessing.ErrEmptyInput) {
			return nil, NewMalformedInputError("load", "rows", 1, 0)
		}
		return nil, WrapError(err, "load", "failed to load input")
	}

	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	state := NewRunState(recipe.Name, source, base, runDate, table)

	for _, step := range recipe.Steps {
		if err := ctx.Err(); err != nil {
			return state, WrapError(err, step.ID(), "run cancelled")
		}

		stepState := NewStepState(step.ID(), step.Name())
		state.Steps = append(state.Steps, stepState)
		stepState.Start()

		if err := step.Execute(ctx, state); err != nil {
			wrapped := WrapError(err, step.ID(), "step failed")
			stepState.Fail(wrapped)
			logger.Error("step failed",
				slog.String("step", step.ID()),
				slog.String("error_type", string(GetErrorType(wrapped))),
				slog.String("error", wrapped.Error()))
			return state, wrapped
		}

		stepState.Complete(state.Table.RowCount())
		logger.Debug("step completed",
			slog.String("step", step.ID()),
			slog.Int("rows", state.Table.RowCount()),
			slog.Duration("duration", stepState.Duration()))
	}

	state.RowsOut = state.Table.RowCount()
	r.reportSparseColumns(logger, state)

	logger.Info("cleaning run complete",
		slog.Int("rows_in", state.RowsIn),
		slog.Int("rows_out", state.RowsOut),
		slog.String("output", state.OutputPath),
		slog.Duration("duration", time.Since(start)))
	return state, nil
}

// reportSparseColumns warns about columns that came out mostly empty, a
// reliable sign of a truncated or mis-exported source file.
func (r *Runner) reportSparseColumns(logger *slog.Logger, state *RunState) {
	for _, fill := range dataprocessing.ColumnFillStats(state.Table) {
		if fill.FillRate < sparseColumnThreshold {
			logger.Warn("column mostly empty after cleaning",
				slog.String("column", fill.Name),
				slog.Int("empty", fill.Empty),
				slog.Int("total", fill.Total))
		}
	}
}
