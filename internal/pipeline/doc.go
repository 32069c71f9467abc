// Package pipeline implements the delivery-order cleaning recipes: fixed
// sequences of strip, reorder, filter, normalize, and write steps executed
// strictly in order over one in-memory table per input file.
//
// The five recipes mirror the recorded cleaning flows:
//
//   - gi_trend_clean: strip, reorder to canonical order, drop blank-key
//     rows, write dated xlsx
//   - log_trend: strip only, no output (dry run of the log flow)
//   - log_raw: strip, write dated xlsx
//   - return_clean: strip (two leading columns), write dated UTF-8 csv
//   - gi_db_clean: rename to database schema, normalize dates and numbers,
//     write dated csv
//
// All failure modes are explicit: a table smaller than a strip expects, a
// required header missing, a target directory absent, or a filename
// collision all abort the run with a typed StepError.
package pipeline
