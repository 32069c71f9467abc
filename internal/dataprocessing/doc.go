// Package dataprocessing reads raw warehouse exports into tables and
// provides the cell-level normalization the cleaning pipeline applies.
//
// Loading is format-dispatched: xlsx/xlsm workbooks are read from their
// first sheet, csv files are decoded as UTF-8 with a fallback through the
// legacy Windows encodings the terminals occasionally emit. The loader
// returns the raw grid untouched; stripping metadata rows and promoting
// the header are pipeline concerns.
package dataprocessing
