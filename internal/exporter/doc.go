// Package exporter serializes cleaned tables to the output formats the
// reporting layer ingests: UTF-8 CSV (with optional BOM for Excel) and
// native xlsx workbooks, both under dated filenames.
package exporter
