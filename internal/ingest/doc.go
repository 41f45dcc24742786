// Package ingest reads raw meter CSV files and builds the unified corpus for
// one pipeline run.
//
// Validation is file-at-a-time: each file either contributes a table of
// MeterRecord rows or is rejected with a reason, never both. Row-level faults
// (unparseable lines, dates, or kwh values) drop the row and increment a
// counter without invalidating the file. The combiner folds per-file results
// into a single Corpus plus the run's IngestionOutcome.
package ingest
