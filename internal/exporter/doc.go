// Package exporter writes the pipeline's output artifacts.
//
// Exports are pass-through serializations of the aggregator's outputs: the
// cleaned combined table and the two summary tables as CSV, and all four
// derived tables as one Excel workbook for review.
package exporter
