// Package analytics computes the derived tables from the unified corpus.
//
// Every function is a pure reduction over a slice of MeterRecord: group,
// reduce, round, sort. Each tolerates an empty corpus by returning an empty
// result of the correct shape.
package analytics
