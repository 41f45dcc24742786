package ingest

import (
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"energydash/pkg/contracts/domain"
)

// RejectReason identifies why a file was rejected as a whole.
type RejectReason string

const (
	RejectUnreadable       RejectReason = "unreadable"
	RejectEmptyFile        RejectReason = "empty_file"
	RejectMissingColumns   RejectReason = "missing_columns"
	RejectNoRows           RejectReason = "no_rows"
	RejectTooManyMalformed RejectReason = "too_many_malformed_lines"
)

// dateLayouts are the accepted textual date representations, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

const (
	colDate     = "date"
	colKWH      = "kwh"
	colTime     = "time"
	colBuilding = "building_name"
)

// FileResult is the tagged outcome of validating one file: either an accepted
// table of records, or a rejection reason with context. Exactly one of the
// two for every invocation.
type FileResult struct {
	Filename string
	Records  []domain.MeterRecord

	Rejected bool
	Reason   RejectReason
	// ColumnsFound carries the header that was actually present, for the
	// missing-columns rejection log.
	ColumnsFound []string

	DroppedDates  int
	DroppedValues int
	SkippedLines  int
}

// Accepted reports whether the file contributed to the corpus.
func (r FileResult) Accepted() bool { return !r.Rejected }

// ValidateOptions carries data-quality policy into the validator.
type ValidateOptions struct {
	// MaxSkippedLines rejects the file when more than this many lines could
	// not be parsed at all. Zero means no limit.
	MaxSkippedLines int
	Logger          *slog.Logger
}

// ValidateFile reads one CSV file and produces its FileResult. File-level
// faults (unreadable file, missing required columns, no rows) reject the
// whole file; row-level faults drop the row and are counted.
func ValidateFile(path string, opts ValidateOptions) FileResult {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	result := FileResult{Filename: filepath.Base(path)}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("failed to open file",
			slog.String("file", result.Filename),
			slog.String("error", err.Error()))
		return reject(result, RejectUnreadable)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil || len(header) == 0 {
		logger.Warn("file has no parseable header", slog.String("file", result.Filename))
		return reject(result, RejectEmptyFile)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}

	// Required columns are matched by exact, case-sensitive name.
	dateIdx, hasDate := columns[colDate]
	kwhIdx, hasKWH := columns[colKWH]
	if !hasDate || !hasKWH {
		result.ColumnsFound = header
		logger.Warn("file missing required columns",
			slog.String("file", result.Filename),
			slog.Any("expected", []string{colDate, colKWH}),
			slog.Any("got", header))
		return reject(result, RejectMissingColumns)
	}

	timeIdx, hasTime := columns[colTime]
	buildingIdx, hasBuilding := columns[colBuilding]
	derivedName := BuildingNameFromFilename(result.Filename)

	field := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	dataLines := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line: a row-level fault, skipped and counted.
			result.SkippedLines++
			continue
		}
		dataLines++

		date, ok := parseDate(field(row, dateIdx))
		if !ok {
			result.DroppedDates++
			continue
		}

		kwh, ok := parseKWH(field(row, kwhIdx))
		if !ok {
			result.DroppedValues++
			continue
		}

		record := domain.MeterRecord{
			Date:         date,
			KWH:          kwh,
			BuildingName: derivedName,
			SourceFile:   result.Filename,
		}
		if hasTime {
			record.TimeSlot = field(row, timeIdx)
		}
		if hasBuilding {
			if name := field(row, buildingIdx); name != "" {
				record.BuildingName = name
			}
		}

		result.Records = append(result.Records, record)
	}

	if dataLines == 0 {
		logger.Warn("file is empty", slog.String("file", result.Filename))
		return reject(result, RejectNoRows)
	}

	if opts.MaxSkippedLines > 0 && result.SkippedLines > opts.MaxSkippedLines {
		logger.Warn("file exceeds malformed line limit",
			slog.String("file", result.Filename),
			slog.Int("skipped_lines", result.SkippedLines),
			slog.Int("limit", opts.MaxSkippedLines))
		return reject(result, RejectTooManyMalformed)
	}

	if result.DroppedDates > 0 {
		logger.Warn("invalid dates removed",
			slog.String("file", result.Filename),
			slog.Int("count", result.DroppedDates))
	}
	if result.DroppedValues > 0 {
		logger.Warn("invalid kwh values removed",
			slog.String("file", result.Filename),
			slog.Int("count", result.DroppedValues))
	}
	if !hasBuilding {
		logger.Info("derived building name from filename",
			slog.String("file", result.Filename),
			slog.String("building_name", derivedName))
	}
	logger.Info("file accepted",
		slog.String("file", result.Filename),
		slog.Int("rows", len(result.Records)))

	return result
}

// reject marks the result as rejected and clears any partial rows so the
// corpus never sees them.
func reject(result FileResult, reason RejectReason) FileResult {
	result.Rejected = true
	result.Reason = reason
	result.Records = nil
	return result
}

// parseDate coerces one date cell. Values matching none of the accepted
// layouts are a row-level drop.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseKWH coerces one kwh cell. Thousands separators are tolerated; NaN and
// infinities fail the finiteness invariant and drop like unparseable values.
func parseKWH(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// BuildingNameFromFilename derives the synthesized building name for a file
// that carries no building_name column: extension stripped, underscores
// replaced with spaces, each word title-cased. The derivation is per-file, so
// every row of the file gets the same name.
func BuildingNameFromFilename(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, word := range words {
		runes := []rune(word)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
