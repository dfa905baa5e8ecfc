// Copyright Fouinot Research, 2026. All rights reserved.

// Package pipeline drives the extraction scan over one station data
// file: classify each line as preamble or data, filter data records by
// month/day/hour, and project the requested parameter columns.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fouinot/idmp-extract/internal/filter"
	"github.com/fouinot/idmp-extract/internal/station"
	"github.com/fouinot/idmp-extract/pkg/types"
)

// preambleLines is the fixed station file header length. Lines with a
// 1-based index below this are discarded unread. A file shorter than
// the preamble simply yields zero records.
const preambleLines = 33

// maxLineSize bounds a single data line; station lines are a few
// hundred bytes at most.
const maxLineSize = 1024 * 1024

// Request is the resolved configuration for one extraction run. It is
// built once from user input and read-only afterwards.
type Request struct {
	// Month, Day, Hour constrain the record's temporal components. Zero
	// values are unconstrained.
	Month filter.RangeFilter
	Day   filter.RangeFilter
	Hour  filter.RangeFilter

	// Params lists the requested parameters, in output order.
	Params []types.Parameter

	// NoHeader suppresses the header row.
	NoHeader bool
}

// Selects reports whether rec passes every active temporal filter.
// Inactive filters impose no condition: the record is selected when the
// number of passing active filters equals the number of active filters,
// so a request with no filters selects everything.
func (r Request) Selects(rec types.Record) bool {
	active, passed := 0, 0
	for _, sf := range []struct {
		f filter.RangeFilter
		v int
	}{
		{r.Month, rec.Month},
		{r.Day, rec.Day},
		{r.Hour, rec.Hour},
	} {
		if !sf.f.Active() {
			continue
		}
		active++
		if sf.f.Matches(sf.v) {
			passed++
		}
	}
	return passed == active
}

// Summary holds counts from one scan.
type Summary struct {
	// Scanned is the number of data lines examined (preamble excluded).
	Scanned int

	// Matched is the number of records that passed the filters and were
	// emitted.
	Matched int

	// Malformed is the number of data lines that could not be parsed or
	// were missing a requested column. Such lines never match and never
	// abort the scan.
	Malformed int
}

// Scan reads src line by line, in order, exactly once. Data records
// that pass the request's filters and carry every requested column are
// handed to emit; an emit error aborts the scan.
func Scan(src io.Reader, req Request, emit func(types.Record) error) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo < preambleLines {
			continue
		}
		sum.Scanned++

		rec, err := station.ParseRecord(scanner.Text())
		if err != nil {
			sum.Malformed++
			continue
		}
		if !req.Selects(rec) {
			continue
		}
		if !coversColumns(rec, req.Params) {
			sum.Malformed++
			continue
		}

		if err := emit(rec); err != nil {
			return sum, err
		}
		sum.Matched++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("reading input: %w", err)
	}
	return sum, nil
}

// Run scans src and writes matching rows to dst as tab-separated,
// newline-terminated text, preceded by an optional header row.
func Run(src io.Reader, dst io.Writer, req Request) (Summary, error) {
	w := bufio.NewWriter(dst)

	if !req.NoHeader {
		if err := writeRow(w, headerRow(req.Params)); err != nil {
			return Summary{}, fmt.Errorf("writing header: %w", err)
		}
	}

	sum, err := Scan(src, req, func(rec types.Record) error {
		if err := writeRow(w, projectRow(rec, req.Params)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	})
	if err != nil {
		return sum, err
	}

	if err := w.Flush(); err != nil {
		return sum, fmt.Errorf("writing output: %w", err)
	}
	return sum, nil
}

// headerRow names the date/time columns followed by the requested codes.
func headerRow(params []types.Parameter) []string {
	row := []string{"MM/DD/YYYY", "hh:mm"}
	for _, p := range params {
		row = append(row, p.Code)
	}
	return row
}

// projectRow renders one matching record: date, time, then each
// requested parameter's field at its catalog column, in request order.
func projectRow(rec types.Record, params []types.Parameter) []string {
	row := make([]string, 0, len(params)+2)
	row = append(row, rec.Date, rec.Time)
	for _, p := range params {
		row = append(row, rec.Fields[p.Column])
	}
	return row
}

// coversColumns reports whether rec carries every requested column.
func coversColumns(rec types.Record, params []types.Parameter) bool {
	for _, p := range params {
		if p.Column >= len(rec.Fields) {
			return false
		}
	}
	return true
}

func writeRow(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(strings.Join(fields, "\t")); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
