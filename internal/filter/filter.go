// Copyright Fouinot Research, 2026. All rights reserved.

// Package filter implements the month/day/hour constraints applied to
// station records. Filters are parsed and validated once, at
// configuration time; records are matched against the resulting values
// without revalidation.
package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Slot identifies one temporal filter dimension.
type Slot int

const (
	Month Slot = iota
	Day
	Hour
)

// slotInfo holds the display name and inclusive legal domain per slot.
var slotInfo = [...]struct {
	name   string
	lo, hi int
}{
	Month: {"month", 1, 12},
	Day:   {"day", 1, 31},
	Hour:  {"hour", 0, 23},
}

// Name returns the display name of the slot.
func (s Slot) Name() string { return slotInfo[s].name }

// Domain returns the inclusive legal range for the slot.
func (s Slot) Domain() (lo, hi int) {
	return slotInfo[s].lo, slotInfo[s].hi
}

// ConfigError reports an invalid filter supplied at configuration time.
type ConfigError struct {
	Slot Slot
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s filter: %s", e.Slot.Name(), e.Msg)
}

type kind int

const (
	unconstrained kind = iota
	exact
	span
)

// RangeFilter is a validated constraint on one temporal slot. The zero
// value is unconstrained; build constrained filters with Parse.
type RangeFilter struct {
	kind   kind
	lo, hi int
}

// Active reports whether the filter constrains anything.
func (f RangeFilter) Active() bool { return f.kind != unconstrained }

// Matches reports whether v satisfies the filter. An unconstrained
// filter matches every value.
func (f RangeFilter) Matches(v int) bool {
	switch f.kind {
	case exact:
		return v == f.lo
	case span:
		return f.lo <= v && v <= f.hi
	default:
		return true
	}
}

// Parse builds a RangeFilter for slot from raw user input: "" for no
// constraint, a single value, or an ascending "lo,hi" pair.
func Parse(slot Slot, raw string) (RangeFilter, error) {
	if raw == "" {
		return RangeFilter{}, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) > 2 {
		return RangeFilter{}, &ConfigError{slot, "at most 2 values allowed"}
	}

	vals := make([]int, len(parts))
	for i, part := range parts {
		v, err := parseValue(slot, strings.TrimSpace(part))
		if err != nil {
			return RangeFilter{}, err
		}
		vals[i] = v
	}

	if len(vals) == 1 {
		return RangeFilter{kind: exact, lo: vals[0], hi: vals[0]}, nil
	}
	if vals[0] >= vals[1] {
		return RangeFilter{}, &ConfigError{slot, "range values must be ascending"}
	}
	return RangeFilter{kind: span, lo: vals[0], hi: vals[1]}, nil
}

// parseValue converts one token to an integer within the slot's domain.
// Fractional input is rejected outright: truncating "3.7" to 3 would
// silently accept a value the user never asked for.
func parseValue(slot Slot, tok string) (int, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ConfigError{slot, fmt.Sprintf("value %q is not a number", tok)}
	}
	if f != math.Trunc(f) {
		return 0, &ConfigError{slot, fmt.Sprintf("value %q must be an integer, not a float", tok)}
	}

	v := int(f)
	lo, hi := slot.Domain()
	if v < lo || v > hi {
		return 0, &ConfigError{slot, fmt.Sprintf("value %d must be between %d and %d", v, lo, hi)}
	}
	return v, nil
}
