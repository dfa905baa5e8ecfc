// Copyright Fouinot Research, 2026. All rights reserved.

// Package catalog defines the fixed set of station parameters and their
// column positions within a data line.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fouinot/idmp-extract/pkg/types"
)

// reservedColumns is the number of leading fields that never hold a
// measurement; the combined date/time field occupies them.
const reservedColumns = 2

// parameters maps each code to its column index and description. Column
// positions follow the Vaulx-en-Velin station file layout.
var parameters = map[string]types.Parameter{
	"alts": {Code: "alts", Column: 2, Description: "altitude of the sun"},
	"azis": {Code: "azis", Column: 3, Description: "azimuth of the sun (from North to East)"},
	"evg":  {Code: "evg", Column: 4, Description: "global horizontal illuminance"},
	"evd":  {Code: "evd", Column: 5, Description: "diffuse horizontal illuminance"},
	"evgn": {Code: "evgn", Column: 6, Description: "global vertical north illuminance"},
	"evge": {Code: "evge", Column: 7, Description: "global vertical east illuminance"},
	"evgs": {Code: "evgs", Column: 8, Description: "global vertical south illuminance"},
	"evgw": {Code: "evgw", Column: 9, Description: "global vertical west illuminance"},
	"eeg":  {Code: "eeg", Column: 10, Description: "global horizontal irradiance"},
	"eed":  {Code: "eed", Column: 11, Description: "diffuse horizontal irradiance"},
	"lvz":  {Code: "lvz", Column: 12, Description: "zenith luminance (11 degree aperture)"},
	"rh":   {Code: "rh", Column: 13, Description: "relative humidity"},
	"wd":   {Code: "wd", Column: 14, Description: "wind direction (from North to East)"},
	"ws":   {Code: "ws", Column: 15, Description: "wind speed"},
	"dbt":  {Code: "dbt", Column: 16, Description: "dry bulb temperature"},
	"cvf":  {Code: "cvf", Column: 17, Description: "illuminance shadow band correction factor"},
	"cef":  {Code: "cef", Column: 18, Description: "irradiance shadow band correction factor"},
	"ees":  {Code: "ees", Column: 19, Description: "direct horizontal irradiance"},
	"uva":  {Code: "uva", Column: 20, Description: "global horizontal UVA irradiance"},
	"uvb":  {Code: "uvb", Column: 21, Description: "global horizontal UVB irradiance"},
}

func init() {
	if err := checkColumns(parameters); err != nil {
		panic(err)
	}
}

// checkColumns verifies that every catalog entry points at a distinct
// measurement column past the reserved date/time fields.
func checkColumns(params map[string]types.Parameter) error {
	seen := make(map[int]string, len(params))
	for code, p := range params {
		if p.Column < reservedColumns {
			return fmt.Errorf("parameter %q: column %d is reserved for date/time", code, p.Column)
		}
		if other, ok := seen[p.Column]; ok {
			return fmt.Errorf("parameters %q and %q share column %d", other, code, p.Column)
		}
		seen[p.Column] = code
	}
	return nil
}

// UnknownParameterError reports a requested code absent from the catalog.
type UnknownParameterError struct {
	Code string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q: run \"idmp-extract params\" to list valid parameters", e.Code)
}

// Lookup returns the parameter for code. Matching is case-insensitive.
func Lookup(code string) (types.Parameter, bool) {
	p, ok := parameters[strings.ToLower(strings.TrimSpace(code))]
	return p, ok
}

// Resolve validates a requested code list and returns the matching
// parameters in request order. The first unknown code fails the whole
// request with an UnknownParameterError.
func Resolve(codes []string) ([]types.Parameter, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("no parameter selected")
	}
	params := make([]types.Parameter, 0, len(codes))
	for _, code := range codes {
		p, ok := Lookup(code)
		if !ok {
			return nil, &UnknownParameterError{Code: strings.TrimSpace(code)}
		}
		params = append(params, p)
	}
	return params, nil
}

// Entries returns every catalog parameter, sorted by code.
func Entries() []types.Parameter {
	entries := make([]types.Parameter, 0, len(parameters))
	for _, p := range parameters {
		entries = append(entries, p)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })
	return entries
}

// Codes returns every catalog code, sorted.
func Codes() []string {
	codes := make([]string, 0, len(parameters))
	for code := range parameters {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
