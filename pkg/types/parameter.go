// Copyright Fouinot Research, 2026. All rights reserved.

package types

// Parameter describes one measurable quantity recorded by the station.
type Parameter struct {
	// Code is the short lowercase token identifying the parameter (e.g. "dbt").
	Code string `json:"code" yaml:"code"`

	// Column is the tab-separated field index holding the value in a data
	// line. Columns 0 and 1 are reserved for the date/time prefix and never
	// appear here.
	Column int `json:"column" yaml:"column"`

	// Description is the human-readable name of the parameter.
	Description string `json:"description" yaml:"description"`
}
