// Copyright Fouinot Research, 2026. All rights reserved.

package types

// Record is one parsed station data line. Records are constructed per
// line and discarded after evaluation; nothing is retained across lines.
type Record struct {
	// Month, Day, Year are the date components of the observation.
	Month int
	Day   int
	Year  int

	// Hour, Minute are the time components of the observation.
	Hour   int
	Minute int

	// Date is the raw "MM/DD/YYYY" token as it appeared in the file.
	Date string

	// Time is the raw "hh:mm" token as it appeared in the file.
	Time string

	// Fields is the full tab-split field list, including the combined
	// date/time field at index 0.
	Fields []string
}
