package station

import (
	"strings"
	"testing"
)

func TestParseRecord(t *testing.T) {
	line := "03/21/2003 12:30\tQ\t45.2\t180.1\t85000"

	rec, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}

	if rec.Month != 3 || rec.Day != 21 || rec.Year != 2003 {
		t.Errorf("date = %d/%d/%d, want 3/21/2003", rec.Month, rec.Day, rec.Year)
	}
	if rec.Hour != 12 || rec.Minute != 30 {
		t.Errorf("time = %d:%d, want 12:30", rec.Hour, rec.Minute)
	}
	if rec.Date != "03/21/2003" || rec.Time != "12:30" {
		t.Errorf("raw tokens = %q %q, want %q %q", rec.Date, rec.Time, "03/21/2003", "12:30")
	}
	if len(rec.Fields) != 5 {
		t.Errorf("len(Fields) = %d, want 5", len(rec.Fields))
	}
	if rec.Fields[2] != "45.2" {
		t.Errorf("Fields[2] = %q, want %q", rec.Fields[2], "45.2")
	}
}

func TestParseRecordMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no space in first field", "03/21/2003\t1\t2"},
		{"two-part date", "03/2003 12:30\t1\t2"},
		{"missing minutes", "03/21/2003 12\t1\t2"},
		{"alpha month", "xx/21/2003 12:30\t1\t2"},
		{"alpha hour", "03/21/2003 aa:30\t1\t2"},
		{"empty line", ""},
		{"prose line", "Station Vaulx-en-Velin, 45.78N 4.92E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecord(tt.line); err == nil {
				t.Errorf("ParseRecord(%q) error = nil, want error", tt.line)
			}
		})
	}
}

func TestParseRecordKeepsDateTimeFieldAtZero(t *testing.T) {
	rec, err := ParseRecord("12/31/2014 23:00\tQ\t0.0")
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	if !strings.Contains(rec.Fields[0], " ") {
		t.Errorf("Fields[0] = %q, want the combined date/time field", rec.Fields[0])
	}
}
