// Package station parses data lines from Vaulx-en-Velin IDMP station
// files.
package station

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fouinot/idmp-extract/pkg/types"
)

// ParseRecord parses one tab-separated data line. The first field must
// be a combined "MM/DD/YYYY hh:mm" date/time; the remaining fields are
// kept verbatim for projection. A malformed date/time yields an error
// and the caller treats the record as non-matching.
func ParseRecord(line string) (types.Record, error) {
	fields := strings.Split(line, "\t")

	dt := strings.SplitN(fields[0], " ", 2)
	if len(dt) != 2 {
		return types.Record{}, fmt.Errorf("malformed date/time field %q", fields[0])
	}

	date := strings.Split(dt[0], "/")
	if len(date) != 3 {
		return types.Record{}, fmt.Errorf("malformed date %q", dt[0])
	}
	clock := strings.Split(dt[1], ":")
	if len(clock) != 2 {
		return types.Record{}, fmt.Errorf("malformed time %q", dt[1])
	}

	rec := types.Record{
		Date:   dt[0],
		Time:   dt[1],
		Fields: fields,
	}

	var err error
	for _, c := range []struct {
		dst  *int
		tok  string
		what string
	}{
		{&rec.Month, date[0], "month"},
		{&rec.Day, date[1], "day"},
		{&rec.Year, date[2], "year"},
		{&rec.Hour, clock[0], "hour"},
		{&rec.Minute, clock[1], "minute"},
	} {
		*c.dst, err = strconv.Atoi(c.tok)
		if err != nil {
			return types.Record{}, fmt.Errorf("malformed %s %q", c.what, c.tok)
		}
	}

	return rec, nil
}
