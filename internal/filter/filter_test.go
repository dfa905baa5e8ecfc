// Copyright Fouinot Research, 2026. All rights reserved.

package filter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		slot   Slot
		raw    string
		errMsg string
	}{
		{"three values", Month, "1,2,3", "at most 2 values"},
		{"non-numeric", Month, "march", "not a number"},
		{"fractional value", Month, "3.7", "must be an integer, not a float"},
		{"fractional range bound", Hour, "8,17.5", "must be an integer, not a float"},
		{"month too small", Month, "0", "between 1 and 12"},
		{"month too large", Month, "13", "between 1 and 12"},
		{"day too large", Day, "32", "between 1 and 31"},
		{"hour too large", Hour, "24", "between 0 and 23"},
		{"descending range", Hour, "17,8", "must be ascending"},
		{"equal range bounds", Day, "5,5", "must be ascending"},
		{"empty token", Month, ",", "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.slot, tt.raw)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errMsg)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.slot, cfgErr.Slot)
		})
	}
}

func TestParseUnconstrained(t *testing.T) {
	f, err := Parse(Month, "")
	require.NoError(t, err)
	assert.False(t, f.Active())
	for v := -5; v <= 40; v++ {
		assert.True(t, f.Matches(v), "unconstrained must match %d", v)
	}
}

func TestParseExact(t *testing.T) {
	for v := 1; v <= 12; v++ {
		f, err := Parse(Month, strconv.Itoa(v))
		require.NoError(t, err)
		require.True(t, f.Active())
		for w := 1; w <= 12; w++ {
			assert.Equal(t, v == w, f.Matches(w), "Exact(%d).Matches(%d)", v, w)
		}
	}
}

func TestParseRange(t *testing.T) {
	f, err := Parse(Hour, "8,17")
	require.NoError(t, err)
	require.True(t, f.Active())

	tests := []struct {
		v    int
		want bool
	}{
		{7, false},
		{8, true},
		{12, true},
		{17, true},
		{18, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Matches(tt.v), "Range(8,17).Matches(%d)", tt.v)
	}
}

func TestParseAcceptsIntegralFloat(t *testing.T) {
	// "3.0" is integral, so it is accepted as 3.
	f, err := Parse(Month, "3.0")
	require.NoError(t, err)
	assert.True(t, f.Matches(3))
	assert.False(t, f.Matches(4))
}

func TestParseTrimsSpaces(t *testing.T) {
	f, err := Parse(Day, " 5 , 10 ")
	require.NoError(t, err)
	assert.True(t, f.Matches(7))
	assert.False(t, f.Matches(11))
}

func TestSlotDomains(t *testing.T) {
	tests := []struct {
		slot   Slot
		name   string
		lo, hi int
	}{
		{Month, "month", 1, 12},
		{Day, "day", 1, 31},
		{Hour, "hour", 0, 23},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.slot.Name())
		lo, hi := tt.slot.Domain()
		assert.Equal(t, tt.lo, lo)
		assert.Equal(t, tt.hi, hi)
	}
}
