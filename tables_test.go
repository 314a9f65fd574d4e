package dtparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMonth(t *testing.T) {
	for name, want := range map[string]int{
		"jan": 1, "JANUARY": 1, "Sept": 9, "sep": 9, "May": 5, "dec": 12,
	} {
		m, ok := LookupMonth(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, m, name)
	}
	_, ok := LookupMonth("Janu")
	assert.False(t, ok)
	_, ok = LookupMonth("")
	assert.False(t, ok)
}

func TestLookupWeekday(t *testing.T) {
	wd, ok := LookupWeekday("thurs")
	assert.True(t, ok)
	assert.Equal(t, time.Thursday, wd)

	wd, ok = LookupWeekday("SUNDAY")
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, wd)

	_, ok = LookupWeekday("someday")
	assert.False(t, ok)
}

func TestLookupAMPM(t *testing.T) {
	pm, ok := LookupAMPM("PM")
	assert.True(t, ok)
	assert.True(t, pm)

	pm, ok = LookupAMPM("a")
	assert.True(t, ok)
	assert.False(t, pm)

	_, ok = LookupAMPM("noon")
	assert.False(t, ok)
}

func TestLookupTimezone(t *testing.T) {
	loc, ok := LookupTimezone("pst", nil)
	require.True(t, ok)
	_, off := time.Date(2020, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -8*3600, off)

	for _, name := range []string{"UTC", "gmt", "Z", "UT"} {
		loc, ok = LookupTimezone(name, nil)
		assert.True(t, ok, name)
		assert.Equal(t, time.UTC, loc, name)
	}

	custom := time.FixedZone("EST", -3*3600)
	loc, ok = LookupTimezone("EST", map[string]*time.Location{"EST": custom})
	assert.True(t, ok)
	assert.Equal(t, custom, loc)

	_, ok = LookupTimezone("XYZ", nil)
	assert.False(t, ok)
}
