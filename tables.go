package dtparse

import (
	"time"

	"golang.org/x/text/cases"
)

// Name tables. Keys are case folded once at init; nothing writes to these
// maps afterwards so they are safe for concurrent parses.
var (
	months   = map[string]int{}
	weekdays = map[string]time.Weekday{}
	ampm     = map[string]bool{}
	// jump words carry no meaning of their own
	jumps = map[string]bool{}
	// hms units: 0 hour, 1 minute, 2 second
	hmsUnits  = map[string]int{}
	modifiers = map[string]weekdayModifier{}
	ordinals  = map[string]bool{}
	utcZones  = map[string]bool{}
	// offsets in seconds east of UTC
	zoneOffsets = map[string]int{}
)

func init() {
	fold := cases.Fold()
	add := func(names []string, set func(string)) {
		for _, n := range names {
			set(fold.String(n))
		}
	}

	for i, names := range [][]string{
		{"Jan", "January"},
		{"Feb", "February"},
		{"Mar", "March"},
		{"Apr", "April"},
		{"May"},
		{"Jun", "June"},
		{"Jul", "July"},
		{"Aug", "August"},
		{"Sep", "Sept", "September"},
		{"Oct", "October"},
		{"Nov", "November"},
		{"Dec", "December"},
	} {
		month := i + 1
		add(names, func(n string) { months[n] = month })
	}

	for wd, names := range map[time.Weekday][]string{
		time.Monday:    {"Mon", "Monday"},
		time.Tuesday:   {"Tue", "Tues", "Tuesday"},
		time.Wednesday: {"Wed", "Wednesday"},
		time.Thursday:  {"Thu", "Thur", "Thurs", "Thursday"},
		time.Friday:    {"Fri", "Friday"},
		time.Saturday:  {"Sat", "Saturday"},
		time.Sunday:    {"Sun", "Sunday"},
	} {
		wd := wd
		add(names, func(n string) { weekdays[n] = wd })
	}

	add([]string{"am", "a"}, func(n string) { ampm[n] = false })
	add([]string{"pm", "p"}, func(n string) { ampm[n] = true })

	add([]string{"at", "on", "and", "ad", "m", "t", "of", "st", "nd", "rd", "th"},
		func(n string) { jumps[n] = true })
	add([]string{"st", "nd", "rd", "th"}, func(n string) { ordinals[n] = true })

	for unit, names := range [][]string{
		{"h", "hr", "hrs", "hour", "hours"},
		{"m", "min", "mins", "minute", "minutes"},
		{"s", "sec", "secs", "second", "seconds"},
	} {
		unit := unit
		add(names, func(n string) { hmsUnits[n] = unit })
	}

	add([]string{"next"}, func(n string) { modifiers[n] = modNext })
	add([]string{"last", "previous"}, func(n string) { modifiers[n] = modLast })
	add([]string{"this"}, func(n string) { modifiers[n] = modThis })

	add([]string{"UTC", "GMT", "UT", "Z"}, func(n string) {
		utcZones[n] = true
		zoneOffsets[n] = 0
	})

	const h = 3600
	for name, off := range map[string]int{
		"WET": 0, "WEST": h, "BST": h, "IST": 5*h + 1800,
		"CET": h, "CEST": 2 * h, "EET": 2 * h, "EEST": 3 * h, "MSK": 3 * h,
		"EST": -5 * h, "EDT": -4 * h, "CST": -6 * h, "CDT": -5 * h,
		"MST": -7 * h, "MDT": -6 * h, "PST": -8 * h, "PDT": -7 * h,
		"AKST": -9 * h, "AKDT": -8 * h, "HST": -10 * h,
		"SGT": 8 * h, "HKT": 8 * h, "AWST": 8 * h, "JST": 9 * h, "KST": 9 * h,
		"ACST": 9*h + 1800, "AEST": 10 * h, "AEDT": 11 * h,
		"NZST": 12 * h, "NZDT": 13 * h,
	} {
		off := off
		add([]string{name}, func(n string) { zoneOffsets[n] = off })
	}
}

// LookupMonth returns the month number 1-12 for a month name or abbreviation.
func LookupMonth(name string) (int, bool) {
	m, ok := months[cases.Fold().String(name)]
	return m, ok
}

// LookupWeekday returns the weekday for an English weekday name or
// abbreviation.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[cases.Fold().String(name)]
	return wd, ok
}

// LookupAMPM reports whether name is a meridiem marker and if so whether it
// is PM.
func LookupAMPM(name string) (pm bool, ok bool) {
	pm, ok = ampm[cases.Fold().String(name)]
	return pm, ok
}

// LookupTimezone resolves a zone name. Entries in tzinfos take precedence
// over the built-in abbreviations.
func LookupTimezone(name string, tzinfos map[string]*time.Location) (*time.Location, bool) {
	return lookupZone(name, cases.Fold().String(name), tzinfos)
}

func lookupZone(name, folded string, tzinfos map[string]*time.Location) (*time.Location, bool) {
	if loc, ok := tzinfos[name]; ok && loc != nil {
		return loc, true
	}
	for k, loc := range tzinfos {
		if loc != nil && cases.Fold().String(k) == folded {
			return loc, true
		}
	}
	if utcZones[folded] {
		return time.UTC, true
	}
	if off, ok := zoneOffsets[folded]; ok {
		return time.FixedZone(name, off), true
	}
	return nil, false
}
