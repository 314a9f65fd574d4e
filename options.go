package dtparse

import "time"

// WeekdayDirection picks which way a bare weekday ("Tuesday") walks from the
// default date.
type WeekdayDirection uint8

const (
	// WeekdayForward resolves to the first matching day on or after the
	// default date.
	WeekdayForward WeekdayDirection = iota
	// WeekdayBackward resolves to the last matching day on or before it.
	WeekdayBackward
	// WeekdayNearest takes whichever of the two is fewer days away.
	WeekdayNearest
)

// Config is the parse policy for one call. The zero value is the default
// policy: month first, no fuzziness, defaults taken from today's midnight.
type Config struct {
	// DayFirst reads an ambiguous leading day/month pair as day first.
	DayFirst bool
	// YearFirst reads the first of three ambiguous values as the year.
	YearFirst bool
	// Fuzzy skips text that is not part of a date instead of failing.
	Fuzzy bool
	// FuzzyWithTokens is Fuzzy plus a report of what was skipped.
	FuzzyWithTokens bool
	// Default supplies every field the input leaves unset.
	Default time.Time
	// IgnoreTZ drops any parsed zone name or offset.
	IgnoreTZ bool
	// TZInfos resolves zone names ahead of the built-in table.
	TZInfos map[string]*time.Location
	// WeekdaySearch resolves weekday-only input.
	WeekdaySearch WeekdayDirection
	// Location holds results that carry no zone of their own. When nil the
	// location of Default is used, or time.Local for a zero Default.
	Location *time.Location
}

// ParserOption adjusts a Config for one parse.
type ParserOption func(*Config)

// DayFirst reads 01/02/2006 as 1 February instead of January 2.
func DayFirst(dayFirst bool) ParserOption {
	return func(c *Config) { c.DayFirst = dayFirst }
}

// PreferMonthFirst is the inverse of DayFirst; month first is the default.
func PreferMonthFirst(preferMonthFirst bool) ParserOption {
	return func(c *Config) { c.DayFirst = !preferMonthFirst }
}

// YearFirst reads the first of three ambiguous date numbers as the year.
func YearFirst(yearFirst bool) ParserOption {
	return func(c *Config) { c.YearFirst = yearFirst }
}

// Fuzzy skips words that are not part of a date instead of failing.
func Fuzzy(fuzzy bool) ParserOption {
	return func(c *Config) { c.Fuzzy = fuzzy }
}

// FuzzyWithTokens is Fuzzy that also reports the skipped spans in Result.
func FuzzyWithTokens(fuzzy bool) ParserOption {
	return func(c *Config) { c.FuzzyWithTokens = fuzzy }
}

// Default sets the timestamp missing fields are copied from.
func Default(t time.Time) ParserOption {
	return func(c *Config) { c.Default = t }
}

// IgnoreTZ drops zone names and offsets found in the input.
func IgnoreTZ(ignore bool) ParserOption {
	return func(c *Config) { c.IgnoreTZ = ignore }
}

// TZInfos adds zone names, eg {"BRST": America/Sao_Paulo}.
func TZInfos(tzinfos map[string]*time.Location) ParserOption {
	return func(c *Config) { c.TZInfos = tzinfos }
}

// WeekdaySearch sets the way a bare weekday walks from the default date.
func WeekdaySearch(dir WeekdayDirection) ParserOption {
	return func(c *Config) { c.WeekdaySearch = dir }
}

// InLocation interprets zoneless input in loc.
func InLocation(loc *time.Location) ParserOption {
	return func(c *Config) { c.Location = loc }
}

func (c Config) fuzzy() bool {
	return c.Fuzzy || c.FuzzyWithTokens
}

func (c Config) location() *time.Location {
	switch {
	case c.Location != nil:
		return c.Location
	case !c.Default.IsZero():
		return c.Default.Location()
	}
	return time.Local
}

// defaultTime is the wall clock of Default, or midnight today, in the result
// location.
func (c Config) defaultTime() time.Time {
	loc := c.location()
	d := c.Default
	if d.IsZero() {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), loc)
}
