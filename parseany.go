// Package dtparse parses free-form date strings without a layout, in the
// manner of python's dateutil parser.
//
// Ambiguous numeric dates are resolved by a fixed policy that can be tuned
// with DayFirst and YearFirst; fields the input leaves out come from a
// default timestamp. Fuzzy parses skip text that is not part of the date.
//
//	t, err := dtparse.ParseAny("Sat Oct 11 17:13:46 UTC 2003")
//	t, err = dtparse.ParseAny("10/11/12", dtparse.DayFirst(true))
//	t, skipped, err := dtparse.ParseFuzzy("Today is 25 January 2023, a sunny day")
package dtparse

import "time"

// Span is a piece of input a fuzzy parse skipped; Text == input[Start:End].
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Result is a successful parse.
type Result struct {
	Time time.Time
	// HasZone reports whether Time's location came from the input rather
	// than from the configuration.
	HasZone bool
	// Skipped is filled for FuzzyWithTokens parses.
	Skipped []Span
}

// Parse parses datestr under cfg.
func Parse(datestr string, cfg Config) (Result, error) {
	p := newParser(datestr, cfg)
	if err := p.parse(); err != nil {
		return Result{}, err
	}
	t, hasZone, err := p.finalize()
	if err != nil {
		return Result{}, err
	}
	res := Result{Time: t, HasZone: hasZone}
	if cfg.FuzzyWithTokens {
		res.Skipped = p.skipped()
	}
	return res, nil
}

// ParseAny parses an unknown date format, detecting the layout as it goes.
// On failure it returns the zero time and a *ParseError.
func ParseAny(datestr string, opts ...ParserOption) (time.Time, error) {
	res, err := Parse(datestr, NewConfig(opts...))
	return res.Time, err
}

// ParseIn is ParseAny with zoneless input read in loc.
func ParseIn(datestr string, loc *time.Location, opts ...ParserOption) (time.Time, error) {
	return ParseAny(datestr, append(opts[:len(opts):len(opts)], InLocation(loc))...)
}

// ParseLocal is ParseIn using time.Local.
func ParseLocal(datestr string, opts ...ParserOption) (time.Time, error) {
	return ParseIn(datestr, time.Local, opts...)
}

// MustParse is ParseAny that panics when the input cannot be parsed.
func MustParse(datestr string, opts ...ParserOption) time.Time {
	t, err := ParseAny(datestr, opts...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// ParseFuzzy parses the date inside surrounding text and reports the text
// it skipped, in input order.
func ParseFuzzy(datestr string, opts ...ParserOption) (time.Time, []Span, error) {
	res, err := Parse(datestr, NewConfig(append(opts[:len(opts):len(opts)], FuzzyWithTokens(true))...))
	return res.Time, res.Skipped, err
}

// NewConfig applies opts to the default Config.
func NewConfig(opts ...ParserOption) Config {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
