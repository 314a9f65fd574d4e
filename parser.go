package dtparse

import (
	"strconv"
	"time"

	"golang.org/x/text/cases"
)

type mark uint8

const (
	// markFiller tokens are boundaries and jump words
	markFiller mark = iota
	markUsed
	markSkipped
)

// parser walks the tokens of one input left to right, filling in
// components. It is used for a single call and then dropped.
type parser struct {
	cfg    Config
	input  string
	tokens []Token
	marks  []mark
	fold   cases.Caser
	res    components

	// index of the last h/m/s unit word, for "10h30"
	unitIdx int
	unit    int
}

func newParser(datestr string, cfg Config) *parser {
	tokens := Tokenize(datestr)
	return &parser{
		cfg:     cfg,
		input:   datestr,
		tokens:  tokens,
		marks:   make([]mark, len(tokens)),
		fold:    cases.Fold(),
		unitIdx: -1,
	}
}

func (p *parser) parse() error {
	if !p.epoch() {
		for i := 0; i < len(p.tokens); {
			next, err := p.step(i)
			if err != nil {
				return err
			}
			i = next
		}
	}
	if !p.res.resolveYMD(p.cfg.DayFirst, p.cfg.YearFirst) {
		return newError(AmbiguousOverflow, p.input, "more than one year")
	}
	for _, m := range p.marks {
		if m == markUsed {
			return nil
		}
	}
	return newError(EmptyInput, p.input, "no date or time found")
}

func (p *parser) step(i int) (int, error) {
	switch p.tokens[i].Kind {
	case TokenNumeric:
		return p.numeric(i)
	case TokenAlpha:
		return p.alpha(i)
	case TokenSeparator:
		return p.separator(i)
	}
	return i + 1, nil
}

// epoch handles input that is nothing but a unix timestamp in seconds,
// milliseconds, microseconds or nanoseconds.
func (p *parser) epoch() bool {
	if len(p.tokens) != 1 || p.tokens[0].Kind != TokenNumeric {
		return false
	}
	s := p.tokens[0].Text
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return false
	}
	var t time.Time
	switch len(s) {
	case 10:
		t = time.Unix(n, 0)
	case 13:
		t = time.UnixMilli(n)
	case 16:
		t = time.UnixMicro(n)
	case 19:
		t = time.Unix(0, n)
	default:
		return false
	}
	t = t.UTC()
	r := &p.res
	r.setYear(t.Year(), 4)
	r.month.set(int(t.Month()))
	r.day.set(t.Day())
	r.hour.set(t.Hour())
	r.minute.set(t.Minute())
	r.second.set(t.Second())
	r.micro.set(t.Nanosecond() / 1000)
	r.tzName = "UTC"
	r.tzOffset.set(0)
	p.use(0)
	return true
}

func (p *parser) numeric(i int) (int, error) {
	r := &p.res
	tok := p.tokens[i]
	s, w := tok.Text, len(tok.Text)
	v, ok := p.num(i)
	if !ok {
		return i + 1, p.reject(i, AmbiguousOverflow, "number out of range")
	}

	// the date is complete, so a trailing 2 or 4 digit run is HH or HHMM
	if r.dateFull() && (w == 2 || w == 4) && !r.hour.ok &&
		!p.sep(i+1, ":") && p.unitIdxAt(i+1) < 0 {
		r.hour.set(atoi(s[:2]))
		if w == 4 {
			r.minute.set(atoi(s[2:]))
		}
		p.use(i)
		return i + 1, nil
	}

	switch {
	case w == 6 && r.dateCount() == 0 && !p.fractionAt(i+1):
		// YYMMDD
		r.setYear(atoi(s[:2]), 2)
		r.month.set(atoi(s[2:4]))
		r.day.set(atoi(s[4:]))
		p.use(i)
		return i + 1, nil
	case w == 6:
		// HHMMSS[.ffffff]
		if r.hour.ok || r.minute.ok || r.second.ok {
			return i + 1, p.reject(i, AmbiguousOverflow, "time already set")
		}
		r.hour.set(atoi(s[:2]))
		r.minute.set(atoi(s[2:4]))
		r.second.set(atoi(s[4:]))
		p.use(i)
		end := i + 1
		if us, next, ok := p.fraction(i+1, false); ok {
			r.micro.set(us)
			p.use(i+1, i+2)
			end = next
		}
		return end, nil
	case w == 8 || w == 12 || w == 14:
		// YYYYMMDD[HHMM[SS]]
		if r.dateCount() > 0 || (w > 8 && r.hour.ok) {
			return i + 1, p.reject(i, AmbiguousOverflow, "date already set")
		}
		r.setYear(atoi(s[:4]), 4)
		r.month.set(atoi(s[4:6]))
		r.day.set(atoi(s[6:8]))
		if w > 8 {
			r.hour.set(atoi(s[8:10]))
			r.minute.set(atoi(s[10:12]))
		}
		if w > 12 {
			r.second.set(atoi(s[12:]))
		}
		p.use(i)
		return i + 1, nil
	}

	// 10h 30m 5.5s
	end := i + 1
	us, fracEnd, hasFrac := p.fraction(i+1, false)
	if hasFrac {
		end = fracEnd
	}
	if at := p.unitIdxAt(end); at >= 0 {
		unit := hmsUnits[p.lower(at)]
		p.use(i, at)
		if hasFrac {
			p.use(i+1, i+2)
		}
		p.unitIdx, p.unit = at, unit
		return at + 1, p.assignUnit(i, unit, v, us, hasFrac)
	}
	if !hasFrac && i > 0 && p.unitIdx == i-1 && p.unit < 2 {
		p.use(i)
		return i + 1, p.assignUnit(i, p.unit+1, v, 0, false)
	}

	// HH:MM[:SS[.ffffff]]
	if p.sep(i+1, ":") {
		return p.clock(i, v)
	}

	// 2003-09-25, 10/11/12, 3.31.2014, 25-Jan-2023
	if sepTok := p.at(i + 1); sepTok.Kind == TokenSeparator &&
		(sepTok.Text == "-" || sepTok.Text == "/" || sepTok.Text == ".") {
		err := p.addDate(i, candidate{v, w})
		if !p.dateItem(i + 2) {
			return i + 1, err
		}
		p.use(i + 1)
		if e := p.addDateItem(i + 2); err == nil {
			err = e
		}
		end := i + 3
		if p.sep(i+3, sepTok.Text) && p.dateItem(i+4) {
			p.use(i + 3)
			if e := p.addDateItem(i + 4); err == nil {
				err = e
			}
			end = i + 5
		}
		return end, err
	}

	// 25th, 2nd Tuesday
	if p.isOrdinal(i + 1) {
		if wd := p.skipSpace(i + 2); p.isWeekday(wd) && v >= 1 && v <= 5 && r.nth == 0 {
			if r.day.ok {
				return i + 2, p.reject(i, AmbiguousOverflow, "day already set")
			}
			p.use(i, i+1)
			r.nth = v
			return i + 2, nil
		}
		p.use(i, i+1)
		if r.dateFull() {
			return i + 2, p.reject(i, AmbiguousOverflow, "no open date field")
		}
		return i + 2, p.assign(i, &r.day, v, "day")
	}

	// 10am, 10 pm
	if w <= 2 && v <= 12 {
		at := i + 1
		if p.at(at).Kind == TokenWhitespace {
			at++
		}
		if pm, ok := ampm[p.lower(at)]; ok {
			if r.hour.ok {
				// the marker goes with the rejected hour
				if err := p.reject(i, AmbiguousOverflow, "hour already set"); err != nil {
					return at + 1, err
				}
				return at + 1, p.reject(at, AmbiguousOverflow, "am/pm without an hour")
			}
			p.use(i, at)
			r.hour.set(adjustHour(v, pm))
			return at + 1, p.assign(at, &r.pm, b2i(pm), "am/pm")
		}
	}

	return i + 1, p.addDate(i, candidate{v, w})
}

// clock reads HH:MM[:SS[.ffffff]] with the hour at i.
func (p *parser) clock(i, hour int) (int, error) {
	r := &p.res
	p.use(i, i+1)
	if err := p.assign(i, &r.hour, hour, "hour"); err != nil {
		return i + 2, err
	}
	minute, ok := p.num(i + 2)
	if !ok {
		return i + 2, nil
	}
	p.use(i + 2)
	if err := p.assign(i+2, &r.minute, minute, "minute"); err != nil {
		return i + 3, err
	}
	if !p.sep(i+3, ":") {
		return i + 3, nil
	}
	second, ok := p.num(i + 4)
	if !ok {
		return i + 3, nil
	}
	p.use(i+3, i+4)
	if err := p.assign(i+4, &r.second, second, "second"); err != nil {
		return i + 5, err
	}
	if us, next, ok := p.fraction(i+5, true); ok {
		p.use(i+5, i+6)
		return next, p.assign(i+6, &r.micro, us, "fraction")
	}
	return i + 5, nil
}

func (p *parser) assignUnit(i, unit, v, us int, hasFrac bool) error {
	r := &p.res
	var whole, part *field
	var name string
	switch unit {
	case 0:
		whole, part, name = &r.hour, &r.minute, "hour"
	case 1:
		whole, part, name = &r.minute, &r.second, "minute"
	default:
		if err := p.assign(i, &r.second, v, "second"); err != nil || !hasFrac {
			return err
		}
		return p.assign(i, &r.micro, us, "fraction")
	}
	if err := p.assign(i, whole, v, name); err != nil || !hasFrac {
		return err
	}
	return p.assign(i, part, us*60/1000000, name+" fraction")
}

// addDate places a number that belongs to the date. Four digit numbers
// become the year while it is open, and so does "00", which can be neither
// month nor day; everything else waits on the ymd stack.
func (p *parser) addDate(i int, c candidate) error {
	r := &p.res
	zeroYear := c.val == 0 && p.tokens[i].LeadingZero()
	if (c.width == 4 || zeroYear) && !r.year.ok && !r.ymd.hasYearLike() {
		r.setYear(c.val, c.width)
		p.use(i)
		return nil
	}
	if c.yearLike() && (r.year.ok || r.ymd.hasYearLike()) {
		return p.reject(i, AmbiguousOverflow, "year already set")
	}
	if r.dateFull() || !r.ymd.push(c) {
		return p.reject(i, AmbiguousOverflow, "no open date field")
	}
	p.use(i)
	return nil
}

func (p *parser) dateItem(i int) bool {
	if _, ok := p.num(i); ok {
		return true
	}
	return p.isMonth(i)
}

func (p *parser) addDateItem(i int) error {
	if v, ok := p.num(i); ok {
		return p.addDate(i, candidate{v, len(p.tokens[i].Text)})
	}
	return p.setMonth(i, months[p.lower(i)])
}

func (p *parser) setMonth(i, month int) error {
	if p.res.dateFull() {
		return p.reject(i, AmbiguousOverflow, "no open date field")
	}
	p.use(i)
	return p.assign(i, &p.res.month, month, "month")
}

func (p *parser) alpha(i int) (int, error) {
	r := &p.res
	name := p.lower(i)
	if month, ok := months[name]; ok {
		return p.month(i, month)
	}
	if wd, ok := weekdays[name]; ok {
		p.use(i)
		return i + 1, p.assign(i, &r.weekday, int(wd), "weekday")
	}
	if pm, ok := ampm[name]; ok {
		if !r.hour.ok || r.hour.val > 12 || r.pm.ok {
			return i + 1, p.reject(i, UnknownToken, "am/pm without a 12 hour clock value")
		}
		r.hour.val = adjustHour(r.hour.val, pm)
		r.pm.set(b2i(pm))
		p.use(i)
		return i + 1, nil
	}
	if jumps[name] {
		return i + 1, nil
	}
	if mod, ok := modifiers[name]; ok && p.isWeekday(p.skipSpace(i+1)) && r.modifier == modNone {
		r.modifier = mod
		p.use(i)
		return i + 1, nil
	}
	if p.couldBeZone(i) {
		return p.zone(i)
	}
	return i + 1, p.reject(i, UnknownToken, "")
}

func (p *parser) month(i, month int) (int, error) {
	if err := p.setMonth(i, month); err != nil {
		return i + 1, err
	}
	// Jan-01[-99]
	if sepTok := p.at(i + 1); (sepTok.is(TokenSeparator, "-") || sepTok.is(TokenSeparator, "/")) && p.isNum(i+2) {
		p.use(i + 1)
		err := p.addDateItem(i + 2)
		if p.sep(i+3, sepTok.Text) && p.isNum(i+4) {
			p.use(i + 3)
			if e := p.addDateItem(i + 4); err == nil {
				err = e
			}
			return i + 5, err
		}
		return i + 3, err
	}
	// Jan of 01
	if p.at(i+1).Kind == TokenWhitespace && p.lower(i+2) == "of" &&
		p.at(i+3).Kind == TokenWhitespace && p.isNum(i+4) {
		v, _ := p.num(i + 4)
		if p.res.ymd.hasYearLike() || !p.res.setYear(v, len(p.tokens[i+4].Text)) {
			return i + 5, p.reject(i+4, AmbiguousOverflow, "year already set")
		}
		p.use(i+2, i+4)
		return i + 5, nil
	}
	return i + 1, nil
}

// couldBeZone reports whether the token at i may name a time zone: it must
// follow a time of day, no zone may be set yet, and it must be known or
// look like an abbreviation.
func (p *parser) couldBeZone(i int) bool {
	r := &p.res
	if !r.hour.ok || r.tzName != "" || r.tzOffset.ok {
		return false
	}
	text := p.tokens[i].Text
	if _, ok := lookupZone(text, p.lower(i), p.cfg.TZInfos); ok {
		return true
	}
	if len(text) > 5 {
		return false
	}
	for _, c := range text {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func (p *parser) zone(i int) (int, error) {
	p.res.tzName = p.tokens[i].Text
	p.use(i)
	// UTC+0000, PST-0700
	if (p.sep(i+1, "+") || p.sep(i+1, "-")) && p.isNum(i+2) {
		return p.offset(i + 1)
	}
	return i + 1, nil
}

func (p *parser) separator(i int) (int, error) {
	r := &p.res
	if (p.sep(i, "+") || p.sep(i, "-")) && r.hour.ok && !r.tzOffset.ok && p.isNum(i+1) {
		return p.offset(i)
	}
	return i + 1, nil
}

// offset reads +HH, +HHMM or +HH:MM with the sign at i, and an optional
// trailing "(NAME)".
func (p *parser) offset(i int) (int, error) {
	r := &p.res
	sign := 1
	if p.tokens[i].Text == "-" {
		sign = -1
	}
	v, _ := p.num(i + 1)
	w := len(p.tokens[i+1].Text)
	var hh, mm int
	end := i + 2
	switch {
	case w == 4:
		hh, mm = v/100, v%100
	case w <= 2 && p.sep(i+2, ":") && p.isNum(i+3) && len(p.tokens[i+3].Text) == 2:
		hh, _ = p.num(i + 1)
		mm, _ = p.num(i + 3)
		end = i + 4
	case w <= 2:
		hh = v
	default:
		return i + 2, p.fail(i+1, InvalidComponentValue, "malformed UTC offset")
	}
	if hh > 24 || mm > 59 {
		return end, p.fail(i+1, InvalidComponentValue, "UTC offset out of range")
	}
	for j := i; j < end; j++ {
		p.use(j)
	}
	r.tzOffset.set(sign * (hh*3600 + mm*60))

	// (CEST)
	open := end
	if p.at(open).Kind == TokenWhitespace {
		open++
	}
	if p.sep(open, "(") && p.at(open+1).Kind == TokenAlpha && p.sep(open+2, ")") {
		if r.tzName == "" {
			r.tzName = p.tokens[open+1].Text
		}
		p.use(open, open+1, open+2)
		return open + 3, nil
	}
	return end, nil
}

// assign sets f, treating a second value for the same field as overflow.
func (p *parser) assign(i int, f *field, v int, name string) error {
	if !f.set(v) {
		return p.reject(i, AmbiguousOverflow, name+" already set")
	}
	return nil
}

// reject reports a token the parser could not place. Fuzzy parses skip
// the token when the kind allows it and carry on, everything else fails.
func (p *parser) reject(i int, kind ErrorKind, detail string) error {
	if p.cfg.fuzzy() && kind.skippable() {
		p.marks[i] = markSkipped
		return nil
	}
	return p.fail(i, kind, detail)
}

func (p *parser) fail(i int, kind ErrorKind, detail string) error {
	tok := p.tokens[i]
	return &ParseError{Kind: kind, Input: p.input, Token: tok.Text, Offset: tok.Start, Detail: detail}
}

func (p *parser) use(idx ...int) {
	for _, i := range idx {
		if i < len(p.marks) && p.marks[i] != markSkipped {
			p.marks[i] = markUsed
		}
	}
}

// skipped merges unconsumed runs holding at least one rejected token into
// spans, trimmed of surrounding whitespace.
func (p *parser) skipped() []Span {
	var spans []Span
	start, noise := -1, false
	flush := func(end int) {
		if start >= 0 && noise {
			lo, hi := start, end
			for p.tokens[lo].Kind == TokenWhitespace {
				lo++
			}
			for p.tokens[hi-1].Kind == TokenWhitespace {
				hi--
			}
			from, to := p.tokens[lo].Start, p.tokens[hi-1].End
			spans = append(spans, Span{Start: from, End: to, Text: p.input[from:to]})
		}
		start, noise = -1, false
	}
	for i, m := range p.marks {
		if m == markUsed {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if m == markSkipped {
			noise = true
		}
	}
	flush(len(p.marks))
	return spans
}

// at returns the token at i, or the zero Token past either end.
func (p *parser) at(i int) Token {
	if i < 0 || i >= len(p.tokens) {
		return Token{}
	}
	return p.tokens[i]
}

func (p *parser) sep(i int, text string) bool {
	return p.at(i).is(TokenSeparator, text)
}

func (p *parser) isNum(i int) bool {
	return p.at(i).Kind == TokenNumeric
}

func (p *parser) num(i int) (int, bool) {
	if !p.isNum(i) {
		return 0, false
	}
	v, err := strconv.Atoi(p.tokens[i].Text)
	return v, err == nil
}

// lower returns the case folded text of an alpha token, "" otherwise.
func (p *parser) lower(i int) string {
	if p.at(i).Kind != TokenAlpha {
		return ""
	}
	return p.fold.String(p.tokens[i].Text)
}

func (p *parser) isMonth(i int) bool {
	_, ok := months[p.lower(i)]
	return ok
}

func (p *parser) isWeekday(i int) bool {
	_, ok := weekdays[p.lower(i)]
	return ok
}

func (p *parser) isOrdinal(i int) bool {
	return ordinals[p.lower(i)]
}

// skipSpace returns i, or the index after it when i is whitespace.
func (p *parser) skipSpace(i int) int {
	if p.at(i).Kind == TokenWhitespace {
		return i + 1
	}
	return i
}

// unitIdxAt finds an h/m/s unit word at i, allowing one space before it.
func (p *parser) unitIdxAt(i int) int {
	j := p.skipSpace(i)
	if _, ok := hmsUnits[p.lower(j)]; ok {
		return j
	}
	return -1
}

func (p *parser) fractionAt(i int) bool {
	_, _, ok := p.fraction(i, false)
	return ok
}

// fraction reads ".ffffff" at i as microseconds; comma is accepted as the
// decimal mark when allowComma is set.
func (p *parser) fraction(i int, allowComma bool) (us, next int, ok bool) {
	if !(p.sep(i, ".") || (allowComma && p.sep(i, ","))) || !p.isNum(i+1) {
		return 0, i, false
	}
	digits := p.tokens[i+1].Text
	if len(digits) > 6 {
		digits = digits[:6]
	}
	us = atoi(digits)
	for n := len(digits); n < 6; n++ {
		us *= 10
	}
	return us, i + 2, true
}

func adjustHour(hour int, pm bool) int {
	switch {
	case pm && hour < 12:
		return hour + 12
	case !pm && hour == 12:
		return 0
	}
	return hour
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// atoi converts a run of ASCII digits.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
