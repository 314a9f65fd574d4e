package dtparse

import (
	"fmt"
	"time"
)

// finalize merges the parsed components with the default timestamp and
// validates the result. hasZone reports a location taken from the input.
func (p *parser) finalize() (t time.Time, hasZone bool, err error) {
	r := &p.res
	def := p.cfg.defaultTime()

	year := def.Year()
	if r.year.ok {
		year = fullYear(r.year.val, r.yearWidth)
		if year < 1 || year > 9999 {
			return t, false, p.invalid(InvalidComponentValue, "year %d", year)
		}
	}
	month := r.month.or(int(def.Month()))
	if month < 1 || month > 12 {
		return t, false, p.invalid(InvalidComponentValue, "month %d", month)
	}

	last := daysIn(time.Month(month), year)
	day := def.Day()
	if r.day.ok {
		day = r.day.val
		if day < 1 || day > last {
			return t, false, p.invalid(InvalidDayOfMonth, "day %d of %s %d", day, time.Month(month), year)
		}
	} else if day > last {
		day = last
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if r.weekday.ok && !r.day.ok {
		wd := time.Weekday(r.weekday.val)
		if r.nth > 0 {
			if date, err = p.nthWeekday(year, time.Month(month), wd, r.nth); err != nil {
				return t, false, err
			}
		} else {
			date = walkWeekday(date, wd, p.cfg.WeekdaySearch, r.modifier)
		}
	}

	hour := r.hour.or(def.Hour())
	minute := r.minute.or(def.Minute())
	second := r.second.or(def.Second())
	nsec := def.Nanosecond()
	if r.micro.ok {
		nsec = r.micro.val * 1000
	}
	switch {
	case hour > 23:
		return t, false, p.invalid(InvalidComponentValue, "hour %d", hour)
	case minute > 59:
		return t, false, p.invalid(InvalidComponentValue, "minute %d", minute)
	case second > 59:
		return t, false, p.invalid(InvalidComponentValue, "second %d", second)
	}

	loc, hasZone, err := p.zoneLocation(def.Location())
	if err != nil {
		return t, false, err
	}
	t = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, nsec, loc)
	return t, hasZone, nil
}

// nthWeekday is the nth wd of the month, eg the 2nd Tuesday of March.
func (p *parser) nthWeekday(year int, month time.Month, wd time.Weekday, nth int) (time.Time, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	day := 1 + (int(wd)-int(first.Weekday())+7)%7 + 7*(nth-1)
	if day > daysIn(month, year) {
		return time.Time{}, p.invalid(InvalidDayOfMonth, "%s %d has no occurrence %d of %s", month, year, nth, wd)
	}
	return first.AddDate(0, 0, day-1), nil
}

// walkWeekday moves from base to a day falling on wd. "next" and "last"
// never return base itself; otherwise dir decides and a base already on wd
// is kept.
func walkWeekday(base time.Time, wd time.Weekday, dir WeekdayDirection, mod weekdayModifier) time.Time {
	fwd := (int(wd) - int(base.Weekday()) + 7) % 7
	back := (7 - fwd) % 7
	switch mod {
	case modNext:
		if fwd == 0 {
			fwd = 7
		}
		return base.AddDate(0, 0, fwd)
	case modLast:
		if back == 0 {
			back = 7
		}
		return base.AddDate(0, 0, -back)
	}
	switch dir {
	case WeekdayBackward:
		return base.AddDate(0, 0, -back)
	case WeekdayNearest:
		if back < fwd {
			return base.AddDate(0, 0, -back)
		}
	}
	return base.AddDate(0, 0, fwd)
}

// zoneLocation picks the result location. An explicit offset wins over a
// zone name; a name alone must resolve through TZInfos or the built-in
// abbreviations.
func (p *parser) zoneLocation(naive *time.Location) (*time.Location, bool, error) {
	r := &p.res
	if p.cfg.IgnoreTZ {
		return naive, false, nil
	}
	if r.tzOffset.ok {
		name := r.tzName
		if r.tzOffset.val == 0 && (name == "" || utcZones[p.fold.String(name)]) {
			return time.UTC, true, nil
		}
		return time.FixedZone(name, r.tzOffset.val), true, nil
	}
	if r.tzName == "" {
		return naive, false, nil
	}
	loc, ok := lookupZone(r.tzName, p.fold.String(r.tzName), p.cfg.TZInfos)
	if !ok {
		err := newError(UnresolvedTimezoneName, p.input, "")
		err.Token = r.tzName
		for _, tok := range p.tokens {
			if tok.Kind == TokenAlpha && tok.Text == r.tzName {
				err.Offset = tok.Start
				break
			}
		}
		return nil, false, err
	}
	return loc, true, nil
}

func (p *parser) invalid(kind ErrorKind, format string, args ...interface{}) error {
	return newError(kind, p.input, fmt.Sprintf(format, args...))
}
