package dtparse

import "time"

// field is one component of a partially parsed timestamp.
type field struct {
	val int
	ok  bool
}

// set records v unless the field already holds a value.
func (f *field) set(v int) bool {
	if f.ok {
		return false
	}
	f.val, f.ok = v, true
	return true
}

func (f field) or(def int) int {
	if f.ok {
		return f.val
	}
	return def
}

// candidate is a number that may still become the year, month or day.
// width is the digit count as written; "07" and "2007" differ.
type candidate struct {
	val   int
	width int
}

func (c candidate) yearLike() bool {
	return c.width > 2 || c.val > 31
}

// ymdStack buffers unassigned date numbers in arrival order.
type ymdStack struct {
	entries [3]candidate
	n       int
}

func (s *ymdStack) push(c candidate) bool {
	if s.n == len(s.entries) {
		return false
	}
	s.entries[s.n] = c
	s.n++
	return true
}

func (s *ymdStack) hasYearLike() bool {
	for _, c := range s.entries[:s.n] {
		if c.yearLike() {
			return true
		}
	}
	return false
}

type weekdayModifier uint8

const (
	modNone weekdayModifier = iota
	modThis
	modNext
	modLast
)

// components accumulates everything one parse has learned. Each field is
// written at most once.
type components struct {
	year, month, day field
	// digits the year was written with; 1 or 2 means no century
	yearWidth int

	hour, minute, second, micro field
	// pm is 1 for PM and 0 for AM once a marker has been applied
	pm field

	weekday  field
	nth      int
	modifier weekdayModifier

	tzName   string
	tzOffset field // seconds east of UTC

	ymd ymdStack
}

// dateCount is how many of year, month and day are taken or pending.
func (c *components) dateCount() int {
	n := c.ymd.n
	for _, f := range []field{c.year, c.month, c.day} {
		if f.ok {
			n++
		}
	}
	return n
}

func (c *components) dateFull() bool {
	return c.dateCount() >= 3
}

func (c *components) setYear(v, width int) bool {
	if !c.year.set(v) {
		return false
	}
	c.yearWidth = width
	return true
}

// resolveYMD assigns the buffered date numbers to year, month and day.
//
//  1. A value written with more than two digits, or above 31, is the year.
//  2. Of a pair left for month and day, a value above 12 is the day.
//  3. Otherwise yearFirst takes the first of three as the year while the
//     second could still be a month, and dayFirst reads the pair as
//     day-month; the default is month-day-year.
//  4. A lone value is the day once the month is known, else the month.
//
// It returns false when two values both have to be the year.
func (c *components) resolveYMD(dayFirst, yearFirst bool) bool {
	var left []candidate
	for _, e := range c.ymd.entries[:c.ymd.n] {
		if e.yearLike() {
			if !c.setYear(e.val, e.width) {
				return false
			}
			continue
		}
		left = append(left, e)
	}
	c.ymd.n = 0

	switch len(left) {
	case 0:
	case 1:
		v := left[0].val
		switch {
		case c.month.ok && !c.day.ok:
			c.day.set(v)
		case c.month.ok:
			c.setYear(v, left[0].width)
		case v > 12 && !c.day.ok:
			c.day.set(v)
		default:
			c.month.set(v)
		}
	case 2:
		a, b := left[0], left[1]
		switch {
		case c.month.ok:
			// day and year remain
			if yearFirst {
				c.setYear(a.val, a.width)
				c.day.set(b.val)
			} else {
				c.day.set(a.val)
				c.setYear(b.val, b.width)
			}
		case c.day.ok:
			// month and year remain
			if yearFirst || a.val > 12 {
				c.setYear(a.val, a.width)
				c.month.set(b.val)
			} else {
				c.month.set(a.val)
				c.setYear(b.val, b.width)
			}
		default:
			c.monthDay(a, b, dayFirst)
		}
	case 3:
		a, b, d := left[0], left[1], left[2]
		if yearFirst && b.val <= 12 {
			c.setYear(a.val, a.width)
			c.monthDay(b, d, dayFirst)
		} else {
			c.monthDay(a, b, dayFirst)
			c.setYear(d.val, d.width)
		}
	}
	return true
}

// monthDay orders an ambiguous pair into month and day.
func (c *components) monthDay(a, b candidate, dayFirst bool) {
	switch {
	case a.val > 12, b.val <= 12 && dayFirst:
		c.day.set(a.val)
		c.month.set(b.val)
	default:
		c.month.set(a.val)
		c.day.set(b.val)
	}
}

// fullYear expands a year written without its century: 00-68 is 2000-2068
// and 69-99 is 1969-1999.
func fullYear(year, width int) int {
	if width > 2 || year >= 100 {
		return year
	}
	if year <= 68 {
		return 2000 + year
	}
	return 1900 + year
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
