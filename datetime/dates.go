// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides support for calendar date arithmetic using the
// proleptic Gregorian calendar. Dates are plain year, month and day values
// with no time of day, location or timezone.
package datetime

import (
	"fmt"
)

// Date represents a calendar day. Month is in the range 1-12 and Day
// in the range 1 to DaysInMonth(Year, Month) for any Date returned
// by Add. NewDate does not validate its arguments and values outside
// of these ranges are the caller's responsibility.
type Date struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// NewDate returns a Date for the specified year, month and day.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// String returns the date as YYYY-MM-DD with the month and day zero
// padded. The year is not padded.
func (d Date) String() string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Valid returns true if the month is in the range 1-12 and the day
// is within the number of days for that month and year.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// as, or after o. Dates are ordered by year, then month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before returns true if d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Add returns the date obtained by adding p to d. The years and months
// of p are applied first, with any month overflow or underflow carried
// into the year, and then the days of p are added to the resulting date.
// Days that exceed the length of the month roll over into the following
// months (and years) and negative days borrow from the preceding months.
// Note that the day of d is not clamped before the days are added, so
// that Jan 31 plus one month is Mar 3 (or Mar 2 in a leap year).
func (d Date) Add(p Period) Date {
	mi := d.Month + p.Months - 1
	year := d.Year + p.Years + floorDiv(mi, 12)
	month := floorMod(mi, 12) + 1
	day := d.Day + p.Days

	for dmax := DaysInMonth(year, month); day > dmax; dmax = DaysInMonth(year, month) {
		day -= dmax
		month++
		if month > 12 {
			year += floorDiv(month-1, 12)
			month = floorMod(month-1, 12) + 1
		}
	}
	for day < 1 {
		month--
		if month < 1 {
			year += floorDiv(month-1, 12)
			month = floorMod(month-1, 12) + 1
		}
		day += DaysInMonth(year, month)
	}
	return Date{Year: year, Month: month, Day: day}
}

// AddPeriod adds p to d in place, it is equivalent to *d = d.Add(p).
func (d *Date) AddPeriod(p Period) {
	*d = d.Add(p)
}

// floorDiv and floorMod round towards negative infinity, unlike
// Go's / and % operators which truncate towards zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
