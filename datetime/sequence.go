// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "iter"

// Dates represents a sequence of dates from a start date to an inclusive
// end date, separated by a fixed Period. The sequence is consumed as it
// is read and cannot be restarted. A Dates value must not be used
// concurrently.
//
// The step must advance the date, a zero Period, or one that moves
// backwards, results in a sequence that never terminates unless the
// start date is already after the end date. Period.Advances reports
// whether a step advances every date.
type Dates struct {
	current Date
	end     Date
	step    Period
}

// NewDates returns a new sequence starting at start.
func NewDates(start, end Date, step Period) *Dates {
	return &Dates{current: start, end: end, step: step}
}

// Next returns the next date in the sequence and true, or the zero Date
// and false once the sequence is exhausted.
func (ds *Dates) Next() (Date, bool) {
	if ds.current.After(ds.end) {
		return Date{}, false
	}
	now := ds.current
	ds.current.AddPeriod(ds.step)
	return now, true
}

// All returns an iterator over the remaining dates in the sequence.
func (ds *Dates) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for {
			d, ok := ds.Next()
			if !ok || !yield(d) {
				return
			}
		}
	}
}

// Sample values used by the command line defaults and in tests.

// SampleStart returns 2019-04-01.
func SampleStart() Date {
	return NewDate(2019, 4, 1)
}

// SampleEnd returns 2020-04-01.
func SampleEnd() Date {
	return NewDate(2020, 4, 1)
}

// SampleStep returns 0y1m5d.
func SampleStep() Period {
	return NewPeriod(0, 1, 5)
}

// SampleDates returns the sequence from SampleStart to SampleEnd
// in steps of SampleStep.
func SampleDates() *Dates {
	return NewDates(SampleStart(), SampleEnd(), SampleStep())
}
