// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"

	"cloudeng.io/gibsdates/datetime"
)

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{1600, true},
		{2100, false},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		if got, want := datetime.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	want := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i, days := range want {
		if got, want := datetime.DaysInMonth(2023, i+1), days; got != want {
			t.Errorf("2023/%02d: got %v, want %v", i+1, got, want)
		}
		if i == 1 {
			days++
		}
		if got, want := datetime.DaysInMonth(2024, i+1), days; got != want {
			t.Errorf("2024/%02d: got %v, want %v", i+1, got, want)
		}
	}
	if got, want := datetime.DaysInFeb(1900), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datetime.DaysInFeb(2000), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInMonthPanics(t *testing.T) {
	for _, month := range []int{-1, 0, 13} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("month %v: expected a panic", month)
				}
			}()
			datetime.DaysInMonth(2024, month)
		}()
	}
}
