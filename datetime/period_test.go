// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"errors"
	"testing"

	"cloudeng.io/gibsdates/datetime"
)

func TestPeriodAdd(t *testing.T) {
	np := datetime.NewPeriod
	for _, tc := range []struct {
		a, b, want datetime.Period
	}{
		{np(0, 0, 0), np(0, 0, 0), np(0, 0, 0)},
		{np(0, 1, 5), np(0, 1, 5), np(0, 2, 10)},
		{np(1, 11, 30), np(0, 3, 5), np(1, 14, 35)},
		{np(1, 1, 1), np(-1, -1, -1), np(0, 0, 0)},
	} {
		if got, want := tc.a.Add(tc.b), tc.want; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
	if !np(0, 0, 0).IsZero() || np(0, 0, 1).IsZero() {
		t.Errorf("IsZero is incorrect")
	}
}

func TestPeriodAdvances(t *testing.T) {
	np := datetime.NewPeriod
	for _, tc := range []struct {
		period   datetime.Period
		advances bool
	}{
		{np(0, 0, 0), false},
		{np(0, 0, 1), true},
		{np(0, 1, 5), true},
		{np(1, 0, 0), true},
		{np(0, -1, 0), false},
		{np(0, 1, -30), false},
		{np(1, -11, 0), false},
	} {
		if got, want := tc.period.Advances(), tc.advances; got != want {
			t.Errorf("%v: got %v, want %v", tc.period, got, want)
		}
	}

	// 0y1m-30d advances 2019-03-31 but not 2019-04-01.
	step := np(0, 1, -30)
	if got := datetime.NewDate(2019, 3, 31).Add(step); !got.After(datetime.NewDate(2019, 3, 31)) {
		t.Errorf("got %v", got)
	}
	if got, want := datetime.NewDate(2019, 4, 1).Add(step), datetime.NewDate(2019, 4, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Any Period that advances must do so from every date, including
	// the ends of months.
	for _, p := range []datetime.Period{np(0, 0, 1), np(0, 1, 0), np(1, 0, 0), np(0, 1, 5)} {
		for _, year := range []int{2019, 2020} {
			for month := 1; month <= 12; month++ {
				for day := 1; day <= datetime.DaysInMonth(year, month); day++ {
					d := datetime.NewDate(year, month, day)
					if !d.Add(p).After(d) {
						t.Errorf("%v + %v: got %v", d, p, d.Add(p))
					}
				}
			}
		}
	}
}

func TestPeriodCompare(t *testing.T) {
	np := datetime.NewPeriod
	for _, tc := range []struct {
		a, b datetime.Period
		want int
	}{
		{np(0, 1, 5), np(0, 1, 5), 0},
		{np(0, 1, 5), np(0, 1, 6), -1},
		{np(0, 2, 0), np(0, 1, 30), 1},
		{np(1, 0, 0), np(0, 14, 0), 1},
	} {
		if got, want := tc.a.Compare(tc.b), tc.want; got != want {
			t.Errorf("%v <> %v: got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestPeriodString(t *testing.T) {
	np := datetime.NewPeriod
	for _, tc := range []struct {
		period datetime.Period
		text   string
	}{
		{np(0, 1, 5), "0y1m5d"},
		{np(0, 0, 0), "0y0m0d"},
		{np(10, 14, 100), "10y14m100d"},
		{np(0, -1, -10), "0y-1m-10d"},
	} {
		if got, want := tc.period.String(), tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		p, err := datetime.ParsePeriod(tc.text)
		if err != nil {
			t.Errorf("%v: %v", tc.text, err)
			continue
		}
		if got, want := p, tc.period; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestPeriodParseErrors(t *testing.T) {
	for _, tc := range []string{
		"",
		"1y",
		"1y2m",
		"1m2y3d",
		"y1m2d",
		"1y2m3d4",
		"1y2m3dx",
		"1.5y2m3d",
		"+y1m1d",
		"1y 2m 3d",
	} {
		_, err := datetime.ParsePeriod(tc)
		if err == nil {
			t.Errorf("%q: expected an error", tc)
			continue
		}
		if !errors.Is(err, datetime.ErrInvalidPeriod) {
			t.Errorf("%q: unexpected error: %v", tc, err)
		}
	}
	p := datetime.NewPeriod(1, 2, 3)
	if err := p.Parse("P1D2M"); err == nil {
		t.Errorf("expected an error")
	}
	if err := p.Parse("bad"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := p, datetime.NewPeriod(1, 2, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPeriodParseISO8601(t *testing.T) {
	for _, tc := range []struct {
		text string
		want datetime.Period
	}{
		{"P1M5D", datetime.NewPeriod(0, 1, 5)},
		{"-P1W", datetime.NewPeriod(0, 0, -7)},
		{"P1Y", datetime.NewPeriod(1, 0, 0)},
	} {
		p, err := datetime.ParsePeriod(tc.text)
		if err != nil {
			t.Errorf("%v: %v", tc.text, err)
			continue
		}
		if got, want := p, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.text, got, want)
		}
	}
}

func TestPeriodText(t *testing.T) {
	p := datetime.NewPeriod(0, 1, 5)
	buf, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "0y1m5d"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var np datetime.Period
	if err := np.UnmarshalText(buf); err != nil {
		t.Fatal(err)
	}
	if got, want := np, p; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
