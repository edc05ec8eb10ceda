// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Period represents a relative duration as independent years, months and
// days. No normalization is applied to a Period, so 14 months is a valid
// Period that is carried into years only when it is added to a Date.
type Period struct {
	Years  int
	Months int
	Days   int
}

// NewPeriod returns a Period of the specified years, months and days.
func NewPeriod(years, months, days int) Period {
	return Period{Years: years, Months: months, Days: days}
}

// Add returns the component-wise sum of p and o. There is no carry
// between components.
func (p Period) Add(o Period) Period {
	return Period{
		Years:  p.Years + o.Years,
		Months: p.Months + o.Months,
		Days:   p.Days + o.Days,
	}
}

// IsZero returns true if all of the components of p are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// Advances returns true if adding p to any valid Date yields a later
// Date, that is, if p is non-zero and none of its components are
// negative. A Period with mixed signs may advance some dates and not
// others, eg. 0y1m-30d advances 2019-03-31 but not 2019-04-01.
func (p Period) Advances() bool {
	return !p.IsZero() && p.Years >= 0 && p.Months >= 0 && p.Days >= 0
}

// Compare returns -1, 0 or +1 comparing p and o component-wise, years
// first, then months, then days.
func (p Period) Compare(o Period) int {
	switch {
	case p.Years != o.Years:
		return cmpInt(p.Years, o.Years)
	case p.Months != o.Months:
		return cmpInt(p.Months, o.Months)
	default:
		return cmpInt(p.Days, o.Days)
	}
}

// String returns the period as <years>y<months>m<days>d, eg. 0y1m5d.
func (p Period) String() string {
	return fmt.Sprintf("%dy%dm%dd", p.Years, p.Months, p.Days)
}

var ErrInvalidPeriod = errors.New("invalid period")

// consume parses an integer from the start of val that is terminated by
// one of designators and returns the integer, the designator and the
// remainder of val. A leading sign is only accepted if signed is true.
func consume(val, designators string, signed bool) (int, byte, string, error) {
	for i := range val {
		c := val[i]
		if (c >= '0' && c <= '9') || (signed && i == 0 && (c == '-' || c == '+')) {
			continue
		}
		if strings.IndexByte(designators, c) < 0 {
			break
		}
		n, err := strconv.Atoi(val[:i])
		if err != nil {
			return 0, 0, "", fmt.Errorf("invalid number: %q: %w", val[:i], ErrInvalidPeriod)
		}
		return n, c, val[i+1:], nil
	}
	return 0, 0, "", fmt.Errorf("missing number or designator (%s): %q: %w", designators, val, ErrInvalidPeriod)
}

// Parse parses a period in the format returned by String, ie. 0y1m5d,
// or as an ISO8601 period as per ParseISO8601Period, ie. P1M5D. For the
// former all three components must be present, in that order, and each
// may be signed.
func (p *Period) Parse(val string) error {
	if strings.HasPrefix(val, "P") || strings.HasPrefix(val, "-P") {
		np, err := ParseISO8601Period(val)
		if err != nil {
			return err
		}
		*p = np
		return nil
	}
	orig := val
	var np Period
	var err error
	for _, c := range []struct {
		designator string
		field      *int
	}{
		{"y", &np.Years},
		{"m", &np.Months},
		{"d", &np.Days},
	} {
		*c.field, _, val, err = consume(val, c.designator, true)
		if err != nil {
			return fmt.Errorf("%q: %w", orig, err)
		}
	}
	if len(val) != 0 {
		return fmt.Errorf("%q: trailing characters %q: %w", orig, val, ErrInvalidPeriod)
	}
	*p = np
	return nil
}

// ParsePeriod is like Period.Parse.
func ParsePeriod(val string) (Period, error) {
	var p Period
	err := p.Parse(val)
	return p, err
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	return p.Parse(string(text))
}
