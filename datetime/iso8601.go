// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseISO8601Period parses the date portion of an ISO8601 duration,
// ie. [-]PnYnMnWnD, into a Period. Weeks are converted to days and a
// leading - negates all of the components. Fractional values and
// time components (T) are not supported.
func ParseISO8601Period(dur string) (Period, error) {
	orig := dur
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Period{}, fmt.Errorf("period must start with P or -P: %s: %w", orig, ErrInvalidPeriod)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	var p Period
	last := -1
	for len(dur) > 0 {
		n, designator, rest, err := consume(dur, "YMWD", false)
		if err != nil {
			return Period{}, fmt.Errorf("%s: %w", orig, err)
		}
		dur = rest
		pos := strings.IndexByte("YMWD", designator)
		if pos <= last {
			return Period{}, fmt.Errorf("out of order or repeated designator: %c: %s: %w", designator, orig, ErrInvalidPeriod)
		}
		last = pos
		switch designator {
		case 'Y':
			p.Years = n
		case 'M':
			p.Months = n
		case 'W':
			p.Days = n * 7
		case 'D':
			p.Days += n
		}
	}
	if last == -1 {
		return Period{}, fmt.Errorf("period has no components: %s: %w", orig, ErrInvalidPeriod)
	}
	if hasNP {
		p = Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
	}
	return p, nil
}

// ISO8601 returns the period as an ISO8601 duration. Zero components
// are omitted and a zero Period is returned as P0D. A Period whose
// non-zero components are all negative is returned with a leading -,
// any other combination of signs is not representable and is returned
// with negative component values.
func (p Period) ISO8601() string {
	if p.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	if p.Years <= 0 && p.Months <= 0 && p.Days <= 0 {
		out.WriteByte('-')
		p = Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
	}
	out.WriteByte('P')
	for _, c := range []struct {
		n          int
		designator byte
	}{
		{p.Years, 'Y'},
		{p.Months, 'M'},
		{p.Days, 'D'},
	} {
		if c.n != 0 {
			out.WriteString(strconv.Itoa(c.n))
			out.WriteByte(c.designator)
		}
	}
	return out.String()
}
