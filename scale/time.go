// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"time"

	"cogentcore.org/core/math32/minmax"
)

// TimeScale maps a continuous range of instants onto a pixel range.
// Domain values are unix milliseconds (see [FromTime]).
type TimeScale struct {

	// Domain is the data range in unix milliseconds.
	Domain minmax.F64

	// R0 and R1 are the pixel positions of Domain.Min and Domain.Max.
	R0, R1 float32

	// Location is the time zone ticks fall on calendar boundaries of.
	// Nil is UTC.
	Location *time.Location
}

// NewTime returns a new time scale for the instants [t0, t1] and range [r0, r1],
// with the location of t0.
func NewTime(t0, t1 time.Time, r0, r1 float32) *TimeScale {
	ts := &TimeScale{R0: r0, R1: r1, Location: t0.Location()}
	ts.Domain.Set(FromTime(t0), FromTime(t1))
	return ts
}

func (ts *TimeScale) Kind() Kinds { return Time }

func (ts *TimeScale) Map(v float64) float32 {
	return mapContinuous(&ts.Domain, ts.R0, ts.R1, v)
}

// MapTime returns the pixel position for instant t.
func (ts *TimeScale) MapTime(t time.Time) float32 {
	return ts.Map(FromTime(t))
}

func (ts *TimeScale) Invert(px float32) float64 {
	return invertContinuous(&ts.Domain, ts.R0, ts.R1, px)
}

// timeInterval is one of the calendar steps used for time ticks.
type timeInterval struct {
	// fixed is the step for intervals of a fixed length, zero otherwise.
	fixed time.Duration

	// days, months and years are calendar steps, used when fixed is zero.
	days, months, years int

	// approx is the approximate length, used to choose the interval.
	approx time.Duration
}

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var timeIntervals = []timeInterval{
	{fixed: time.Second, approx: time.Second},
	{fixed: 5 * time.Second, approx: 5 * time.Second},
	{fixed: 15 * time.Second, approx: 15 * time.Second},
	{fixed: 30 * time.Second, approx: 30 * time.Second},
	{fixed: time.Minute, approx: time.Minute},
	{fixed: 5 * time.Minute, approx: 5 * time.Minute},
	{fixed: 15 * time.Minute, approx: 15 * time.Minute},
	{fixed: 30 * time.Minute, approx: 30 * time.Minute},
	{fixed: time.Hour, approx: time.Hour},
	{fixed: 3 * time.Hour, approx: 3 * time.Hour},
	{fixed: 6 * time.Hour, approx: 6 * time.Hour},
	{fixed: 12 * time.Hour, approx: 12 * time.Hour},
	{days: 1, approx: day},
	{days: 2, approx: 2 * day},
	{days: 7, approx: week},
	{months: 1, approx: 30 * day},
	{months: 3, approx: 90 * day},
	{years: 1, approx: 365 * day},
}

// Ticks returns instants (as unix milliseconds) on calendar boundaries
// in the scale's location, using the interval whose length is closest
// to span / n.
func (ts *TimeScale) Ticks(n int) []float64 {
	lo, hi := ts.Domain.Min, ts.Domain.Max
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	if n < 1 {
		n = 1
	}
	target := time.Duration((hi - lo) / float64(n) * float64(time.Millisecond))
	iv := chooseInterval(target)
	t0, t1 := ToTimeIn(lo, ts.Location), ToTimeIn(hi, ts.Location)
	var ticks []float64
	for t := iv.ceil(t0); !t.After(t1); t = iv.next(t) {
		ticks = append(ticks, FromTime(t))
	}
	return ticks
}

func chooseInterval(target time.Duration) timeInterval {
	last := timeIntervals[len(timeIntervals)-1]
	if target >= last.approx {
		// multi-year spans step by a whole number of years
		yrs := int(math.Ceil(float64(target) / float64(last.approx)))
		return timeInterval{years: yrs, approx: time.Duration(yrs) * last.approx}
	}
	best := timeIntervals[0]
	for _, iv := range timeIntervals {
		if absDuration(iv.approx-target) < absDuration(best.approx-target) {
			best = iv
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// floor returns the latest interval boundary at or before t,
// in the location of t.
func (iv timeInterval) floor(t time.Time) time.Time {
	loc := t.Location()
	switch {
	case iv.fixed > 0:
		d := midnight(t)
		return d.Add(t.Sub(d).Truncate(iv.fixed))
	case iv.years > 0:
		y := t.Year() - t.Year()%iv.years
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case iv.months > 0:
		m := int(t.Month()) - 1
		m -= m % iv.months
		return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, loc)
	case iv.days == 7:
		d := midnight(t)
		return d.AddDate(0, 0, -int(d.Weekday()))
	default:
		return midnight(t)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ceil returns the earliest interval boundary at or after t.
func (iv timeInterval) ceil(t time.Time) time.Time {
	f := iv.floor(t)
	if f.Before(t) {
		return iv.next(f)
	}
	return f
}

func (iv timeInterval) next(t time.Time) time.Time {
	if iv.fixed > 0 {
		return t.Add(iv.fixed)
	}
	return t.AddDate(iv.years, iv.months, iv.days)
}
