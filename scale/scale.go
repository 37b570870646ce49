// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values onto pixel coordinates for chart axes.
// There is a small closed set of scales: [Linear] and [Time] for continuous
// value axes and [Band] for the categorical x axis. All of them take data
// values as float64 keys (instants are unix milliseconds, see [FromTime])
// and produce float32 pixel positions.
package scale

import (
	"math"
	"time"
)

// Kinds are the kinds of scales.
type Kinds int32 //enums:enum

const (
	// Linear is a continuous numeric scale.
	Linear Kinds = iota

	// Time is a continuous scale over instants.
	Time

	// Band is an ordinal scale that assigns each domain value an
	// equal width slot, separated by padding.
	Band
)

// Scale is implemented by [LinearScale], [TimeScale] and [BandScale].
type Scale interface {
	// Kind returns which of the closed set of scales this is.
	Kind() Kinds

	// Map returns the pixel position for data value v.
	Map(v float64) float32

	// Invert returns the data value at pixel position px.
	Invert(px float32) float64

	// Ticks returns approximately n data values to label the axis with.
	Ticks(n int) []float64
}

// FromTime returns the scale key for an instant: unix milliseconds,
// with sub-millisecond precision kept as a fraction.
func FromTime(t time.Time) float64 {
	return float64(t.UnixMilli()) + float64(t.Nanosecond()%1e6)/1e6
}

// ToTime is the inverse of [FromTime], returning a UTC instant.
func ToTime(v float64) time.Time {
	return ToTimeIn(v, time.UTC)
}

// ToTimeIn is the inverse of [FromTime], returning the instant in loc.
// A nil loc is UTC.
func ToTimeIn(v float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	ms := math.Floor(v)
	ns := math.Round((v - ms) * 1e6)
	return time.UnixMilli(int64(ms)).Add(time.Duration(ns)).In(loc)
}
