// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cmp"
	"slices"
)

// Point is one sample of a series.
type Point struct {

	// ID identifies the point among everything drawn in a session,
	// and is the id of the marks drawn for it.
	ID string

	// X is the category the point is drawn at.
	X Value

	// Y is the value of the point.
	Y Value

	// Draw is whether the point is drawn and counts towards the
	// extremes of its series. Points that are not drawn stay in the series.
	Draw bool

	// Title is an optional label, shown by bar labels and tooltips.
	Title string

	// Payload is passed unchanged to the interaction callback.
	Payload any
}

// SetTitle sets the [Point.Title].
func (pt *Point) SetTitle(title string) *Point {
	pt.Title = title
	return pt
}

// SetPayload sets the [Point.Payload].
func (pt *Point) SetPayload(payload any) *Point {
	pt.Payload = payload
	return pt
}

// SetDraw sets [Point.Draw].
func (pt *Point) SetDraw(draw bool) *Point {
	pt.Draw = draw
	return pt
}

// Extreme is a y value together with the x value it occurs at.
type Extreme struct {
	Y Value
	X Value
}

// Stats are the derived statistics of a series.
type Stats struct {

	// YMax is the largest y value; the first point with that value wins.
	YMax Extreme

	// YMin is the smallest y value; the first point with that value wins.
	YMin Extreme

	// XMax is the x value of the last point in x order.
	XMax Value
}

// Series is a named collection of points sharing point types, which
// are given by the first point.
type Series struct {

	// ID is the series number within its session.
	ID int

	// Name is shown in the legend.
	Name string

	// XName and YName are the axis titles.
	XName, YName string

	// Type is the kind of chart the series is meant for.
	Type ChartTypes

	// Group is the side of the y axis the series is drawn against.
	Group GroupTypes

	// Points are the samples. They are sorted by x when stats are computed.
	Points []*Point

	// XType and YType are the point types of the first point.
	XType, YType PointTypes

	stats *Stats
}

// SetAxisNames sets [Series.XName] and [Series.YName].
func (sr *Series) SetAxisNames(x, y string) *Series {
	sr.XName, sr.YName = x, y
	return sr
}

// SetType sets [Series.Type].
func (sr *Series) SetType(typ ChartTypes) *Series {
	sr.Type = typ
	return sr
}

// SetGroup sets [Series.Group].
func (sr *Series) SetGroup(g GroupTypes) *Series {
	sr.Group = g
	return sr
}

// Stats returns the statistics of the series, computing them on the
// first call. They are then frozen: later calls return the same result
// even if the points have changed since. An empty series yields zero
// stats and is not frozen.
func (sr *Series) Stats() Stats {
	if sr.stats != nil {
		return *sr.stats
	}
	if len(sr.Points) == 0 {
		return Stats{}
	}
	sr.stats = sr.computeStats()
	return *sr.stats
}

// StatsComputed reports whether the statistics are frozen.
func (sr *Series) StatsComputed() bool {
	return sr.stats != nil
}

// computeStats sorts the points by x, then scans the drawable points,
// or all of them when none is drawable, for the y extremes.
func (sr *Series) computeStats() *Stats {
	slices.SortStableFunc(sr.Points, func(a, b *Point) int {
		return cmp.Compare(a.X.Key(), b.X.Key())
	})
	set := sr.Drawable()
	if len(set) == 0 {
		set = sr.Points
	}
	st := &Stats{XMax: sr.Points[len(sr.Points)-1].X}
	st.YMax = Extreme{Y: set[0].Y, X: set[0].X}
	st.YMin = st.YMax
	for _, pt := range set[1:] {
		k := pt.Y.Key()
		if k > st.YMax.Y.Key() {
			st.YMax = Extreme{Y: pt.Y, X: pt.X}
		}
		if k < st.YMin.Y.Key() {
			st.YMin = Extreme{Y: pt.Y, X: pt.X}
		}
	}
	return st
}

// Drawable returns the points with [Point.Draw] set.
func (sr *Series) Drawable() []*Point {
	var pts []*Point
	for _, pt := range sr.Points {
		if pt.Draw {
			pts = append(pts, pt)
		}
	}
	return pts
}
