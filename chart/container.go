// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/insight/scale"
)

// DefaultDateFormat is the strftime pattern dates are shown with.
const DefaultDateFormat = scale.DefaultDateFormat

// Container holds everything needed to draw one chart: its series,
// the aggregates computed from them by [Container.Prepare], and the
// options to draw with.
type Container struct {

	// ID is the chart number within its session.
	ID int

	// Name is the chart name, shown as the title when enabled.
	Name string

	// Type is the kind of chart.
	Type ChartTypes

	// Series are drawn in order.
	Series []*Series

	// Options are the drawing options.
	Options *Options

	// XMax is the largest x value over all series.
	XMax Value

	// YMax and YMin are the y extremes over all series;
	// the first series wins ties.
	YMax, YMin Extreme

	// XDomain is the unique x values of all series, sorted ascending
	// when there is more than one series.
	XDomain []Value

	// YDomain is the sorted unique y values of all series,
	// only computed when y values are dates.
	YDomain []Value

	// XName and YName are the axis titles, from the first series.
	XName, YName string

	// XType and YType are the point types, from the first series.
	XType, YType PointTypes

	// XAccuracy and YAccuracy are the number of decimals numbers on
	// each axis are shown with.
	XAccuracy, YAccuracy int

	// ExtraYAccuracy is added to the computed YAccuracy.
	ExtraYAccuracy int

	// DateFormat is the strftime pattern dates are shown with.
	DateFormat string
}

// Add appends series to the container.
func (c *Container) Add(series ...*Series) *Container {
	c.Series = append(c.Series, series...)
	return c
}

// SetExtraYAccuracy sets [Container.ExtraYAccuracy].
func (c *Container) SetExtraYAccuracy(n int) *Container {
	c.ExtraYAccuracy = n
	return c
}

// SetDateFormat sets [Container.DateFormat].
func (c *Container) SetDateFormat(pattern string) *Container {
	c.DateFormat = pattern
	return c
}

// Loading reports whether there is no data yet, which is exactly
// when there are no series.
func (c *Container) Loading() bool {
	return len(c.Series) == 0
}

// PointCount returns the total number of points over all series.
func (c *Container) PointCount() int {
	n := 0
	for _, sr := range c.Series {
		n += len(sr.Points)
	}
	return n
}

// Prepare computes the aggregates of the container from its series.
// It must be called after all series are added and before drawing.
// It does nothing when there are no series, and returns a
// [*ConfigurationError] when series do not share point types.
//
// The aggregates are folded from the frozen [Series.Stats], so calling
// Prepare again after changing points that have already been measured
// gives stale extremes.
func (c *Container) Prepare() error {
	if len(c.Series) == 0 {
		return nil
	}
	first, err := c.checkTypes()
	if err != nil {
		return err
	}
	c.XName, c.YName = first.XName, first.YName
	c.XType, c.YType = first.XType, first.YType
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}

	c.foldStats()
	c.XDomain = c.uniqueValues(func(pt *Point) Value { return pt.X })
	if len(c.Series) > 1 {
		sortValues(c.XDomain)
	}
	c.YDomain = nil
	if c.YType == Date {
		c.YDomain = c.uniqueValues(func(pt *Point) Value { return pt.Y })
		sortValues(c.YDomain)
	}

	c.XAccuracy, c.YAccuracy = 0, 0
	if c.XType == Number {
		c.XAccuracy = Accuracy(c.XMax.Num)
	}
	if c.YType == Number {
		c.YAccuracy = Accuracy(c.YMax.Y.Num) + c.ExtraYAccuracy
	}
	slog.Debug("chart: prepared", "chart", c.ID, "series", len(c.Series), "points", c.PointCount(), "xdomain", len(c.XDomain))
	return nil
}

// checkTypes verifies that every point has the point types of the
// first series, which it returns.
func (c *Container) checkTypes() (*Series, error) {
	ref := c.Series[0]
	for _, sr := range c.Series {
		for _, pt := range sr.Points {
			if pt.X.Type != ref.XType {
				return nil, &ConfigurationError{Series: sr.Name, Axis: "x", Want: ref.XType, Got: pt.X.Type}
			}
			if pt.Y.Type != ref.YType {
				return nil, &ConfigurationError{Series: sr.Name, Axis: "y", Want: ref.YType, Got: pt.Y.Type}
			}
		}
	}
	return ref, nil
}

// foldStats folds the per series stats into the container extremes,
// skipping empty series.
func (c *Container) foldStats() {
	started := false
	for _, sr := range c.Series {
		if len(sr.Points) == 0 {
			continue
		}
		st := sr.Stats()
		if !started {
			c.XMax, c.YMax, c.YMin = st.XMax, st.YMax, st.YMin
			started = true
			continue
		}
		if st.XMax.Key() > c.XMax.Key() {
			c.XMax = st.XMax
		}
		if st.YMax.Y.Key() > c.YMax.Y.Key() {
			c.YMax = st.YMax
		}
		if st.YMin.Y.Key() < c.YMin.Y.Key() {
			c.YMin = st.YMin
		}
	}
	if !started {
		c.XMax, c.YMax, c.YMin = Value{}, Extreme{}, Extreme{}
	}
}

// uniqueValues returns the distinct values over all points, in the
// order they are first seen. Values are distinct when their keys are.
func (c *Container) uniqueValues(get func(pt *Point) Value) []Value {
	seen := map[valueKey]bool{}
	var vals []Value
	for _, sr := range c.Series {
		for _, pt := range sr.Points {
			v := get(pt)
			k := v.ident()
			if seen[k] {
				continue
			}
			seen[k] = true
			vals = append(vals, v)
		}
	}
	return vals
}

func sortValues(vals []Value) {
	slices.SortStableFunc(vals, func(a, b Value) int {
		return cmp.Compare(a.Key(), b.Key())
	})
}

// Keys returns the ordering keys of the values.
func Keys(vals []Value) []float64 {
	ks := make([]float64, len(vals))
	for i, v := range vals {
		ks[i] = v.Key()
	}
	return ks
}

// Accuracy returns the number of decimals needed to show values up to
// top: ceil(log10(4/top)) when top is in (0, 1], and 0 otherwise.
func Accuracy(top float64) int {
	if top <= 0 || top > 1 {
		return 0
	}
	return int(math.Ceil(math.Log10(4 / top)))
}
