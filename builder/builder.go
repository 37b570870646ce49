// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder draws prepared chart data onto drawing surfaces:
// axes, grid, series lines, dots and bars, extreme value labels,
// the legend and the chart name, with entrance animations and
// hover and click interaction reported through a single callback.
package builder

import (
	"log/slog"
	"strconv"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/insight/chart"
	"cogentcore.org/insight/scale"
	"cogentcore.org/insight/surface"
)

// ErrNoSurface is returned by [Builder.Draw] when there is no chart surface.
var ErrNoSurface = errors.New("builder: no chart surface to draw on")

// Actions passed to a [Callback].
const (
	ActionMouseOver = "mouseover"
	ActionMouseOut  = "mouseout"
	ActionClick     = "click"
)

// Callback receives the payload of the point a mark was drawn for,
// and one of [ActionMouseOver], [ActionMouseOut] or [ActionClick].
// It is called synchronously from event dispatch.
type Callback func(payload any, action string)

// Opacities of marks.
const (
	DefaultOpacity   = 0.7
	HighlightOpacity = 1
)

// Layout constants in pixels.
const (
	nameTop      = 40
	noNameTop    = 20
	rotatedTicks = 10
	bandPadding  = 0.2
	labelOffset  = 15
	gridTicks    = 5
	legendTop    = 10
	legendHeight = 30
)

// Builder draws chart containers. A Builder keeps the state of the last
// draw so that marks can be highlighted from outside; it must only be
// used from one goroutine at a time, and the surfaces it draws on must
// not be drawn on by anything else concurrently.
type Builder struct {

	// Margin is the space around the plotting area. Top is recomputed
	// on every draw from whether the chart name is drawn.
	Margin chart.Margin

	callback Callback

	data   *chart.Container
	opts   *chart.Options
	chart  *surface.Surface
	legend *surface.Surface

	// main is the group everything in the plotting area is drawn in.
	main *surface.Element

	xScale *scale.BandScale
	yScale scale.Scale

	// xValues are the x domain values by band key.
	xValues map[float64]chart.Value

	// yBase is the pixel position of the bottom of the y axis, where
	// bars grow from and dots start.
	yBase float32

	// width and height are the size of the plotting area.
	width, height float32

	gridDrawn bool

	// marks are the elements drawn for each point id.
	marks map[string][]*surface.Element
}

// New returns a new builder reporting interaction to callback, which
// may be nil. The optional margin values replace the default top,
// right, bottom and left margins, in that order.
func New(callback Callback, margin ...float32) *Builder {
	b := &Builder{callback: callback, Margin: chart.DefaultMargin}
	m := []*float32{&b.Margin.Top, &b.Margin.Right, &b.Margin.Bottom, &b.Margin.Left}
	for i, v := range margin {
		if i < len(m) {
			*m[i] = v
		}
	}
	b.marks = map[string][]*surface.Element{}
	return b
}

// Draw draws the container onto sf, with its legend on legend, which
// may be nil. The container must have been prepared. Nothing is drawn
// when there are no series, and a "No data" message when none of the
// series have points. Everything drawn by the previous call is removed
// first, cancelling its animations.
func (b *Builder) Draw(c *chart.Container, sf, legend *surface.Surface) error {
	if sf == nil {
		return ErrNoSurface
	}
	if c == nil || len(c.Series) == 0 {
		return nil
	}
	b.data = c
	b.opts = c.Options
	if b.opts == nil {
		b.opts = chart.NewOptions()
	}
	b.chart, b.legend = sf, legend

	b.clear()
	if c.PointCount() == 0 {
		b.drawEmptyText("No data")
		return nil
	}
	b.setUp()
	for _, grp := range b.groups() {
		b.drawGroup(grp)
	}
	b.drawMinMax()
	b.drawLegend()
	b.drawName()
	slog.Debug("builder: drew chart", "chart", c.ID, "surface", sf.Name, "series", len(c.Series), "width", b.width, "height", b.height)
	return nil
}

// Width returns the width of the plotting area of the last draw.
func (b *Builder) Width() float32 { return b.width }

// Height returns the height of the plotting area of the last draw.
func (b *Builder) Height() float32 { return b.height }

// XScale returns the band scale of the last draw.
func (b *Builder) XScale() *scale.BandScale { return b.xScale }

// YScale returns the y scale of the last draw.
func (b *Builder) YScale() scale.Scale { return b.yScale }

// clear removes the output of the previous draw.
func (b *Builder) clear() {
	b.gridDrawn = false
	clear(b.marks)
	if g := b.chart.Select("g#chart-main"); g != nil {
		g.Remove()
	}
	if b.legend != nil {
		if g := b.legend.Select("g#chart-legend"); g != nil {
			g.Remove()
		}
	}
	b.main = nil
}

// setUp computes the layout and scales and adds the main group.
func (b *Builder) setUp() {
	opts := b.opts
	if b.legend != nil {
		if opts.Legend.Draw {
			b.legend.Container().SetAttr("style", "height: 30px; overflow-y: hidden;")
		} else {
			b.legend.Hide(true)
		}
	}
	b.chart.Container().SetStyle("min-height", opts.MinHeight).SetStyle("min-width", opts.MinWidth)

	size := b.chart.Size()
	b.Margin.Top = noNameTop
	if opts.Name.Draw {
		b.Margin.Top = nameTop
	}
	b.width = size.X - b.Margin.Horizontal()
	b.height = size.Y - b.Margin.Vertical()
	if opts.XAxis.Rotate {
		b.height -= rotatedTicks
	}
	b.main = b.chart.Root().Append("g").SetAttr("id", "chart-main").
		SetAttr("transform", translate(b.Margin.Left, b.Margin.Top))

	b.xScale = scale.NewBand(chart.Keys(b.data.XDomain), 0, b.width, bandPadding)
	b.xValues = make(map[float64]chart.Value, len(b.data.XDomain))
	for _, v := range b.data.XDomain {
		b.xValues[v.Key()] = v
	}
	b.yScale = b.newYScale()
	b.yBase = b.height
}

// newYScale returns the scale for y values: linear from zero to the
// largest value, or over the range of dates.
func (b *Builder) newYScale() scale.Scale {
	c := b.data
	if c.YType == chart.Date && len(c.YDomain) > 0 {
		first, last := c.YDomain[0], c.YDomain[len(c.YDomain)-1]
		return scale.NewTime(first.Time, last.Time, b.height, 0)
	}
	return scale.NewLinear(0, c.YMax.Y.Num, b.height, 0)
}

// groups returns the y axis groups that series are drawn in.
// The left group is always drawn.
func (b *Builder) groups() []chart.GroupTypes {
	grps := []chart.GroupTypes{chart.Left}
	for _, sr := range b.data.Series {
		if sr.Group == chart.Right {
			return append(grps, chart.Right)
		}
	}
	return grps
}

// drawGroup draws the grid, axes and series of one y axis group.
func (b *Builder) drawGroup(grp chart.GroupTypes) {
	opts := b.opts
	if !b.gridDrawn {
		b.drawGrid()
	}
	if grp == chart.Left && opts.XAxis.Draw {
		b.drawXAxis()
	}
	if opts.YAxis.Draw {
		b.drawYAxis(grp)
	}
	for i, sr := range b.data.Series {
		if sr.Group != grp {
			continue
		}
		b.drawSeries(sr, opts.Color(i))
	}
}

// drawEmptyText draws a message in the middle of the chart surface.
func (b *Builder) drawEmptyText(text string) {
	size := b.chart.Size()
	b.main = b.chart.Root().Append("g").SetAttr("id", "chart-main")
	el := b.main.Append("text").SetAttr("class", "empty-data").
		SetAttr("x", size.X/2).SetAttr("y", size.Y/2).SetAttr("dy", ".5rem").
		SetStyle("font-size", b.opts.EmptyDataTextSize).
		SetStyle("fill", b.opts.MinMax.Color).
		SetStyle("text-anchor", "middle").
		SetText(text)
	b.fadeIn(el)
}

// fadeIn makes text appear over the min max duration.
func (b *Builder) fadeIn(el *surface.Element) {
	el.SetStyle("opacity", 0)
	el.Transition(b.opts.MinMax.Duration.Std(), surface.EaseCubicInOut).Style("opacity", 1)
}

// x returns the left edge of the band of v.
func (b *Builder) x(v chart.Value) float32 {
	return b.xScale.Map(v.Key())
}

// cx returns the center of the band of v.
func (b *Builder) cx(v chart.Value) float32 {
	return b.xScale.Center(v.Key())
}

// y returns the pixel position of the y value v.
func (b *Builder) y(v chart.Value) float32 {
	return b.yScale.Map(v.Key())
}

// formatX returns an x value as shown on the axis.
func (b *Builder) formatX(v chart.Value) string {
	if v.Type == chart.Date {
		return scale.FormatDate(v.Time, b.data.DateFormat)
	}
	return scale.FormatNumber(v.Num, b.data.XAccuracy)
}

// formatY returns a y value as shown on the axis.
func (b *Builder) formatY(v chart.Value) string {
	if v.Type == chart.Date {
		return scale.FormatDate(v.Time, b.data.DateFormat)
	}
	return scale.FormatNumber(v.Num, b.data.YAccuracy)
}

// formatYKey formats a y axis tick. Dates are shown in the location
// of the time scale.
func (b *Builder) formatYKey(k float64) string {
	c := b.data
	if c.YType != chart.Date {
		return scale.FormatNumber(k, c.YAccuracy)
	}
	var loc *time.Location
	if ts, ok := b.yScale.(*scale.TimeScale); ok {
		loc = ts.Location
	}
	return scale.FormatDate(scale.ToTimeIn(k, loc), c.DateFormat)
}

func translate(x, y float32) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// AnimationDuration returns how long a chart drawn with the options
// takes to finish its entrance animations.
func AnimationDuration(opts *chart.Options) time.Duration {
	return max(opts.Dots.Duration.Std(), opts.Line.Duration.Std(), opts.Bar.Duration.Std(), opts.MinMax.Duration.Std())
}
