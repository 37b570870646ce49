// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"cogentcore.org/insight/chart"
	"cogentcore.org/insight/surface"
)

// sides are the sides of the plotting area an axis is drawn on.
type sides int32

const (
	bottom sides = iota
	left
	right
)

// tickSize is the length of tick lines and of the ends of the axis line.
const tickSize = 6

// tickPadding is the space between a tick line and its label.
const tickPadding = 3

// tick is one labelled position on an axis.
type tick struct {
	pos   float32
	label string
}

// axis draws a d3 style axis into g: a domain path from 0 to extent
// with ends of length outer, and a group per tick with a line of
// length inner and a label. A negative length draws into the plot.
func axis(g *surface.Element, side sides, extent, inner, outer float32, ticks []tick) {
	g.SetAttr("fill", "none").SetAttr("font-size", 10).SetAttr("font-family", "sans-serif")
	var d string
	switch side {
	case bottom:
		g.SetAttr("text-anchor", "middle")
		d = "M0," + num(outer) + "V0H" + num(extent) + "V" + num(outer)
	case left:
		g.SetAttr("text-anchor", "end")
		d = "M" + num(-outer) + "," + num(extent) + "H0V0H" + num(-outer)
	case right:
		g.SetAttr("text-anchor", "start")
		d = "M" + num(outer) + "," + num(extent) + "H0V0H" + num(outer)
	}
	g.Append("path").SetAttr("class", "domain").SetAttr("stroke", "currentColor").SetAttr("d", d)

	spacing := max(inner, 0) + tickPadding
	for _, tk := range ticks {
		tg := g.Append("g").SetAttr("class", "tick").SetAttr("opacity", 1)
		ln := tg.Append("line").SetAttr("stroke", "currentColor")
		txt := tg.Append("text").SetAttr("fill", "currentColor").SetText(tk.label)
		switch side {
		case bottom:
			tg.SetAttr("transform", translate(tk.pos, 0))
			ln.SetAttr("y2", inner)
			txt.SetAttr("y", spacing).SetAttr("dy", "0.71em")
		case left:
			tg.SetAttr("transform", translate(0, tk.pos))
			ln.SetAttr("x2", -inner)
			txt.SetAttr("x", -spacing).SetAttr("dy", "0.32em")
		case right:
			tg.SetAttr("transform", translate(0, tk.pos))
			ln.SetAttr("x2", inner)
			txt.SetAttr("x", spacing).SetAttr("dy", "0.32em")
		}
	}
}

// drawGrid draws the horizontal grid lines across the plotting area.
func (b *Builder) drawGrid() {
	opts := b.opts
	if !opts.Grid.Draw {
		return
	}
	b.gridDrawn = true
	var ticks []tick
	for _, v := range b.yScale.Ticks(gridTicks) {
		ticks = append(ticks, tick{pos: b.yScale.Map(v)})
	}
	g := b.main.Append("g").SetAttr("class", "grid")
	axis(g, left, b.height, -b.width, -b.width, ticks)
	for _, p := range g.SelectAll("path") {
		p.SetStyle("stroke-width", opts.Grid.Width)
	}
	for _, ln := range g.SelectAll("line") {
		ln.SetStyle("stroke-opacity", "0.7").
			SetStyle("stroke", opts.Grid.Color).
			SetStyle("shape-rendering", "crispEdges")
	}
}

// drawXAxis draws the band axis below the plotting area, with its title.
func (b *Builder) drawXAxis() {
	opts, c := b.opts, b.data
	var ticks []tick
	for _, v := range b.xScale.Ticks(opts.XAxis.Ticks) {
		tk := tick{pos: b.xScale.Center(v)}
		if opts.XAxis.DrawTicks {
			tk.label = b.formatX(b.xValues[v])
		}
		ticks = append(ticks, tk)
	}
	g := b.main.Append("g").SetAttr("class", "axis axis-x").SetAttr("transform", translate(0, b.height))
	axis(g, bottom, b.width, tickSize, tickSize, ticks)
	if opts.XAxis.Rotate {
		for _, txt := range g.SelectAll(".tick text") {
			txt.SetAttr("transform", "rotate(-45) translate(-20, -5)")
		}
	}
	b.styleDomain(g)
	if opts.XAxis.DrawTitle {
		b.axisTitle("axis-title axis-title-x", b.width+b.Margin.Right/2, b.height, c.XName)
	}
}

// drawYAxis draws the y axis of a group: on the left of the plotting
// area, or mirrored on its right.
func (b *Builder) drawYAxis(grp chart.GroupTypes) {
	opts, c := b.opts, b.data
	var ticks []tick
	for _, v := range b.yScale.Ticks(opts.YAxis.Ticks) {
		tk := tick{pos: b.yScale.Map(v)}
		if opts.YAxis.DrawTicks {
			tk.label = b.formatYKey(v)
		}
		ticks = append(ticks, tk)
	}
	side, class, x := left, "axis axis-y axis-left", float32(0)
	if grp == chart.Right {
		side, class, x = right, "axis axis-y axis-right", b.width
	}
	g := b.main.Append("g").SetAttr("class", class).SetAttr("transform", translate(x, 0))
	axis(g, side, b.height, tickSize, tickSize, ticks)
	b.styleDomain(g)
	if opts.YAxis.DrawTitle {
		b.axisTitle("axis-title axis-title-y", x-30, -b.Margin.Top/2-7, c.YName)
	}
}

// styleDomain styles the axis line of an axis group.
func (b *Builder) styleDomain(g *surface.Element) {
	axes := b.opts.Axes
	for _, p := range g.SelectAll(".domain") {
		p.SetStyle("fill", "none").
			SetStyle("stroke", axes.Color).
			SetStyle("stroke-width", axes.Width).
			SetStyle("shape-rendering", "crispEdges")
	}
}

func (b *Builder) axisTitle(class string, x, y float32, text string) {
	axes := b.opts.Axes
	b.main.Append("text").SetAttr("class", class).
		SetAttr("x", x).SetAttr("y", y).SetAttr("dy", ".5rem").
		SetStyle("font-size", axes.FontSize).
		SetStyle("fill", axes.TextColor).
		SetStyle("text-anchor", "middle").
		SetText(text)
}

