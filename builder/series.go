// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/insight/chart"
	"cogentcore.org/insight/shape"
	"cogentcore.org/insight/surface"
)

// drawSeries draws the enabled shapes of one series in the given color.
func (b *Builder) drawSeries(sr *chart.Series, color string) {
	opts := b.opts
	pts := sr.Points
	if !opts.DrawAllPoints {
		pts = sr.Drawable()
	}
	if opts.Line.Draw {
		b.drawLine(sr, pts, color)
	}
	if opts.Dots.Draw {
		switch opts.Dots.Type {
		case chart.Circle:
			b.drawCircles(pts, color)
		case chart.Cross:
			b.drawCrosses(pts, color)
		case chart.Square:
			b.drawSquares(pts, color)
		}
	}
	if opts.Bar.Draw {
		b.drawBars(pts, color)
	}
}

// anchor returns the position a point is drawn at.
func (b *Builder) anchor(pt *chart.Point) math32.Vector2 {
	return math32.Vec2(b.cx(pt.X), b.y(pt.Y))
}

// origin is where dots start their entrance animation.
func (b *Builder) origin() math32.Vector2 {
	return math32.Vec2(0, b.yBase)
}

// drawLine draws the line through the points, revealed from left to
// right by animating its dash offset.
func (b *Builder) drawLine(sr *chart.Series, pts []*chart.Point, color string) {
	if len(pts) == 0 {
		return
	}
	opts := b.opts
	if opts.Line.Color != "" {
		color = opts.Line.Color
	}
	anchors := make([]math32.Vector2, len(pts))
	for i, pt := range pts {
		anchors[i] = b.anchor(pt)
	}
	path := shape.NewPath(anchors, opts.Line.Type.Curve())
	el := b.main.Append("path").SetAttr("class", "line").
		SetAttr("data-series", sr.ID).
		SetAttr("d", path.String()).
		SetStyle("fill", "none").
		SetStyle("stroke", color).
		SetStyle("stroke-width", opts.Line.Width)
	l := path.Length()
	el.SetAttr("stroke-dasharray", shape.FormatCoord(l)+" "+shape.FormatCoord(l)).
		SetAttr("stroke-dashoffset", l)
	el.Transition(opts.Line.Duration.Std(), surface.EaseLinear).Attr("stroke-dashoffset", 0)
}

// dot starts a dot mark for a point with the common attributes.
func (b *Builder) dot(tag, class, id, color string) *surface.Element {
	opts := b.opts
	return b.main.Append(tag).SetAttr("class", class).SetAttr("id", id).
		SetAttr("stroke", color).
		SetAttr("stroke-width", opts.Dots.BorderWidth).
		SetAttr("opacity", DefaultOpacity)
}

func (b *Builder) drawCircles(pts []*chart.Point, color string) {
	opts := b.opts
	if opts.Dots.Color != "" {
		color = opts.Dots.Color
	}
	o := b.origin()
	for _, pt := range pts {
		el := b.dot("circle", "point-circle", pt.ID, color).
			SetAttr("fill", color).
			SetAttr("fill-opacity", opts.Dots.Opacity).
			SetAttr("r", opts.Dots.Radius).
			SetAttr("cx", o.X).SetAttr("cy", o.Y)
		b.attach(el, pt, false)
		c := b.anchor(pt)
		el.Transition(opts.Dots.Duration.Std(), surface.EaseCubicInOut).Attr("cx", c.X).Attr("cy", c.Y)
		b.addTitle(el, pt)
	}
}

func (b *Builder) drawCrosses(pts []*chart.Point, color string) {
	opts := b.opts
	if opts.Dots.Color != "" {
		color = opts.Dots.Color
	}
	arm := opts.Dots.CrossLength
	sl, sr := shape.Cross(b.origin(), arm)
	for _, pt := range pts {
		tl, tr := shape.Cross(b.anchor(pt), arm)
		for _, side := range []struct {
			prefix      string
			start, goal shape.Line
		}{{"left", sl, tl}, {"right", sr, tr}} {
			el := b.dot("line", side.prefix+"-point-cross", side.prefix+pt.ID, color).
				SetAttr("x1", side.start.From.X).SetAttr("y1", side.start.From.Y).
				SetAttr("x2", side.start.To.X).SetAttr("y2", side.start.To.Y)
			b.attach(el, pt, false)
			el.Transition(opts.Dots.Duration.Std(), surface.EaseCubicInOut).
				Attr("x1", side.goal.From.X).Attr("y1", side.goal.From.Y).
				Attr("x2", side.goal.To.X).Attr("y2", side.goal.To.Y)
			b.addTitle(el, pt)
		}
	}
}

func (b *Builder) drawSquares(pts []*chart.Point, color string) {
	opts := b.opts
	if opts.Dots.Color != "" {
		color = opts.Dots.Color
	}
	side := opts.Dots.SquareSide
	start := shape.Square(b.origin(), side)
	for _, pt := range pts {
		el := b.dot("rect", "point-square", pt.ID, color).
			SetAttr("fill", color).
			SetAttr("fill-opacity", opts.Dots.Opacity).
			SetAttr("width", side).SetAttr("height", side).
			SetAttr("x", start.Min.X).SetAttr("y", start.Min.Y)
		b.attach(el, pt, false)
		goal := shape.Square(b.anchor(pt), side)
		el.Transition(opts.Dots.Duration.Std(), surface.EaseCubicInOut).Attr("x", goal.Min.X).Attr("y", goal.Min.Y)
		b.addTitle(el, pt)
	}
}

// drawBars draws a bar per point, growing from the bottom of the
// plotting area, with optional labels above them.
func (b *Builder) drawBars(pts []*chart.Point, color string) {
	opts := b.opts
	if opts.Bar.Color != "" {
		color = opts.Bar.Color
	}
	bw := b.xScale.Bandwidth()
	for _, pt := range pts {
		top := b.y(pt.Y)
		box := shape.Bar(b.x(pt.X), bw, top, shape.BarHeight(b.yBase-top))
		el := b.main.Append("rect").SetAttr("class", "bar").SetAttr("id", pt.ID).
			SetAttr("stroke", color).
			SetAttr("stroke-width", opts.Bar.BorderWidth).
			SetAttr("fill", color).
			SetAttr("fill-opacity", opts.Bar.Opacity).
			SetAttr("opacity", DefaultOpacity).
			SetAttr("x", box.Min.X).SetAttr("width", bw).
			SetAttr("y", b.yBase).SetAttr("height", 0)
		b.attach(el, pt, true)
		el.Transition(opts.Bar.Duration.Std(), surface.EaseCubicInOut).Attr("y", box.Min.Y).Attr("height", box.Size().Y)
		b.addTitle(el, pt)

		if opts.Bar.Labels && pt.Title != "" {
			lbl := b.main.Append("text").SetAttr("class", "bar-label").
				SetAttr("x", b.cx(pt.X)).SetAttr("y", top-labelOffset).SetAttr("dy", ".5rem").
				SetStyle("font-size", opts.Bar.LabelSize).
				SetStyle("fill", opts.MinMax.Color).
				SetStyle("text-anchor", "middle").
				SetText(pt.Title)
			b.fadeIn(lbl)
		}
	}
}

// addTitle adds the tooltip of a point to a mark.
func (b *Builder) addTitle(el *surface.Element, pt *chart.Point) {
	if !b.opts.AddValueTitles {
		return
	}
	var text string
	switch b.opts.TitleField {
	case chart.TitleX:
		text = b.formatX(pt.X)
	case chart.TitleY:
		text = b.formatY(pt.Y)
	case chart.TitleText:
		text = pt.Title
	case chart.TitleXY:
		text = "(" + b.formatX(pt.X) + "," + b.formatY(pt.Y) + ")"
	default:
		return
	}
	el.Append("title").SetText(text)
}
