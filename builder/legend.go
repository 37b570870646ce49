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

// legendGlyph returns the legend glyph of the shapes being drawn:
// lines take precedence over dots, and dots over bars.
func (b *Builder) legendGlyph() (shape.Glyphs, bool) {
	opts := b.opts
	switch {
	case opts.Line.Draw:
		return shape.LineGlyph, true
	case opts.Dots.Draw:
		switch opts.Dots.Type {
		case chart.Cross:
			return shape.CrossGlyph, true
		case chart.Square:
			return shape.SquareGlyph, true
		}
		return shape.CircleGlyph, true
	case opts.Bar.Draw:
		return shape.BarGlyph, true
	}
	return 0, false
}

// drawLegend draws a glyph and the name of every series on the legend
// surface, in rows as wide as the plotting area. A legend taller than
// one row scrolls.
func (b *Builder) drawLegend() {
	opts := b.opts
	if b.legend == nil || !opts.Legend.Draw {
		return
	}
	g := b.legend.Root().Append("g").SetAttr("id", "chart-legend")
	ll := shape.LegendLayout{
		Left:       b.Margin.Left,
		Top:        legendTop,
		Width:      b.width,
		TextLength: opts.Legend.TextLength,
		RowHeight:  opts.Legend.RowHeight,
	}
	y := ll.Top
	if glyph, ok := b.legendGlyph(); ok {
		var slots []shape.LegendSlot
		slots, y = ll.Place(glyph, len(b.data.Series))
		for i, sr := range b.data.Series {
			b.drawGlyph(g, glyph, slots[i].Glyph, opts.Color(i))
			g.Append("text").SetAttr("class", "legend-text").
				SetAttr("x", slots[i].Text.X).SetAttr("y", slots[i].Text.Y).SetAttr("dy", ".5rem").
				SetStyle("font-size", opts.Legend.FontSize).
				SetStyle("fill", opts.Legend.TextColor).
				SetText(sr.Name).
				FitText(opts.Legend.TextLength)
		}
	}

	if y > legendHeight {
		b.legend.Container().SetAttr("style", "height: 30px; overflow-y: auto;")
		b.legend.Root().SetAttr("style", "height: "+num(y)+"px;")
	} else {
		b.legend.Container().SetAttr("style", "height: 30px; overflow-y: hidden;")
		b.legend.Root().RemoveStyle("height")
	}
}

// drawGlyph draws a legend glyph at the origin of its slot.
func (b *Builder) drawGlyph(g *surface.Element, glyph shape.Glyphs, at math32.Vector2, color string) {
	opts := b.opts
	mid := math32.Vec2(at.X, at.Y+5)
	fill := func(el *surface.Element, width float32) *surface.Element {
		return el.SetAttr("stroke", color).SetAttr("stroke-width", width).
			SetAttr("fill", color).SetAttr("fill-opacity", opts.Legend.Opacity)
	}
	switch glyph {
	case shape.LineGlyph:
		g.Append("line").SetAttr("class", "legend-line").
			SetAttr("stroke", color).SetAttr("stroke-width", opts.Legend.LineWidth).
			SetAttr("x1", at.X).SetAttr("y1", mid.Y).
			SetAttr("x2", at.X+35).SetAttr("y2", mid.Y)
	case shape.CircleGlyph:
		fill(g.Append("circle").SetAttr("class", "point-circle"), opts.Dots.BorderWidth).
			SetAttr("r", opts.Dots.Radius).
			SetAttr("cx", mid.X).SetAttr("cy", mid.Y)
	case shape.CrossGlyph:
		l, r := shape.Cross(mid, opts.Dots.CrossLength)
		for _, arm := range []shape.Line{l, r} {
			g.Append("line").SetAttr("class", "point-cross").
				SetAttr("stroke", color).SetAttr("stroke-width", opts.Dots.BorderWidth).
				SetAttr("x1", arm.From.X).SetAttr("y1", arm.From.Y).
				SetAttr("x2", arm.To.X).SetAttr("y2", arm.To.Y)
		}
	case shape.SquareGlyph:
		sq := shape.Square(mid, opts.Dots.SquareSide)
		fill(g.Append("rect").SetAttr("class", "point-square"), opts.Dots.BorderWidth).
			SetAttr("width", opts.Dots.SquareSide).SetAttr("height", opts.Dots.SquareSide).
			SetAttr("x", sq.Min.X).SetAttr("y", sq.Min.Y)
	case shape.BarGlyph:
		// three bars standing on a common base 7px below the row top
		for i, h := range []float32{3, 7, 5} {
			box := shape.Bar(at.X+8*float32(i), 5, at.Y+7-h, h)
			fill(g.Append("rect").SetAttr("class", "legend-bar"), opts.Bar.BorderWidth).
				SetAttr("x", box.Min.X).SetAttr("width", 5).
				SetAttr("y", box.Min.Y).SetAttr("height", h)
		}
	}
}
