// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"unicode/utf8"

	"cogentcore.org/insight/chart"
)

// nameCharWidth is the width assumed for each character when centering
// the chart name.
const nameCharWidth = 7

// drawMinMax labels the largest and smallest y values of the chart
// above the points that hold them. An extreme is not labelled when
// none of the points holding it are drawn.
func (b *Builder) drawMinMax() {
	opts, c := b.opts, b.data
	if opts.MinMax.DrawMin && b.drawn(c.YMin) {
		b.drawExtreme("min-text", c.YMin)
	}
	if opts.MinMax.DrawMax && b.drawn(c.YMax) {
		b.drawExtreme("max-text", c.YMax)
	}
}

// drawn reports whether a point at the extreme is drawn.
func (b *Builder) drawn(ex chart.Extreme) bool {
	for _, sr := range b.data.Series {
		for _, pt := range sr.Points {
			if (b.opts.DrawAllPoints || pt.Draw) && pt.X.Equal(ex.X) && pt.Y.Equal(ex.Y) {
				return true
			}
		}
	}
	return false
}

func (b *Builder) drawExtreme(class string, ex chart.Extreme) {
	mm := b.opts.MinMax
	el := b.main.Append("text").SetAttr("class", "min-max-text "+class).
		SetAttr("x", b.cx(ex.X)).SetAttr("y", b.y(ex.Y)-labelOffset).SetAttr("dy", ".5rem").
		SetStyle("font-size", mm.FontSize).
		SetStyle("fill", mm.Color).
		SetStyle("text-anchor", "middle").
		SetText(b.formatY(ex.Y))
	b.fadeIn(el)
}

// drawName draws the chart name centered above the plotting area.
// The name option text is used, or else the container name.
func (b *Builder) drawName() {
	ns := b.opts.Name
	if !ns.Draw {
		return
	}
	name := ns.Text
	if name == "" {
		name = b.data.Name
	}
	if name == "" {
		return
	}
	x := (b.width - nameCharWidth*float32(utf8.RuneCountInString(name))) / 2
	b.main.Append("text").SetAttr("class", "chart-name").
		SetAttr("transform", translate(x, -35)).
		SetAttr("dy", "1em").
		SetStyle("font-size", ns.FontSize).
		SetStyle("fill", ns.Color).
		SetText(name)
}
