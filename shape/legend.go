// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Glyphs are the legend symbols drawn in front of series names.
type Glyphs int32 //enums:enum

const (
	// LineGlyph is a short horizontal line segment.
	LineGlyph Glyphs = iota

	// CircleGlyph is a dot.
	CircleGlyph

	// CrossGlyph is a diagonal cross.
	CrossGlyph

	// SquareGlyph is a small square.
	SquareGlyph

	// BarGlyph is three short bars of different heights.
	BarGlyph
)

// Advance returns the horizontal space taken by the glyph
// before the series name starts.
func (g Glyphs) Advance() float32 {
	switch g {
	case LineGlyph:
		return 40
	case BarGlyph:
		return 26
	}
	return 15
}

// Lookahead returns the extra space beyond the next text length that
// must fit in the row for the next entry to stay on it.
func (g Glyphs) Lookahead() float32 {
	switch g {
	case LineGlyph:
		return 40
	case BarGlyph:
		return 10
	}
	return 5
}

// legendGap is the space between one entry's text and the next glyph.
const legendGap = 10

// LegendLayout lays out legend entries left to right in rows.
type LegendLayout struct {

	// Left is the x position where every row starts.
	Left float32

	// Top is the y position of the first row.
	Top float32

	// Width is the available width; an entry wraps to a new row once
	// x + TextLength + lookahead would reach it.
	Width float32

	// TextLength is the space reserved for each series name.
	TextLength float32

	// RowHeight is the distance between rows.
	RowHeight float32
}

// LegendSlot is the position of one legend entry.
type LegendSlot struct {

	// Glyph is the origin of the glyph: its left edge and the top of
	// the row. Glyphs are drawn centered 5px below the row top.
	Glyph math32.Vector2

	// Text is the origin of the series name.
	Text math32.Vector2

	// Row is the zero based row index.
	Row int
}

// Place returns the slots for n entries with the given glyph, and the
// y position after the last entry, which is the total legend height
// when starting at Top.
func (ll *LegendLayout) Place(glyph Glyphs, n int) ([]LegendSlot, float32) {
	slots := make([]LegendSlot, n)
	x, y := ll.Left, ll.Top
	row := 0
	for i := range slots {
		slots[i].Glyph = math32.Vec2(x, y)
		slots[i].Row = row
		x += glyph.Advance()
		slots[i].Text = math32.Vec2(x, y)
		x += ll.TextLength
		if x+(ll.TextLength+glyph.Lookahead()) >= ll.Width {
			x = ll.Left
			y += ll.RowHeight
			row++
		} else {
			x += legendGap
		}
	}
	return slots, y
}
