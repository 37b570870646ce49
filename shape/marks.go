// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Line is a straight line segment.
type Line struct {
	From, To math32.Vector2
}

// Cross returns the two diagonal arms of a cross mark centered at c,
// each extending arm pixels from the center along both axes.
// The first arm runs down to the right, the second up to the right.
func Cross(c math32.Vector2, arm float32) (Line, Line) {
	left := Line{From: math32.Vec2(c.X-arm, c.Y-arm), To: math32.Vec2(c.X+arm, c.Y+arm)}
	right := Line{From: math32.Vec2(c.X-arm, c.Y+arm), To: math32.Vec2(c.X+arm, c.Y-arm)}
	return left, right
}

// Square returns the box of a square mark of the given side centered at c.
func Square(c math32.Vector2, side float32) math32.Box2 {
	h := side / 2
	return math32.B2(c.X-h, c.Y-h, c.X+h, c.Y+h)
}

// MinBarHeight is the height of a bar whose value scales to nothing,
// so that zero values still show as a hairline.
const MinBarHeight = 1

// BarHeight returns the drawn height for a bar whose value scales to
// the given pixel height, never less than [MinBarHeight].
func BarHeight(scaled float32) float32 {
	return math32.Max(MinBarHeight, scaled)
}

// Bar returns the box of a bar starting at pixel x with the given width,
// whose top is at pixel top and which is height pixels tall.
func Bar(x, width, top, height float32) math32.Box2 {
	return math32.B2(x, top, x+width, top+height)
}
