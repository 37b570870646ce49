// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Margin is the space in pixels between the edges of a surface and
// the plotting area.
type Margin struct {
	Top, Right, Bottom, Left float32
}

// DefaultMargin is the margin charts are drawn with unless another is given.
var DefaultMargin = Margin{Top: 40, Right: 40, Bottom: 20, Left: 50}

// Set sets the four insets, in CSS order.
func (m *Margin) Set(top, right, bottom, left float32) *Margin {
	m.Top, m.Right, m.Bottom, m.Left = top, right, bottom, left
	return m
}

// Horizontal returns the sum of the left and right insets.
func (m Margin) Horizontal() float32 {
	return m.Left + m.Right
}

// Vertical returns the sum of the top and bottom insets.
func (m Margin) Vertical() float32 {
	return m.Top + m.Bottom
}
