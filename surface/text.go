// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultFontSize is the font size in pixels of text with no font size.
const DefaultFontSize = 16

// Ellipsis is appended to shortened text.
const Ellipsis = "..."

// fontMu protects textFont and faces.
var fontMu sync.Mutex

var textFont *sfnt.Font

var faces = map[float32]font.Face{}

// face returns the face of the text font at the given pixel size.
// fontMu must be held.
func face(size float32) font.Face {
	if textFont == nil {
		textFont = errors.Must1(opentype.Parse(goregular.TTF))
	}
	if f, ok := faces[size]; ok {
		return f
	}
	f := errors.Must1(opentype.NewFace(textFont, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingNone}))
	faces[size] = f
	return f
}

// FontSize returns a CSS font size in pixels. It understands px, pt,
// em and rem (relative to [DefaultFontSize]) and percentages; anything
// else gives [DefaultFontSize].
func FontSize(css string) float32 {
	v, unit := parseLength(css)
	if v <= 0 {
		return DefaultFontSize
	}
	switch unit {
	case "", "px":
		return float32(v)
	case "pt":
		return float32(v * 4 / 3)
	case "em", "rem":
		return float32(v * DefaultFontSize)
	case "%":
		return float32(v / 100 * DefaultFontSize)
	}
	return DefaultFontSize
}

// MeasureText returns the width in pixels of text at the given
// pixel font size.
func MeasureText(text string, size float32) float32 {
	if text == "" {
		return 0
	}
	fontMu.Lock()
	defer fontMu.Unlock()
	return float32(font.MeasureString(face(size), text)) / 64
}

// Ellipsize shortens text one rune at a time, adding [Ellipsis], until
// it fits in width pixels at the given font size, or nothing is left.
func Ellipsize(text string, width, size float32) string {
	if MeasureText(text, size) <= width {
		return text
	}
	rs := []rune(text)
	out := text
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		out = string(rs) + Ellipsis
		if MeasureText(out, size) <= width {
			break
		}
	}
	return out
}

// TextLength returns the rendered width of the text of the element,
// using the font size of its style or the nearest ancestor that sets one.
func (e *Element) TextLength() float32 {
	return MeasureText(e.Text(), FontSize(e.ComputedStyle("font-size")))
}

// FitText shortens the text of the element with an ellipsis so that
// it is no wider than width.
func (e *Element) FitText(width float32) *Element {
	size := FontSize(e.ComputedStyle("font-size"))
	if fit := Ellipsize(e.Text(), width, size); fit != e.Text() {
		e.SetText(fit)
	}
	return e
}
