// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bytes"
	"io"
	"strconv"

	"cogentcore.org/core/base/errors"
	"golang.org/x/net/html"
)

// Render writes the markup of the surface, including its container,
// to w. Transitions that are still running are written as SMIL
// animate elements, so that a browser plays the rest of them.
func (s *Surface) Render(w io.Writer) error {
	added := s.addAnimations()
	defer func() {
		for _, n := range added {
			n.Parent.RemoveChild(n)
		}
	}()
	return html.Render(w, s.container)
}

// SVG returns the markup of the svg element alone.
func (s *Surface) SVG() string {
	var b bytes.Buffer
	errors.Log(html.Render(&b, s.root))
	return b.String()
}

// String returns the markup written by [Surface.Render].
func (s *Surface) String() string {
	var b bytes.Buffer
	errors.Log(s.Render(&b))
	return b.String()
}

// addAnimations appends an animate element for every property of
// every running transition, and returns them.
func (s *Surface) addAnimations() []*html.Node {
	var added []*html.Node
	for _, tr := range s.transitions {
		left := tr.remaining(s.clock)
		if left <= 0 || !tr.el.Attached() {
			continue
		}
		dur := strconv.FormatInt(left.Milliseconds(), 10) + "ms"
		for _, tw := range tr.tweens {
			an := &html.Node{Type: html.ElementNode, Data: "animate"}
			setAttr(an, "attributeName", tw.name)
			if tw.style {
				setAttr(an, "attributeType", "CSS")
			}
			setAttr(an, "to", formatValue(tw.to))
			setAttr(an, "dur", dur)
			setAttr(an, "fill", "freeze")
			if ks := tr.ease.keySplines(); ks != "" {
				setAttr(an, "calcMode", "spline")
				setAttr(an, "keyTimes", "0;1")
				setAttr(an, "keySplines", ks)
			}
			tr.el.Node.AppendChild(an)
			added = append(added, an)
		}
	}
	return added
}
