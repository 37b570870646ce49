// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"strings"

	"cogentcore.org/core/math32"
	"golang.org/x/net/html"
)

// minHitDistance is how close to a line the pointer must be to hit it.
const minHitDistance = 3

// HitTest returns the topmost element with listeners whose shape
// contains the point, in surface coordinates, or nil if there is none.
// Circles, rects and lines are hit tested; translations of ancestor
// groups are taken into account.
func (s *Surface) HitTest(pt math32.Vector2) *Element {
	var hit *html.Node
	walk(s.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		if ls := s.listeners[n]; ls == nil || len(*ls) == 0 {
			return true
		}
		if s.wrap(n).Contains(pt) {
			hit = n // later elements are drawn on top
		}
		return true
	})
	return s.wrap(hit)
}

// Contains reports whether the point, in surface coordinates, is
// inside the shape of the element.
func (e *Element) Contains(pt math32.Vector2) bool {
	p := pt.Sub(e.Offset())
	switch e.Tag() {
	case "circle":
		c := math32.Vec2(e.AttrFloat("cx"), e.AttrFloat("cy"))
		return p.DistanceTo(c) <= e.AttrFloat("r")
	case "rect":
		x, y := e.AttrFloat("x"), e.AttrFloat("y")
		box := math32.B2(x, y, x+e.AttrFloat("width"), y+e.AttrFloat("height"))
		return box.ContainsPoint(p)
	case "line":
		a := math32.Vec2(e.AttrFloat("x1"), e.AttrFloat("y1"))
		b := math32.Vec2(e.AttrFloat("x2"), e.AttrFloat("y2"))
		tol := math32.Max(minHitDistance, e.AttrFloat("stroke-width")/2)
		return segmentDistance(p, a, b) <= tol
	}
	return false
}

// Offset returns the total translation of the ancestors of the element.
func (e *Element) Offset() math32.Vector2 {
	var off math32.Vector2
	for n := e.Node.Parent; n != nil; n = n.Parent {
		off = off.Add(parseTranslate(attr(n, "transform")))
	}
	return off
}

// parseTranslate returns the translation of a transform attribute of
// the form "translate(x,y)", ignoring anything else.
func parseTranslate(tr string) math32.Vector2 {
	i := strings.Index(tr, "translate(")
	if i < 0 {
		return math32.Vector2{}
	}
	rest := tr[i+len("translate("):]
	j := strings.IndexByte(rest, ')')
	if j < 0 {
		return math32.Vector2{}
	}
	args := strings.FieldsFunc(rest[:j], func(r rune) bool { return r == ',' || r == ' ' })
	var v math32.Vector2
	if len(args) > 0 {
		x, _ := parseLength(args[0])
		v.X = float32(x)
	}
	if len(args) > 1 {
		y, _ := parseLength(args[1])
		v.Y = float32(y)
	}
	return v
}

func segmentDistance(p, a, b math32.Vector2) float32 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.DistanceTo(a)
	}
	t := math32.Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.DistanceTo(a.Add(ab.MulScalar(t)))
}
