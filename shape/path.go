// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape computes the pure geometry of chart marks: line paths
// through a set of points with a choice of curve interpolation, path
// lengths for reveal animations, dot and bar mark boxes, and legend
// layout. Nothing here depends on a drawing surface.
package shape

import (
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// Curves are the interpolation modes for lines through points.
type Curves int32 //enums:enum

const (
	// Linear connects consecutive points with straight segments.
	Linear Curves = iota

	// Step connects points with a horizontal, vertical, horizontal
	// step whose vertical part is midway between the points.
	Step

	// Cardinal is a cardinal spline (zero tension) through every point.
	Cardinal

	// Basis is a cubic basis spline, which passes through the first and
	// last points but only approaches the ones in between.
	Basis
)

// Commands are path segment commands.
type Commands int32 //enums:enum

const (
	MoveTo Commands = iota
	LineTo
	CubicTo
	Close
)

// Segment is one path command. MoveTo and LineTo use Pts[0];
// CubicTo uses two control points and the end point, in order.
type Segment struct {
	Cmd Commands
	Pts [3]math32.Vector2
}

// Path is a sequence of segments, as in an SVG path d attribute.
type Path []Segment

func (p *Path) moveTo(x, y float32) {
	*p = append(*p, Segment{Cmd: MoveTo, Pts: [3]math32.Vector2{math32.Vec2(x, y)}})
}

func (p *Path) lineTo(x, y float32) {
	*p = append(*p, Segment{Cmd: LineTo, Pts: [3]math32.Vector2{math32.Vec2(x, y)}})
}

func (p *Path) cubicTo(x1, y1, x2, y2, x, y float32) {
	*p = append(*p, Segment{Cmd: CubicTo, Pts: [3]math32.Vector2{math32.Vec2(x1, y1), math32.Vec2(x2, y2), math32.Vec2(x, y)}})
}

func (p *Path) close() {
	*p = append(*p, Segment{Cmd: Close})
}

// NewPath returns the path through pts using the given curve.
// A single point gives a closed, zero length path.
func NewPath(pts []math32.Vector2, curve Curves) Path {
	var p Path
	if len(pts) == 0 {
		return p
	}
	switch curve {
	case Step:
		p.step(pts)
	case Cardinal:
		p.cardinal(pts)
	case Basis:
		p.basis(pts)
	default:
		p.linear(pts)
	}
	if len(pts) == 1 {
		p.close()
	}
	return p
}

func (p *Path) linear(pts []math32.Vector2) {
	p.moveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.lineTo(pt.X, pt.Y)
	}
}

func (p *Path) step(pts []math32.Vector2) {
	p.moveTo(pts[0].X, pts[0].Y)
	prev := pts[0]
	for _, pt := range pts[1:] {
		mx := 0.5 * (prev.X + pt.X)
		p.lineTo(mx, prev.Y)
		p.lineTo(mx, pt.Y)
		prev = pt
	}
	if len(pts) > 1 {
		p.lineTo(prev.X, prev.Y)
	}
}

// cardinal draws a zero tension cardinal spline. The tangent at each
// interior point is parallel to the chord between its neighbors, and
// the end tangents are taken from the adjacent chord.
func (p *Path) cardinal(pts []math32.Vector2) {
	const k = float32(1) / 6
	n := len(pts)
	p.moveTo(pts[0].X, pts[0].Y)
	switch n {
	case 1:
		return
	case 2:
		p.lineTo(pts[1].X, pts[1].Y)
		return
	}
	at := func(i int) math32.Vector2 {
		switch {
		case i < 0:
			return pts[1]
		case i >= n:
			return pts[n-2]
		}
		return pts[i]
	}
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), pts[i], pts[i+1], at(i+2)
		if i == 0 {
			p0 = p2
		}
		if i == n-2 {
			p3 = p1
		}
		p.cubicTo(
			p1.X+k*(p2.X-p0.X), p1.Y+k*(p2.Y-p0.Y),
			p2.X+k*(p1.X-p3.X), p2.Y+k*(p1.Y-p3.Y),
			p2.X, p2.Y)
	}
}

// basis draws a uniform cubic B-spline, clamped at both ends.
func (p *Path) basis(pts []math32.Vector2) {
	n := len(pts)
	p.moveTo(pts[0].X, pts[0].Y)
	switch n {
	case 1:
		return
	case 2:
		p.lineTo(pts[1].X, pts[1].Y)
		return
	}
	seg := func(a, b, c math32.Vector2) {
		p.cubicTo(
			(2*a.X+b.X)/3, (2*a.Y+b.Y)/3,
			(a.X+2*b.X)/3, (a.Y+2*b.Y)/3,
			(a.X+4*b.X+c.X)/6, (a.Y+4*b.Y+c.Y)/6)
	}
	p.lineTo((5*pts[0].X+pts[1].X)/6, (5*pts[0].Y+pts[1].Y)/6)
	for i := 2; i < n; i++ {
		seg(pts[i-2], pts[i-1], pts[i])
	}
	last, prev := pts[n-1], pts[n-2]
	seg(prev, last, last)
	p.lineTo(last.X, last.Y)
}

// flattenSteps is the number of chords used to measure a cubic segment.
const flattenSteps = 32

// Length returns the total length of the path, measuring cubic
// segments by flattening them into chords.
func (p Path) Length() float32 {
	var total float32
	var cur, start math32.Vector2
	for _, sg := range p {
		switch sg.Cmd {
		case MoveTo:
			cur = sg.Pts[0]
			start = cur
		case LineTo:
			total += cur.DistanceTo(sg.Pts[0])
			cur = sg.Pts[0]
		case CubicTo:
			prev := cur
			for i := 1; i <= flattenSteps; i++ {
				pt := cubicAt(cur, sg.Pts[0], sg.Pts[1], sg.Pts[2], float32(i)/flattenSteps)
				total += prev.DistanceTo(pt)
				prev = pt
			}
			cur = sg.Pts[2]
		case Close:
			total += cur.DistanceTo(start)
			cur = start
		}
	}
	return total
}

func cubicAt(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return math32.Vec2(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y)
}

// Anchors returns the end point of every drawing segment,
// which for the linear curve are the input points.
func (p Path) Anchors() []math32.Vector2 {
	var pts []math32.Vector2
	for _, sg := range p {
		switch sg.Cmd {
		case MoveTo, LineTo:
			pts = append(pts, sg.Pts[0])
		case CubicTo:
			pts = append(pts, sg.Pts[2])
		}
	}
	return pts
}

// String returns the path in SVG path data syntax.
func (p Path) String() string {
	var b strings.Builder
	for _, sg := range p {
		switch sg.Cmd {
		case MoveTo:
			b.WriteByte('M')
			writePoint(&b, sg.Pts[0])
		case LineTo:
			b.WriteByte('L')
			writePoint(&b, sg.Pts[0])
		case CubicTo:
			b.WriteByte('C')
			writePoint(&b, sg.Pts[0])
			b.WriteByte(',')
			writePoint(&b, sg.Pts[1])
			b.WriteByte(',')
			writePoint(&b, sg.Pts[2])
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt math32.Vector2) {
	b.WriteString(FormatCoord(pt.X))
	b.WriteByte(',')
	b.WriteString(FormatCoord(pt.Y))
}

// FormatCoord formats a pixel coordinate with the fewest digits that
// round trip, as used in SVG attributes.
func FormatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
