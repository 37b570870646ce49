// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface provides an in-memory SVG drawing surface: a small
// DOM of SVG elements that can be selected with CSS selectors, styled,
// animated with timed transitions, given pointer event listeners,
// hit tested and rendered to markup. It plays the role of the
// document a chart is drawn into.
package surface

import (
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Surface is an SVG element inside a container element, with the
// state needed to animate it and deliver events to it.
// A Surface is not safe for concurrent use.
type Surface struct {

	// Name identifies the surface in logs.
	Name string

	container *html.Node
	root      *html.Node

	// size is the measured bounding box size.
	size math32.Vector2

	// clock is the time elapsed on the animation clock.
	clock time.Duration

	transitions []*Transition

	listeners map[*html.Node]*Listeners
}

// New returns a new surface of the given size in pixels.
func New(name string, width, height float32) *Surface {
	s := &Surface{Name: name}
	s.container = &html.Node{Type: html.ElementNode, Data: "div"}
	s.root = &html.Node{Type: html.ElementNode, Data: "svg"}
	s.container.AppendChild(s.root)
	s.listeners = map[*html.Node]*Listeners{}
	s.SetSize(width, height)
	return s
}

// SetSize sets the size of the surface, which is what the bounding
// box of the root measures.
func (s *Surface) SetSize(width, height float32) *Surface {
	s.size = math32.Vec2(width, height)
	root := s.Root()
	root.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	root.SetAttr("width", width)
	root.SetAttr("height", height)
	return s
}

// Size returns the size of the bounding box of the surface.
func (s *Surface) Size() math32.Vector2 {
	return s.size
}

// Bounds returns the bounding box of the surface, at the origin.
func (s *Surface) Bounds() math32.Box2 {
	return math32.B2(0, 0, s.size.X, s.size.Y)
}

// Root returns the svg element.
func (s *Surface) Root() *Element {
	return s.wrap(s.root)
}

// Container returns the element holding the svg element.
func (s *Surface) Container() *Element {
	return s.wrap(s.container)
}

// Clock returns the time elapsed on the animation clock.
func (s *Surface) Clock() time.Duration {
	return s.clock
}

func (s *Surface) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{Node: n, surface: s}
}

// Select returns the first element under the root matching the
// CSS selector, or nil if there is none.
func (s *Surface) Select(selector string) *Element {
	return s.Root().Select(selector)
}

// SelectAll returns all the elements under the root matching
// the CSS selector, in document order.
func (s *Surface) SelectAll(selector string) []*Element {
	return s.Root().SelectAll(selector)
}

// ByID returns the element with the given id, or nil.
func (s *Surface) ByID(id string) *Element {
	var found *html.Node
	walk(s.root, func(n *html.Node) bool {
		if attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return s.wrap(found)
}

// Clear removes everything drawn on the surface, cancelling all of
// its transitions and listeners.
func (s *Surface) Clear() {
	for c := s.root.FirstChild; c != nil; {
		next := c.NextSibling
		s.wrap(c).Remove()
		c = next
	}
}

// Hide hides or shows the whole surface.
func (s *Surface) Hide(hidden bool) {
	if hidden {
		s.Container().SetStyle("display", "none")
	} else {
		s.Container().RemoveStyle("display")
	}
}

// Hidden reports whether the surface is hidden.
func (s *Surface) Hidden() bool {
	return s.Container().Style("display") == "none"
}

// selectAll returns the nodes under n, excluding n, matching selector.
func selectAll(n *html.Node, selector string) []*html.Node {
	sel, err := cascadia.Compile(selector)
	if errors.Log(err) != nil {
		return nil
	}
	var out []*html.Node
	for _, m := range sel.MatchAll(n) {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

// walk calls fun on n and its descendants in document order
// until fun returns false.
func walk(n *html.Node, fun func(n *html.Node) bool) bool {
	if !fun(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fun) {
			return false
		}
	}
	return true
}

// contains reports whether n is anc or one of its descendants.
func contains(anc, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == anc {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
