// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder

import (
	"cogentcore.org/insight/chart"
	"cogentcore.org/insight/surface"
)

// attach registers a mark drawn for a point and gives it hover
// handlers, and a click handler when click is set. Hovering any mark
// of a point highlights all of them.
func (b *Builder) attach(el *surface.Element, pt *chart.Point, click bool) {
	b.marks[pt.ID] = append(b.marks[pt.ID], el)
	el.On(surface.MouseOver, func(ev *surface.Event) {
		b.highlight(pt.ID, HighlightOpacity)
		b.report(pt, ActionMouseOver)
		ev.SetHandled()
	})
	el.On(surface.MouseOut, func(ev *surface.Event) {
		b.highlight(pt.ID, DefaultOpacity)
		b.report(pt, ActionMouseOut)
		ev.SetHandled()
	})
	if click {
		el.On(surface.Click, func(ev *surface.Event) {
			b.report(pt, ActionClick)
			ev.SetHandled()
		})
	}
}

func (b *Builder) report(pt *chart.Point, action string) {
	if b.callback != nil {
		b.callback(pt.Payload, action)
	}
}

// highlight sets the opacity of every mark of a point, reporting
// whether there were any.
func (b *Builder) highlight(id string, opacity float32) bool {
	els := b.marks[id]
	for _, el := range els {
		el.SetAttr("opacity", opacity)
	}
	return len(els) > 0
}

// OnMouseOver highlights the marks of the point with the given id, as
// hovering them does, without calling the callback. It reports whether
// the point has any marks in the last draw.
func (b *Builder) OnMouseOver(id string) bool {
	return b.highlight(id, HighlightOpacity)
}

// OnMouseOut restores the marks of the point with the given id to their
// default opacity, reporting whether the point has any marks.
func (b *Builder) OnMouseOut(id string) bool {
	return b.highlight(id, DefaultOpacity)
}

// Marks returns the marks drawn for the point with the given id.
func (b *Builder) Marks(id string) []*surface.Element {
	return b.marks[id]
}
