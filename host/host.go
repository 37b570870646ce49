// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host owns the chart and legend surfaces of one chart and
// drives a [builder.Builder] on them: it prepares and draws data,
// delivers pointer input to the drawn marks, relays the resulting
// callbacks upward and redraws when its options file changes.
package host

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/insight/builder"
	"cogentcore.org/insight/chart"
	"cogentcore.org/insight/surface"
)

// LegendHeight is the height of the legend surface.
const LegendHeight = 30

// Host draws one chart at a time onto its own pair of surfaces.
// All of its methods are safe for concurrent use; the callback is
// never called with the host locked, so it may call back into it.
type Host struct {

	// Session allocates the ids of the data drawn by the host.
	Session *chart.Session

	mu sync.Mutex

	callback builder.Callback
	builder  *builder.Builder
	chart    *surface.Surface
	legend   *surface.Surface

	// data is the container last drawn.
	data *chart.Container

	// opts are the options last set, used for containers without any.
	opts *chart.Options

	// hover is the mark under the pointer.
	hover *surface.Element

	// pending are the callbacks collected during event dispatch.
	pending []event
}

type event struct {
	payload any
	action  string
}

// New returns a new host with surfaces of the given size, reporting
// interaction to callback, which may be nil.
func New(width, height float32, callback builder.Callback) *Host {
	h := &Host{Session: chart.NewSession(), callback: callback}
	id := h.Session.ID.String()
	h.chart = surface.New("chart-"+id, width, height)
	h.legend = surface.New("legend-"+id, width, LegendHeight)
	h.builder = builder.New(h.relay)
	return h
}

// relay queues a callback from the builder until the host is unlocked.
func (h *Host) relay(payload any, action string) {
	h.pending = append(h.pending, event{payload, action})
}

// unlock unlocks the host and then delivers the queued callbacks.
func (h *Host) unlock() {
	evs := h.pending
	h.pending = nil
	h.mu.Unlock()
	if h.callback == nil {
		return
	}
	for _, ev := range evs {
		h.callback(ev.payload, ev.action)
	}
}

// Chart returns the chart surface.
func (h *Host) Chart() *surface.Surface {
	return h.chart
}

// Legend returns the legend surface.
func (h *Host) Legend() *surface.Surface {
	return h.legend
}

// Builder returns the builder drawing on the surfaces.
func (h *Host) Builder() *builder.Builder {
	return h.builder
}

// Data returns the container last drawn, or nil.
func (h *Host) Data() *chart.Container {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.data
}

// Options returns the options of the container last drawn, or else
// the options last set, or nil.
func (h *Host) Options() *chart.Options {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.data == nil {
		return h.opts
	}
	return h.data.Options
}

// Draw validates the options of the container, prepares it and draws
// it, replacing whatever was drawn before. Nil options are replaced
// by those given to [Host.SetOptions], or else [chart.NewOptions].
func (h *Host) Draw(c *chart.Container) error {
	h.mu.Lock()
	defer h.unlock()
	if c == nil {
		return nil
	}
	if c.Options == nil {
		c.Options = h.opts
	}
	if c.Options == nil {
		c.Options = chart.NewOptions()
	}
	if err := c.Options.Validate(); err != nil {
		return err
	}
	if err := c.Prepare(); err != nil {
		return err
	}
	h.data = c
	return h.draw()
}

func (h *Host) draw() error {
	h.hover = nil
	if h.data == nil {
		return nil
	}
	return h.builder.Draw(h.data, h.chart, h.legend)
}

// Redraw draws the last container again.
func (h *Host) Redraw() error {
	h.mu.Lock()
	defer h.unlock()
	return h.draw()
}

// Resize changes the size of the surfaces and redraws.
func (h *Host) Resize(width, height float32) error {
	h.mu.Lock()
	defer h.unlock()
	h.chart.SetSize(width, height)
	h.legend.SetSize(width, LegendHeight)
	return h.draw()
}

// SetOptions validates the options and makes them the options of the
// last container and of containers drawn later without options,
// redrawing the last container.
func (h *Host) SetOptions(opts *chart.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.unlock()
	h.opts = opts
	if h.data == nil {
		return nil
	}
	h.data.Options = opts
	return h.draw()
}

// PointerMove moves the pointer to pos in chart surface coordinates,
// sending mouseout to the mark it leaves and mouseover to the mark it
// enters. It returns the mark under the pointer, or nil.
func (h *Host) PointerMove(pos math32.Vector2) *surface.Element {
	h.mu.Lock()
	defer h.unlock()
	hit := h.chart.HitTest(pos)
	if hit != nil && h.hover != nil && hit.Node == h.hover.Node {
		return hit
	}
	h.leave(pos)
	if hit != nil {
		h.chart.Dispatch(surface.MouseOver, hit, pos)
	}
	h.hover = hit
	return hit
}

// PointerLeave sends mouseout to the mark under the pointer, if any.
func (h *Host) PointerLeave() {
	h.mu.Lock()
	defer h.unlock()
	h.leave(math32.Vector2{})
}

func (h *Host) leave(pos math32.Vector2) {
	if h.hover != nil && h.hover.Attached() {
		h.chart.Dispatch(surface.MouseOut, h.hover, pos)
	}
	h.hover = nil
}

// Click clicks at pos in chart surface coordinates, reporting whether
// a mark handled it.
func (h *Host) Click(pos math32.Vector2) bool {
	h.mu.Lock()
	defer h.unlock()
	hit := h.chart.HitTest(pos)
	if hit == nil {
		return false
	}
	return h.chart.Dispatch(surface.Click, hit, pos).IsHandled()
}

// Highlight highlights the marks of the point with the given id, or
// restores them when on is false, without calling the callback.
// It reports whether the point has any marks.
func (h *Host) Highlight(id string, on bool) bool {
	h.mu.Lock()
	defer h.unlock()
	if on {
		return h.builder.OnMouseOver(id)
	}
	return h.builder.OnMouseOut(id)
}

// Advance advances the animation clock of both surfaces.
func (h *Host) Advance(dt time.Duration) {
	h.mu.Lock()
	defer h.unlock()
	h.chart.Advance(dt)
	h.legend.Advance(dt)
}

// Settle finishes all running animations.
func (h *Host) Settle() {
	h.mu.Lock()
	defer h.unlock()
	h.chart.Settle()
	h.legend.Settle()
}

// Render writes the markup of the chart surface followed by that of
// the legend surface.
func (h *Host) Render(w io.Writer) error {
	h.mu.Lock()
	defer h.unlock()
	if err := h.chart.Render(w); err != nil {
		return err
	}
	if err := h.legend.Render(w); err != nil {
		return err
	}
	slog.Debug("host: rendered", "chart", h.chart.Name)
	return nil
}
