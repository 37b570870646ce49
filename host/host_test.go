// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/insight/builder"
	"cogentcore.org/insight/chart"
	"cogentcore.org/insight/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) callback(payload any, action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf("%v %s", payload, action))
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := r.calls
	r.calls = nil
	return calls
}

// newBars returns a bar chart container of the given values, one per
// day, with payloads p0, p1...
func newBars(h *Host, opts *chart.Options, ys ...float64) (*chart.Container, []*chart.Point) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	pts := make([]*chart.Point, len(ys))
	for i, y := range ys {
		pts[i] = h.Session.NewPoint(chart.DateValue(day.AddDate(0, 0, i)), chart.NumberValue(y)).
			SetPayload(fmt.Sprintf("p%d", i))
	}
	c := h.Session.NewContainer("bars", chart.BarChart, opts)
	c.Add(h.Session.NewSeries("values", pts...))
	return c, pts
}

// center returns the center of a rect mark in chart surface coordinates.
func center(el *surface.Element) math32.Vector2 {
	pos := math32.Vec2(el.AttrFloat("x")+el.AttrFloat("width")/2, el.AttrFloat("y")+el.AttrFloat("height")/2)
	return pos.Add(el.Offset())
}

func TestNew(t *testing.T) {
	h := New(600, 400, nil)
	id := h.Session.ID.String()
	assert.Equal(t, "chart-"+id, h.Chart().Name)
	assert.Equal(t, "legend-"+id, h.Legend().Name)
	assert.Equal(t, math32.Vec2(600, LegendHeight), h.Legend().Size())
	assert.Nil(t, h.Data())
	assert.Nil(t, h.Options())
	assert.NoError(t, h.Redraw())
}

func TestPointer(t *testing.T) {
	rec := &recorder{}
	h := New(600, 400, rec.callback)
	c, pts := newBars(h, chart.NewOptions().SetDrawBar(true), 2, 4, 3)
	require.NoError(t, h.Draw(c))
	h.Settle()

	bar0 := h.Builder().Marks(pts[0].ID)[0]
	bar1 := h.Builder().Marks(pts[1].ID)[0]

	hit := h.PointerMove(center(bar0))
	require.NotNil(t, hit)
	assert.Equal(t, bar0.Node, hit.Node)
	assert.Equal(t, []string{"p0 mouseover"}, rec.take())
	assert.Equal(t, float32(builder.HighlightOpacity), bar0.AttrFloat("opacity"))

	// moving within the same bar does nothing
	h.PointerMove(center(bar0).Add(math32.Vec2(1, 1)))
	assert.Empty(t, rec.take())

	h.PointerMove(center(bar1))
	assert.Equal(t, []string{"p0 mouseout", "p1 mouseover"}, rec.take())
	assert.Equal(t, float32(builder.DefaultOpacity), bar0.AttrFloat("opacity"))

	h.PointerLeave()
	assert.Equal(t, []string{"p1 mouseout"}, rec.take())
	h.PointerLeave()
	assert.Empty(t, rec.take())

	assert.True(t, h.Click(center(bar1)))
	assert.Equal(t, []string{"p1 click"}, rec.take())
	assert.False(t, h.Click(math32.Vec2(1, 1)))
	assert.Nil(t, h.PointerMove(math32.Vec2(1, 1)))
	assert.Empty(t, rec.take())
}

func TestCallbackReentry(t *testing.T) {
	var h *Host
	var seen *chart.Options
	h = New(600, 400, func(payload any, action string) {
		seen = h.Options()
	})
	c, pts := newBars(h, chart.NewOptions().SetDrawBar(true), 1, 2)
	require.NoError(t, h.Draw(c))
	h.Settle()
	require.True(t, h.Click(center(h.Builder().Marks(pts[1].ID)[0])))
	assert.Same(t, c.Options, seen)
}

func TestRedrawClearsHover(t *testing.T) {
	rec := &recorder{}
	h := New(600, 400, rec.callback)
	c, pts := newBars(h, chart.NewOptions().SetDrawBar(true), 1, 2)
	require.NoError(t, h.Draw(c))
	h.Settle()
	h.PointerMove(center(h.Builder().Marks(pts[0].ID)[0]))
	assert.Equal(t, []string{"p0 mouseover"}, rec.take())

	require.NoError(t, h.Redraw())
	// the hovered mark is gone, so nothing is left to leave
	h.PointerLeave()
	assert.Empty(t, rec.take())
	assert.Len(t, h.Chart().SelectAll("rect.bar"), 2)
}

func TestHighlight(t *testing.T) {
	rec := &recorder{}
	h := New(600, 400, rec.callback)
	c, pts := newBars(h, chart.NewOptions().SetDrawBar(true), 1, 2)
	require.NoError(t, h.Draw(c))

	bar := h.Builder().Marks(pts[0].ID)[0]
	assert.True(t, h.Highlight(pts[0].ID, true))
	assert.Equal(t, float32(builder.HighlightOpacity), bar.AttrFloat("opacity"))
	assert.True(t, h.Highlight(pts[0].ID, false))
	assert.Equal(t, float32(builder.DefaultOpacity), bar.AttrFloat("opacity"))
	assert.False(t, h.Highlight("point-0", true))
	assert.Empty(t, rec.take())
}

func TestSetOptions(t *testing.T) {
	h := New(600, 400, nil)
	c, _ := newBars(h, chart.NewOptions().SetDrawLine(true), 1, 2, 3)
	require.NoError(t, h.Draw(c))
	assert.Len(t, h.Chart().SelectAll("path.line"), 1)
	assert.Empty(t, h.Chart().SelectAll("rect.bar"))

	require.NoError(t, h.SetOptions(chart.NewOptions().SetDrawBar(true)))
	assert.Empty(t, h.Chart().SelectAll("path.line"))
	assert.Len(t, h.Chart().SelectAll("rect.bar"), 3)
	assert.True(t, h.Options().Bar.Draw)

	bad := chart.NewOptions()
	bad.Legend.TextLength = 0
	assert.Error(t, h.SetOptions(bad))
	assert.True(t, h.Options().Bar.Draw)
}

func TestOptionsBeforeDraw(t *testing.T) {
	h := New(600, 400, nil)
	opts := chart.NewOptions().SetDrawBar(true)
	require.NoError(t, h.SetOptions(opts))
	assert.Same(t, opts, h.Options())

	c, _ := newBars(h, nil, 1, 2)
	c.Options = nil
	require.NoError(t, h.Draw(c))
	assert.Same(t, opts, c.Options)
	assert.Len(t, h.Chart().SelectAll("rect.bar"), 2)
}

func TestDrawErrors(t *testing.T) {
	h := New(600, 400, nil)
	assert.NoError(t, h.Draw(nil))

	bad := chart.NewOptions()
	bad.Legend.RowHeight = -1
	c, _ := newBars(h, bad, 1)
	assert.Error(t, h.Draw(c))
	assert.Nil(t, h.Data())

	mixed := h.Session.NewContainer("mixed", chart.LineChart, nil)
	mixed.Add(
		h.Session.NewSeries("dates", h.Session.NewPoint(chart.DateValue(time.Now()), chart.NumberValue(1))),
		h.Session.NewSeries("numbers", h.Session.NewPoint(chart.NumberValue(1), chart.NumberValue(1))),
	)
	err := h.Draw(mixed)
	var ce *chart.ConfigurationError
	assert.ErrorAs(t, err, &ce)
	assert.Nil(t, h.Data())
}

func TestResize(t *testing.T) {
	h := New(600, 400, nil)
	c, _ := newBars(h, chart.NewOptions().SetDrawBar(true), 1, 2)
	require.NoError(t, h.Draw(c))
	w := h.Builder().Width()

	require.NoError(t, h.Resize(800, 400))
	assert.Equal(t, w+200, h.Builder().Width())
	assert.Equal(t, math32.Vec2(800, LegendHeight), h.Legend().Size())
	assert.Len(t, h.Chart().SelectAll("g#chart-main"), 1)
}

func TestAnimationClock(t *testing.T) {
	h := New(600, 400, nil)
	opts := chart.NewOptions().SetDrawBar(true)
	c, pts := newBars(h, opts, 2, 4)
	require.NoError(t, h.Draw(c))

	bar := h.Builder().Marks(pts[1].ID)[0]
	assert.Equal(t, float32(0), bar.AttrFloat("height"))
	h.Advance(opts.Bar.Duration.Std())
	assert.Equal(t, h.Builder().Height(), bar.AttrFloat("height"))
}

func TestRender(t *testing.T) {
	h := New(600, 400, nil)
	c, _ := newBars(h, chart.NewOptions().SetDrawBar(true).SetDrawLegend(true), 1, 2)
	require.NoError(t, h.Draw(c))

	var b bytes.Buffer
	require.NoError(t, h.Render(&b))
	s := b.String()
	assert.Equal(t, 2, strings.Count(s, "<svg"))
	assert.Less(t, strings.Index(s, `id="chart-main"`), strings.Index(s, `id="chart-legend"`))
	assert.Contains(t, s, "<animate")

	h.Settle()
	b.Reset()
	require.NoError(t, h.Render(&b))
	assert.NotContains(t, b.String(), "<animate")
}
