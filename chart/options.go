// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/jinzhu/copier"
)

// DefaultPalette is the list of series colors used by default.
var DefaultPalette = []string{
	"#3582E8", "#93bbe7", "#0b5696", "#47BCFF", "#3575E8", "#34C6FF", "#3083E8",
	"#4165FF", "#17B8E8", "#2690FF", "#47BCFF", "#3582E8", "#3A66FF",
}

// Options are all the settings a chart is drawn with. Colors are CSS
// color strings and sizes are CSS lengths where they are strings.
// Options are a flat snapshot: a new value is made for each chart and
// it is never shared between concurrent draws; use [Options.Clone].
type Options struct {

	// Palette gives the color of each series, by index modulo its length.
	Palette []string

	// Name is the chart title.
	Name NameStyle

	// Legend is the series legend.
	Legend LegendStyle

	// Dots are the marks drawn at each point.
	Dots DotStyle

	// Line is the line drawn through the points of a series.
	Line LineStyle

	// Bar is the bar drawn for each point.
	Bar BarStyle

	// MinMax are the labels at the y extremes.
	MinMax MinMaxStyle

	// XAxis and YAxis are the axis toggles.
	XAxis, YAxis AxisStyle

	// Axes is the look shared by both axes.
	Axes AxesStyle

	// Grid is the horizontal grid.
	Grid GridStyle

	// AddValueTitles adds a tooltip to each mark.
	AddValueTitles bool `default:"true"`

	// TitleField selects the tooltip text.
	TitleField TitleFields `default:"Y"`

	// EmptyDataTextSize is the font size of the "No data" message.
	EmptyDataTextSize string `default:"2rem"`

	// DrawAllPoints draws points that are not marked drawable too.
	DrawAllPoints bool `default:"true"`

	// MinHeight and MinWidth are the smallest size of the chart container.
	MinHeight string `default:"250px"`
	MinWidth  string `default:"250px"`
}

// NameStyle has the chart title options.
type NameStyle struct {
	Draw     bool
	Text     string
	Color    string `default:"#6c757d"`
	FontSize string `default:"1rem"`
}

func (ns *NameStyle) Defaults() {
	ns.Color = "#6c757d"
	ns.FontSize = "1rem"
}

// LegendStyle has the legend options.
type LegendStyle struct {
	Draw bool

	TextColor string `default:"#000000"`
	FontSize  string `default:"12px"`

	// LineWidth is the stroke width of line glyphs.
	LineWidth float32 `default:"3"`

	// Opacity is the fill opacity of glyphs.
	Opacity float32 `default:"0.4"`

	// TextLength is the width reserved for each series name; longer
	// names are shortened with an ellipsis.
	TextLength float32 `default:"120"`

	// RowHeight is the distance between legend rows.
	RowHeight float32 `default:"15"`
}

func (ls *LegendStyle) Defaults() {
	ls.TextColor = "#000000"
	ls.FontSize = "12px"
	ls.LineWidth = 3
	ls.Opacity = 0.4
	ls.TextLength = 120
	ls.RowHeight = 15
}

// DotStyle has the point mark options.
type DotStyle struct {
	Draw bool
	Type DotTypes

	// Color overrides the palette for all series.
	Color string

	BorderWidth float32 `default:"1"`

	// Radius is the radius of circles.
	Radius float32 `default:"3"`

	// Opacity is the fill opacity.
	Opacity float32 `default:"0.4"`

	// SquareSide is the side of squares.
	SquareSide float32 `default:"6"`

	// CrossLength is the length of each cross arm from its center.
	CrossLength float32 `default:"4"`

	// Duration is how long marks take to move into place.
	Duration Duration `default:"1s"`
}

func (ds *DotStyle) Defaults() {
	ds.BorderWidth = 1
	ds.Radius = 3
	ds.Opacity = 0.4
	ds.SquareSide = 6
	ds.CrossLength = 4
	ds.Duration = Duration(time.Second)
}

// LineStyle has the series line options.
type LineStyle struct {
	Draw bool
	Type LineTypes

	// Color overrides the palette for all series.
	Color string

	Width string `default:"2px"`

	// Duration is how long the line takes to be revealed.
	Duration Duration `default:"1s"`
}

func (ls *LineStyle) Defaults() {
	ls.Width = "2px"
	ls.Duration = Duration(time.Second)
}

// BarStyle has the bar options.
type BarStyle struct {
	Draw bool

	// Color overrides the palette for all series.
	Color string

	BorderWidth float32 `default:"1"`
	Opacity     float32 `default:"0.4"`

	// Duration is how long bars take to grow.
	Duration Duration `default:"800ms"`

	// Labels shows the title of each point above its bar.
	Labels bool

	LabelSize string `default:".8rem"`
}

func (bs *BarStyle) Defaults() {
	bs.BorderWidth = 1
	bs.Opacity = 0.4
	bs.Duration = Duration(800 * time.Millisecond)
	bs.LabelSize = ".8rem"
}

// MinMaxStyle has the extreme label options. Its color is also used
// for bar labels and the "No data" message.
type MinMaxStyle struct {
	DrawMin, DrawMax bool

	Color    string `default:"#6c757d"`
	FontSize string `default:".8rem"`

	// Duration is how long text takes to fade in.
	Duration Duration `default:"2s"`
}

func (ms *MinMaxStyle) Defaults() {
	ms.Color = "#6c757d"
	ms.FontSize = ".8rem"
	ms.Duration = Duration(2 * time.Second)
}

// AxisStyle has the options of one axis.
type AxisStyle struct {
	Draw      bool `default:"true"`
	DrawTitle bool `default:"true"`

	// DrawTicks shows tick labels; the ticks stay when it is off.
	DrawTicks bool `default:"true"`

	// Ticks is the number of ticks asked for on continuous axes.
	Ticks int `default:"5"`

	// Rotate turns tick labels by 45 degrees; only used on the x axis.
	Rotate bool
}

func (as *AxisStyle) Defaults() {
	as.Draw = true
	as.DrawTitle = true
	as.DrawTicks = true
	as.Ticks = 5
}

// AxesStyle has the look shared by both axes.
type AxesStyle struct {
	Color     string `default:"#D4D8DA"`
	Width     string `default:"2px"`
	TextColor string `default:"#6c757d"`
	FontSize  string `default:".8rem"`
}

func (as *AxesStyle) Defaults() {
	as.Color = "#D4D8DA"
	as.Width = "2px"
	as.TextColor = "#6c757d"
	as.FontSize = ".8rem"
}

// GridStyle has the grid options.
type GridStyle struct {
	Draw  bool   `default:"true"`
	Color string `default:"lightgrey"`
	Width string `default:"0"`
}

func (gs *GridStyle) Defaults() {
	gs.Draw = true
	gs.Color = "lightgrey"
	gs.Width = "0"
}

// NewOptions returns new options with defaults applied.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

func (o *Options) Defaults() {
	o.Palette = append([]string(nil), DefaultPalette...)
	o.Name.Defaults()
	o.Legend.Defaults()
	o.Dots.Defaults()
	o.Line.Defaults()
	o.Bar.Defaults()
	o.MinMax.Defaults()
	o.XAxis.Defaults()
	o.YAxis.Defaults()
	o.Axes.Defaults()
	o.Grid.Defaults()
	o.AddValueTitles = true
	o.TitleField = TitleY
	o.EmptyDataTextSize = "2rem"
	o.DrawAllPoints = true
	o.MinHeight = "250px"
	o.MinWidth = "250px"
}

// SetName sets the chart title and turns it on.
func (o *Options) SetName(name string) *Options {
	o.Name.Text = name
	o.Name.Draw = true
	return o
}

// SetDrawLine sets [LineStyle.Draw].
func (o *Options) SetDrawLine(on bool) *Options {
	o.Line.Draw = on
	return o
}

// SetDrawDots sets [DotStyle.Draw].
func (o *Options) SetDrawDots(on bool) *Options {
	o.Dots.Draw = on
	return o
}

// SetDrawBar sets [BarStyle.Draw].
func (o *Options) SetDrawBar(on bool) *Options {
	o.Bar.Draw = on
	return o
}

// SetDrawLegend sets [LegendStyle.Draw].
func (o *Options) SetDrawLegend(on bool) *Options {
	o.Legend.Draw = on
	return o
}

// SetLineType sets [LineStyle.Type].
func (o *Options) SetLineType(lt LineTypes) *Options {
	o.Line.Type = lt
	return o
}

// SetDotType sets [DotStyle.Type].
func (o *Options) SetDotType(dt DotTypes) *Options {
	o.Dots.Type = dt
	return o
}

// Color returns the color of the series at index i: the line, dot or
// bar color override when one is set, in that order, and otherwise the
// palette entry at i modulo the palette length. An empty palette falls
// back to evenly spaced hues.
func (o *Options) Color(i int) string {
	switch {
	case o.Line.Color != "":
		return o.Line.Color
	case o.Dots.Color != "":
		return o.Dots.Color
	case o.Bar.Color != "":
		return o.Bar.Color
	}
	if len(o.Palette) == 0 {
		return colors.AsHex(colors.Spaced(i))
	}
	return o.Palette[i%len(o.Palette)]
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	c := &Options{}
	errors.Log(copier.CopyWithOption(c, o, copier.Option{DeepCopy: true}))
	return c
}

// Validate checks that the options can be drawn with, returning all
// the problems found.
func (o *Options) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("chart: "+format, args...))
		}
	}
	check(validEnum(o.Line.Type, _LineTypesMap), "invalid line type %v", o.Line.Type)
	check(validEnum(o.Dots.Type, _DotTypesMap), "invalid dot type %v", o.Dots.Type)
	check(validEnum(o.TitleField, _TitleFieldsMap), "invalid title field %v", o.TitleField)
	check(o.Legend.TextLength > 0, "legend text length must be positive, not %v", o.Legend.TextLength)
	check(o.Legend.RowHeight > 0, "legend row height must be positive, not %v", o.Legend.RowHeight)
	check(o.XAxis.Ticks >= 0 && o.YAxis.Ticks >= 0, "tick counts must not be negative")
	check(o.Dots.Duration >= 0 && o.Line.Duration >= 0 && o.Bar.Duration >= 0 && o.MinMax.Duration >= 0, "durations must not be negative")
	for i, c := range o.Palette {
		if _, err := colors.FromString(c); err != nil {
			errs = append(errs, fmt.Errorf("chart: palette color %d: %w", i, err))
		}
	}
	for _, nc := range []struct{ what, color string }{
		{"line color", o.Line.Color},
		{"dot color", o.Dots.Color},
		{"bar color", o.Bar.Color},
		{"name color", o.Name.Color},
		{"legend text color", o.Legend.TextColor},
		{"min max color", o.MinMax.Color},
		{"axis color", o.Axes.Color},
		{"axis text color", o.Axes.TextColor},
		{"grid color", o.Grid.Color},
	} {
		if nc.color == "" {
			continue
		}
		if _, err := colors.FromString(nc.color); err != nil {
			errs = append(errs, fmt.Errorf("chart: %s: %w", nc.what, err))
		}
	}
	return errors.Join(errs...)
}

// validEnum reports whether v is one of the named values of its type.
func validEnum[T comparable](v T, names map[T]string) bool {
	_, ok := names[v]
	return ok
}

// Duration is a [time.Duration] that is written in option files as
// a duration string such as "800ms".
type Duration time.Duration

// Std returns the duration as a [time.Duration].
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
