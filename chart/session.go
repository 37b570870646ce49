// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Session allocates the identifiers of the points, series and charts
// created through it. Identifiers are unique within a session and only
// ever increase. A Session is safe for concurrent use.
type Session struct {

	// ID uniquely identifies the session, for naming the surfaces
	// it draws onto.
	ID uuid.UUID

	points atomic.Int64
	series atomic.Int64
	charts atomic.Int64
}

// NewSession returns a new session with a random id.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// PointID returns the next point identifier, of the form point-N.
func (s *Session) PointID() string {
	return "point-" + strconv.FormatInt(s.points.Add(1), 10)
}

func (s *Session) nextSeries() int {
	return int(s.series.Add(1))
}

func (s *Session) nextChart() int {
	return int(s.charts.Add(1))
}

// NewPoint returns a new drawable point at x, y with the next identifier.
func (s *Session) NewPoint(x, y Value) *Point {
	return &Point{ID: s.PointID(), X: x, Y: y, Draw: true}
}

// NewSeries returns a new series with the given legend name and points,
// inferring its point types from the first point.
func (s *Session) NewSeries(name string, points ...*Point) *Series {
	sr := &Series{ID: s.nextSeries(), Name: name, Type: LineChart, XType: Date, YType: Number}
	sr.Points = points
	if len(points) > 0 {
		sr.XType = points[0].X.Type
		sr.YType = points[0].Y.Type
	}
	return sr
}

// NewContainer returns a new empty chart container. Nil options
// are replaced by [NewOptions].
func (s *Session) NewContainer(name string, typ ChartTypes, opts *Options) *Container {
	if opts == nil {
		opts = NewOptions()
	}
	return &Container{
		ID:         s.nextChart(),
		Name:       name,
		Type:       typ,
		Options:    opts,
		XType:      Date,
		YType:      Number,
		DateFormat: DefaultDateFormat,
	}
}
