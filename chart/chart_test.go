// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func dateSeries(s *Session, name string, ys ...float64) *Series {
	pts := make([]*Point, len(ys))
	for i, y := range ys {
		pts[i] = s.NewPoint(DateValue(day(i+1)), NumberValue(y))
	}
	return s.NewSeries(name, pts...)
}

func TestPointIDs(t *testing.T) {
	s := NewSession()
	a := s.NewPoint(NumberValue(1), NumberValue(2))
	b := s.NewPoint(NumberValue(1), NumberValue(2))
	assert.Equal(t, "point-1", a.ID)
	assert.Equal(t, "point-2", b.ID)
	assert.True(t, a.Draw)

	other := NewSession()
	assert.Equal(t, "point-1", other.NewPoint(NumberValue(0), NumberValue(0)).ID)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestSeriesTypes(t *testing.T) {
	s := NewSession()
	sr := s.NewSeries("n", s.NewPoint(NumberValue(1), NumberValue(2)))
	assert.Equal(t, Number, sr.XType)
	assert.Equal(t, Number, sr.YType)

	sr = dateSeries(s, "d", 1)
	assert.Equal(t, Date, sr.XType)

	empty := s.NewSeries("e")
	assert.Equal(t, Date, empty.XType)
	assert.Equal(t, Number, empty.YType)
	assert.Equal(t, Stats{}, empty.Stats())
	assert.False(t, empty.StatsComputed())
}

func TestStatsFirstWinsTies(t *testing.T) {
	s := NewSession()
	sr := dateSeries(s, "a", 3, 7, 1, 7, 1)
	st := sr.Stats()
	assert.Equal(t, 7.0, st.YMax.Y.Num)
	assert.True(t, st.YMax.X.Time.Equal(day(2)))
	assert.Equal(t, 1.0, st.YMin.Y.Num)
	assert.True(t, st.YMin.X.Time.Equal(day(3)))
	assert.True(t, st.XMax.Time.Equal(day(5)))
}

func TestStatsSortsByX(t *testing.T) {
	s := NewSession()
	sr := s.NewSeries("a",
		s.NewPoint(NumberValue(3), NumberValue(30)),
		s.NewPoint(NumberValue(1), NumberValue(10)),
		s.NewPoint(NumberValue(2), NumberValue(20)))
	st := sr.Stats()
	assert.Equal(t, 3.0, st.XMax.Num)
	for i, pt := range sr.Points {
		assert.Equal(t, float64(i+1), pt.X.Num)
	}
}

func TestStatsDrawable(t *testing.T) {
	s := NewSession()
	sr := dateSeries(s, "a", 1, 9, 4)
	sr.Points[1].SetDraw(false)
	st := sr.Stats()
	assert.Equal(t, 4.0, st.YMax.Y.Num)
	assert.Equal(t, 1.0, st.YMin.Y.Num)

	none := dateSeries(s, "b", 2, 8)
	for _, pt := range none.Points {
		pt.SetDraw(false)
	}
	assert.Equal(t, 8.0, none.Stats().YMax.Y.Num)
}

func TestStatsMemoized(t *testing.T) {
	s := NewSession()
	sr := dateSeries(s, "a", 1, 5, 3)
	first := sr.Stats()
	require.True(t, sr.StatsComputed())

	sr.Points[0].Y = NumberValue(100)
	sr.Points = append(sr.Points, s.NewPoint(DateValue(day(20)), NumberValue(-4)))
	assert.Equal(t, first, sr.Stats())
}

func TestPrepareXDomain(t *testing.T) {
	s := NewSession()
	a := s.NewSeries("a",
		s.NewPoint(DateValue(day(3)), NumberValue(1)),
		s.NewPoint(DateValue(day(1)), NumberValue(2)))
	b := s.NewSeries("b",
		s.NewPoint(DateValue(day(2)), NumberValue(3)),
		s.NewPoint(DateValue(day(3).In(time.FixedZone("x", 3600))), NumberValue(4)))
	c := s.NewContainer("c", LineChart, nil).Add(a, b)
	require.NoError(t, c.Prepare())

	require.Len(t, c.XDomain, 3)
	for i, v := range c.XDomain {
		assert.True(t, v.Time.Equal(day(i+1)))
	}
	assert.True(t, c.XMax.Time.Equal(day(3)))
	assert.Equal(t, 4.0, c.YMax.Y.Num)
	assert.Equal(t, 1.0, c.YMin.Y.Num)
	assert.Equal(t, Date, c.XType)
	assert.Nil(t, c.YDomain)
}

func TestPrepareFirstSeriesWinsTies(t *testing.T) {
	s := NewSession()
	a := dateSeries(s, "a", 5, 1)
	b := s.NewSeries("b",
		s.NewPoint(DateValue(day(10)), NumberValue(5)),
		s.NewPoint(DateValue(day(11)), NumberValue(1)))
	c := s.NewContainer("c", LineChart, nil).Add(a, b)
	require.NoError(t, c.Prepare())
	assert.True(t, c.YMax.X.Time.Equal(day(1)))
	assert.True(t, c.YMin.X.Time.Equal(day(2)))
}

func TestPrepareNames(t *testing.T) {
	s := NewSession()
	a := dateSeries(s, "a", 1).SetAxisNames("when", "how much")
	b := dateSeries(s, "b", 2).SetAxisNames("other", "other")
	c := s.NewContainer("c", LineChart, nil).Add(a, b)
	require.NoError(t, c.Prepare())
	assert.Equal(t, "when", c.XName)
	assert.Equal(t, "how much", c.YName)
}

func TestPrepareDateY(t *testing.T) {
	s := NewSession()
	sr := s.NewSeries("a",
		s.NewPoint(NumberValue(1), DateValue(day(5))),
		s.NewPoint(NumberValue(2), DateValue(day(2))),
		s.NewPoint(NumberValue(3), DateValue(day(5))))
	c := s.NewContainer("c", LineChart, nil).Add(sr)
	require.NoError(t, c.Prepare())
	require.Len(t, c.YDomain, 2)
	assert.True(t, c.YDomain[0].Time.Equal(day(2)))
	assert.True(t, c.YDomain[1].Time.Equal(day(5)))
	assert.Equal(t, 0, c.YAccuracy)
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		max  float64
		want int
	}{
		{0.05, 2},
		{1, 1},
		{5, 0},
		{0, 0},
		{-0.5, 0},
		{0.5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Accuracy(tt.max), "max %v", tt.max)
	}
}

func TestPrepareAccuracy(t *testing.T) {
	s := NewSession()
	sr := s.NewSeries("a",
		s.NewPoint(NumberValue(0.01), NumberValue(0.02)),
		s.NewPoint(NumberValue(0.05), NumberValue(0.05)))
	c := s.NewContainer("c", LineChart, nil).Add(sr).SetExtraYAccuracy(1)
	require.NoError(t, c.Prepare())
	assert.Equal(t, 2, c.XAccuracy)
	assert.Equal(t, 3, c.YAccuracy)

	// preparing again does not add the extra precision twice
	require.NoError(t, c.Prepare())
	assert.Equal(t, 3, c.YAccuracy)
}

func TestPrepareEmpty(t *testing.T) {
	s := NewSession()
	c := s.NewContainer("c", LineChart, nil)
	assert.True(t, c.Loading())
	require.NoError(t, c.Prepare())
	assert.Nil(t, c.XDomain)

	c.Add(s.NewSeries("empty"))
	assert.False(t, c.Loading())
	require.NoError(t, c.Prepare())
	assert.Zero(t, c.PointCount())
	assert.Empty(t, c.XDomain)
}

func TestPrepareMixedTypes(t *testing.T) {
	s := NewSession()
	a := dateSeries(s, "dates", 1, 2)
	b := s.NewSeries("numbers", s.NewPoint(NumberValue(1), NumberValue(1)))
	c := s.NewContainer("c", LineChart, nil).Add(a, b)
	err := c.Prepare()
	require.Error(t, err)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "numbers", ce.Series)
	assert.Equal(t, "x", ce.Axis)
	assert.Equal(t, Date, ce.Want)
	assert.Equal(t, Number, ce.Got)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, NumberValue(2).Equal(NumberValue(2)))
	assert.False(t, NumberValue(2).Equal(DateValue(day(1))))
	assert.True(t, DateValue(day(1)).Equal(DateValue(day(1).In(time.FixedZone("y", -7200)))))
	assert.Equal(t, "2.5", NumberValue(2.5).String())
}

func TestPrepareTypesFromFirstSeries(t *testing.T) {
	s := NewSession()
	c := s.NewContainer("c", LineChart, nil).Add(
		s.NewSeries("empty").SetAxisNames("when", "what"),
		s.NewSeries("numbers", s.NewPoint(NumberValue(1), NumberValue(1))))
	var ce *ConfigurationError
	require.ErrorAs(t, c.Prepare(), &ce)
	assert.Equal(t, "numbers", ce.Series)
	assert.Equal(t, Date, ce.Want)
	assert.Equal(t, Number, ce.Got)

	c = s.NewContainer("c", LineChart, nil).Add(
		s.NewSeries("empty").SetAxisNames("when", "what"),
		dateSeries(s, "dates", 1, 2).SetAxisNames("other", "other"))
	require.NoError(t, c.Prepare())
	assert.Equal(t, Date, c.XType)
	assert.Equal(t, Number, c.YType)
	assert.Equal(t, "when", c.XName)
	assert.Len(t, c.XDomain, 2)
}

func TestPrepareCloseInstants(t *testing.T) {
	s := NewSession()
	at := day(1)
	near := at.Add(100 * time.Nanosecond)
	require.Equal(t, DateValue(at).Key(), DateValue(near).Key())
	sr := s.NewSeries("a",
		s.NewPoint(DateValue(at), NumberValue(1)),
		s.NewPoint(DateValue(near), NumberValue(2)),
		s.NewPoint(DateValue(day(2)), NumberValue(3)))
	c := s.NewContainer("c", LineChart, nil).Add(sr)
	require.NoError(t, c.Prepare())
	require.Len(t, c.XDomain, 2)
	assert.True(t, c.XDomain[0].Time.Equal(at))

	keys := Keys(c.XDomain)
	assert.NotEqual(t, keys[0], keys[1])
}
