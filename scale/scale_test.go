// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBand(t *testing.T) {
	bs := NewBand([]float64{10, 20, 30}, 0, 100, 0.2)
	assert.Equal(t, Band, bs.Kind())
	assert.InDelta(t, 31.25, bs.Step(), 1e-4)
	assert.InDelta(t, 25, bs.Bandwidth(), 1e-4)
	assert.InDelta(t, 6.25, bs.Map(10), 1e-4)
	assert.InDelta(t, 37.5, bs.Map(20), 1e-4)
	assert.InDelta(t, 68.75, bs.Map(30), 1e-4)
	assert.InDelta(t, 18.75, bs.Center(10), 1e-4)
	assert.True(t, math.IsNaN(float64(bs.Map(15))))
	assert.False(t, bs.Contains(15))

	assert.Equal(t, 20.0, bs.Invert(40))
	assert.Equal(t, 10.0, bs.Invert(-50))
	assert.Equal(t, 30.0, bs.Invert(500))
	assert.Equal(t, []float64{10, 20, 30}, bs.Ticks(5))
}

func TestBandDuplicatesAndReverse(t *testing.T) {
	bs := NewBand([]float64{1, 2, 1, 3}, 0, 100, 0.2)
	assert.Equal(t, []float64{1, 2, 3}, bs.Domain())

	rev := NewBand([]float64{1, 2, 3}, 100, 0, 0.2)
	assert.InDelta(t, bs.Map(3), rev.Map(1), 1e-4)
	assert.InDelta(t, bs.Map(1), rev.Map(3), 1e-4)
	assert.Equal(t, 3.0, rev.Invert(bs.Map(1)+1))
}

func TestBandEmpty(t *testing.T) {
	bs := NewBand(nil, 0, 100, 0.2)
	assert.Empty(t, bs.Domain())
	assert.True(t, math.IsNaN(bs.Invert(10)))
}

func TestLinear(t *testing.T) {
	ls := NewLinear(0, 5, 300, 0)
	assert.Equal(t, Linear, ls.Kind())
	assert.InDelta(t, 0, ls.Map(5), 1e-4)
	assert.InDelta(t, 300, ls.Map(0), 1e-4)
	assert.InDelta(t, 150, ls.Map(2.5), 1e-4)
	assert.InDelta(t, 2.5, ls.Invert(150), 1e-6)

	flat := NewLinear(0, 0, 300, 0)
	assert.InDelta(t, 150, flat.Map(0), 1e-4)
	assert.Equal(t, []float64{0}, flat.Ticks(5))
}

func TestLinearTicks(t *testing.T) {
	tests := []struct {
		lo, hi float64
	}{
		{0, 5},
		{0, 100},
		{0, 0.05},
		{0, 1234},
	}
	for _, tt := range tests {
		ticks := NewLinear(tt.lo, tt.hi, 100, 0).Ticks(5)
		require.NotEmpty(t, ticks)
		assert.GreaterOrEqual(t, len(ticks), 2, "range %v-%v", tt.lo, tt.hi)
		for i, v := range ticks {
			assert.GreaterOrEqual(t, v, tt.lo)
			assert.LessOrEqual(t, v, tt.hi)
			if i > 0 {
				assert.Greater(t, v, ticks[i-1])
			}
		}
	}
	assert.Equal(t, 0.0, NewLinear(0, 100, 100, 0).Ticks(5)[0])
}

func TestTimeTicks(t *testing.T) {
	t0 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	ts := NewTime(t0, t1, 0, 500)
	assert.Equal(t, Time, ts.Kind())
	assert.InDelta(t, 0, ts.MapTime(t0), 1e-3)
	assert.InDelta(t, 500, ts.MapTime(t1), 1e-3)

	ticks := ts.Ticks(5)
	require.Len(t, ticks, 6)
	for i, v := range ticks {
		assert.True(t, ToTime(v).Equal(t0.AddDate(0, 0, i)))
	}
}

func TestTimeTicksMonths(t *testing.T) {
	t0 := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
	ticks := NewTime(t0, t1, 0, 500).Ticks(4)
	require.NotEmpty(t, ticks)
	for _, v := range ticks {
		tm := ToTime(v)
		assert.Equal(t, 1, tm.Day())
		assert.Contains(t, []time.Month{time.January, time.April, time.July, time.October}, tm.Month())
	}
}

func TestTimeTicksLocation(t *testing.T) {
	zone := time.FixedZone("", 2*3600)
	t0 := time.Date(2024, time.March, 1, 0, 0, 0, 0, zone)
	t1 := time.Date(2024, time.March, 6, 0, 0, 0, 0, zone)
	ts := NewTime(t0, t1, 0, 500)
	assert.Equal(t, zone, ts.Location)

	ticks := ts.Ticks(5)
	require.Len(t, ticks, 6)
	for i, v := range ticks {
		tm := ToTimeIn(v, ts.Location)
		assert.True(t, tm.Equal(t0.AddDate(0, 0, i)))
		assert.Equal(t, 0, tm.Hour())
		assert.Equal(t, i+1, tm.Day())
	}

	// the same instants tick on UTC midnights without a location
	ts.Location = nil
	for _, v := range ts.Ticks(5) {
		assert.Equal(t, 0, ToTime(v).Hour())
	}
}

func TestToTimeIn(t *testing.T) {
	zone := time.FixedZone("", -5*3600)
	tm := time.Date(2024, time.March, 1, 0, 0, 0, 0, zone)
	got := ToTimeIn(FromTime(tm), zone)
	assert.True(t, got.Equal(tm))
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 5, ToTime(FromTime(tm)).Hour())
	assert.Equal(t, time.UTC, ToTimeIn(0, nil).Location())
}

func TestKindsEnum(t *testing.T) {
	assert.Equal(t, "Band", Band.String())
	var k Kinds
	require.NoError(t, k.SetString("Time"))
	assert.Equal(t, Time, k)
	assert.Equal(t, []Kinds{Linear, Time, Band}, KindsValues())
}

func TestFromTime(t *testing.T) {
	tm := time.Date(2020, time.March, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, float64(tm.UnixMilli()), FromTime(tm))
	assert.True(t, ToTime(FromTime(tm)).Equal(tm))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		dec  int
		want string
	}{
		{5, 0, "5"},
		{0.05, 2, "0.05"},
		{1234.567, 2, "1,234.57"},
		{1, 1, "1.0"},
		{3, -1, "3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.dec))
	}
}

func TestFormatDate(t *testing.T) {
	tm := time.Date(1986, time.January, 28, 11, 39, 13, 0, time.UTC)
	assert.Equal(t, "28-Jan-86", FormatDate(tm, DefaultDateFormat))
	assert.Equal(t, "1986-01-28", FormatDate(tm, "%Y-%m-%d"))

	f, err := DateFormatter("%H:%M")
	require.NoError(t, err)
	assert.Equal(t, "11:39", f(tm))
}
