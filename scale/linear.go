// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/core/math32/minmax"
)

// LinearScale maps a continuous numeric domain onto a pixel range.
// The range may be reversed (R0 > R1), which is the normal case for
// y axes where pixel 0 is at the top.
type LinearScale struct {

	// Domain is the data range.
	Domain minmax.F64

	// R0 and R1 are the pixel positions of Domain.Min and Domain.Max.
	R0, R1 float32
}

// NewLinear returns a new linear scale for domain [d0, d1] and range [r0, r1].
func NewLinear(d0, d1 float64, r0, r1 float32) *LinearScale {
	ls := &LinearScale{R0: r0, R1: r1}
	ls.Domain.Set(d0, d1)
	return ls
}

func (ls *LinearScale) Kind() Kinds { return Linear }

// Map returns the pixel position for v. A degenerate (zero width) domain
// maps every value onto the middle of the range.
func (ls *LinearScale) Map(v float64) float32 {
	return mapContinuous(&ls.Domain, ls.R0, ls.R1, v)
}

func (ls *LinearScale) Invert(px float32) float64 {
	return invertContinuous(&ls.Domain, ls.R0, ls.R1, px)
}

// Ticks returns nicely rounded values that lie within the domain.
func (ls *LinearScale) Ticks(n int) []float64 {
	return niceTicks(ls.Domain.Min, ls.Domain.Max, n)
}

func mapContinuous(dom *minmax.F64, r0, r1 float32, v float64) float32 {
	rng := dom.Range()
	if rng == 0 {
		return 0.5 * (r0 + r1)
	}
	t := (v - dom.Min) / rng
	return r0 + float32(t)*(r1-r0)
}

func invertContinuous(dom *minmax.F64, r0, r1 float32, px float32) float64 {
	if r0 == r1 {
		return dom.Midpoint()
	}
	t := float64((px - r0) / (r1 - r0))
	return dom.Min + t*dom.Range()
}

// niceTicks runs the labelling search restricted to values within [lo, hi].
func niceTicks(lo, hi float64, n int) []float64 {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}
	if n < 2 {
		n = 2
	}
	vals := talbotLinHanrahan(lo, hi, n, withinData)
	return vals
}
