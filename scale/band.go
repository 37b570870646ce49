// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"slices"

	"cogentcore.org/core/math32"
)

// BandScale is an ordinal scale that divides the pixel range into
// equal width bands, one per domain value, in domain order.
// Padding is expressed as a fraction of the step between bands.
type BandScale struct {

	// R0 and R1 are the ends of the pixel range.
	R0, R1 float32

	// PaddingInner is the fraction of each step left empty between bands.
	PaddingInner float32

	// PaddingOuter is the space before the first and after the last band,
	// as a fraction of the step.
	PaddingOuter float32

	// Align positions the bands within any leftover outer space,
	// 0 for the start, 0.5 centered, 1 for the end.
	Align float32

	domain    []float64
	index     map[float64]int
	start     float32
	step      float32
	bandwidth float32
}

// NewBand returns a band scale over the given ordered domain, spanning
// the pixel range [r0, r1], with the same inner and outer padding.
func NewBand(domain []float64, r0, r1 float32, padding float32) *BandScale {
	bs := &BandScale{R0: r0, R1: r1, Align: 0.5}
	bs.SetPadding(padding)
	bs.SetDomain(domain)
	return bs
}

// SetDomain sets the ordered domain values. Duplicates keep their
// first position.
func (bs *BandScale) SetDomain(domain []float64) *BandScale {
	bs.domain = bs.domain[:0]
	bs.index = make(map[float64]int, len(domain))
	for _, v := range domain {
		if _, has := bs.index[v]; has {
			continue
		}
		bs.index[v] = len(bs.domain)
		bs.domain = append(bs.domain, v)
	}
	bs.rescale()
	return bs
}

// SetPadding sets both the inner and outer padding.
func (bs *BandScale) SetPadding(p float32) *BandScale {
	bs.PaddingInner = math32.Min(1, p)
	bs.PaddingOuter = p
	bs.rescale()
	return bs
}

func (bs *BandScale) rescale() {
	n := float32(len(bs.domain))
	start, stop := bs.R0, bs.R1
	if stop < start {
		start, stop = stop, start
	}
	bs.step = (stop - start) / math32.Max(1, n-bs.PaddingInner+bs.PaddingOuter*2)
	bs.start = start + (stop-start-bs.step*(n-bs.PaddingInner))*bs.Align
	bs.bandwidth = bs.step * (1 - bs.PaddingInner)
}

func (bs *BandScale) Kind() Kinds { return Band }

// Domain returns the ordered domain values.
func (bs *BandScale) Domain() []float64 { return slices.Clone(bs.domain) }

// Bandwidth returns the width of each band.
func (bs *BandScale) Bandwidth() float32 { return bs.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (bs *BandScale) Step() float32 { return bs.step }

// Contains returns whether v is one of the domain values.
func (bs *BandScale) Contains(v float64) bool {
	_, has := bs.index[v]
	return has
}

// Map returns the start of the band for v, or NaN if v is not in the domain.
func (bs *BandScale) Map(v float64) float32 {
	i, has := bs.index[v]
	if !has {
		return math32.NaN()
	}
	if bs.R1 < bs.R0 {
		i = len(bs.domain) - 1 - i
	}
	return bs.start + bs.step*float32(i)
}

// Center returns the middle of the band for v.
func (bs *BandScale) Center(v float64) float32 {
	return bs.Map(v) + bs.bandwidth/2
}

// Invert returns the domain value whose step contains px, clamping to
// the first and last bands. It returns NaN for an empty domain.
func (bs *BandScale) Invert(px float32) float64 {
	n := len(bs.domain)
	if n == 0 || bs.step == 0 {
		return math.NaN()
	}
	i := int(math32.Floor((px - bs.start) / bs.step))
	i = max(0, min(n-1, i))
	if bs.R1 < bs.R0 {
		i = n - 1 - i
	}
	return bs.domain[i]
}

// Ticks returns every domain value; band axes label each band.
func (bs *BandScale) Ticks(n int) []float64 {
	return bs.Domain()
}
