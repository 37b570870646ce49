// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is an implementation of the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130 with reference to the R
// implementation in the labeling package, ©2014 Justin Talbot (Licensed
// MIT+file LICENSE|Unlimited).

package scale

import "math"

const (
	// dlamchP is base * machine epsilon.
	dlamchP = 2.0 / (1 << 53)

	// labelEps is the tolerance used for range and modulus comparisons.
	labelEps = dlamchP * 100
)

const (
	// free indicates no restriction on label containment.
	free = iota
	// containData specifies that all the data range lies
	// within the interval [label_min, label_max].
	containData
	// withinData specifies that all labels lie within the
	// interval [dMin, dMax].
	withinData
)

// niceQ are the nice step multipliers, in order of preference.
var niceQ = []float64{1, 5, 2, 2.5, 4, 3}

// labelWeights are the weights from the paper.
var labelWeights = weights{
	simplicity: 0.25,
	coverage:   0.2,
	density:    0.5,
	legibility: 0.05,
}

// talbotLinHanrahan returns an optimal set of approximately want label values
// for the data range [dMin, dMax]. containment is one of free, containData
// and withinData. Legibility is not assessed, every candidate scores 1.
func talbotLinHanrahan(dMin, dMax float64, want int, containment int) []float64 {
	w := &labelWeights
	Q := niceQ

	if r := dMax - dMin; r < labelEps {
		return evenLabels(dMin, dMax, want)
	}

	type selection struct {
		// n is the number of labels selected.
		n int
		// lMin is the selected min label value,
		// lStep the selected step multiplier.
		lMin, lStep float64
		// score is the score for the selection.
		score float64
		// magnitude is the magnitude of the
		// label step distance.
		magnitude int
	}
	best := selection{score: -2}

outer:
	for skip := 1; ; skip++ {
		for _, q := range Q {
			sm := maxSimplicity(q, Q, skip)
			if w.score(sm, 1, 1, 1) < best.score {
				break outer
			}

			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if w.score(sm, 1, dm, 1) < best.score {
					break
				}

				delta := (dMax - dMin) / float64(have+1) / float64(skip) / q

				const maxExp = 309
				for mag := int(math.Ceil(math.Log10(delta))); mag < maxExp; mag++ {
					step := float64(skip) * q * math.Pow10(mag)

					cm := maxCoverage(dMin, dMax, step*float64(have-1))
					if w.score(sm, cm, dm, 1) < best.score {
						break
					}

					fracStep := step / float64(skip)
					kStep := step * float64(have-1)

					minStart := (math.Floor(dMax/step) - float64(have-1)) * float64(skip)
					maxStart := math.Ceil(dMax/step) * float64(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * fracStep
						lMax := lMin + kStep

						switch containment {
						case containData:
							if dMin < lMin || lMax < dMax {
								continue
							}
						case withinData:
							if lMin < dMin-labelEps || dMax+labelEps < lMax {
								continue
							}
						}

						score := w.score(
							simplicity(q, Q, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
							1,
						)
						if score > best.score {
							best = selection{
								n:         have,
								lMin:      lMin,
								lStep:     float64(skip) * q,
								score:     score,
								magnitude: mag,
							}
						}
					}
				}
			}
		}
	}

	if best.score == -2 {
		return evenLabels(dMin, dMax, want)
	}

	l := make([]float64, best.n)
	step := best.lStep * math.Pow10(best.magnitude)
	for i := range l {
		l[i] = cleanFloat(best.lMin+float64(i)*step, step)
	}
	return l
}

// evenLabels returns want labels spaced evenly from dMin to dMax.
func evenLabels(dMin, dMax float64, want int) []float64 {
	if want < 2 {
		return []float64{dMin}
	}
	l := make([]float64, want)
	step := (dMax - dMin) / float64(want-1)
	for i := range l {
		l[i] = dMin + float64(i)*step
	}
	return l
}

// cleanFloat removes accumulated error below the precision of step,
// so 0.1*3 comes out as 0.3.
func cleanFloat(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	prec := math.Pow10(int(-math.Floor(math.Log10(step))) + 2)
	return math.Round(v*prec) / prec
}

// simplicity scores how well q, skip and the labels from lMin to lMax
// in steps of lStep use the nice numbers Q. Labels including zero score
// higher.
func simplicity(q float64, Q []float64, skip int, lMin, lMax, lStep float64) float64 {
	for i, v := range Q {
		if v == q {
			m := math.Mod(lMin, lStep)
			v = 0
			if (m < labelEps || lStep-m < labelEps) && lMin <= 0 && 0 <= lMax {
				v = 1
			}
			return 1 - float64(i)/(float64(len(Q))-1) - float64(skip) + v
		}
	}
	panic("labelling: invalid q for Q")
}

// maxSimplicity returns the maximum simplicity for q, Q and skip.
func maxSimplicity(q float64, Q []float64, skip int) float64 {
	for i, v := range Q {
		if v == q {
			return 1 - float64(i)/(float64(len(Q))-1) - float64(skip) + 1
		}
	}
	panic("labelling: invalid q for Q")
}

// coverage returns the coverage score for based on the average
// squared distance between the extreme labels, lMin and lMax, and
// the extreme data points, dMin and dMax.
func coverage(dMin, dMax, lMin, lMax float64) float64 {
	r := 0.1 * (dMax - dMin)
	max := dMax - lMax
	min := dMin - lMin
	return 1 - 0.5*(max*max+min*min)/(r*r)
}

// maxCoverage returns the maximum coverage achievable for the data
// range.
func maxCoverage(dMin, dMax, span float64) float64 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density returns the density score which measures the goodness of
// the labelling density compared to the user defined target
// based on the want parameter given to talbotLinHanrahan.
func density(have, want int, dMin, dMax, lMin, lMax float64) float64 {
	rho := float64(have-1) / (lMax - lMin)
	rhot := float64(want-1) / (math.Max(lMax, dMax) - math.Min(dMin, lMin))
	if d := rho / rhot; d >= 1 {
		return 2 - d
	}
	return 2 - rhot/rho
}

// maxDensity returns the maximum density score achievable for have and want.
func maxDensity(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}

// weights are the weights of the four scores of a labelling.
type weights struct {
	simplicity, coverage, density, legibility float64
}

// score returns the weighted total of the four scores.
func (w *weights) score(s, c, d, l float64) float64 {
	return w.simplicity*s + w.coverage*c + w.density*d + w.legibility*l
}
