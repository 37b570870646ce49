// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"time"

	"cogentcore.org/core/math32"
	"golang.org/x/net/html"
)

// Eases are the easing functions of transitions.
type Eases int32 //enums:enum

const (
	// EaseCubicInOut starts and ends slowly.
	EaseCubicInOut Eases = iota

	// EaseLinear progresses at a constant rate.
	EaseLinear
)

// At returns the eased progress for linear progress t in [0, 1].
func (e Eases) At(t float32) float32 {
	if e == EaseLinear {
		return t
	}
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// keySplines returns the SMIL key splines approximating the easing.
func (e Eases) keySplines() string {
	if e == EaseLinear {
		return ""
	}
	return "0.645 0.045 0.355 1"
}

// tween is one property animated by a transition.
type tween struct {
	style    bool
	name     string
	from, to float32
}

// Transition animates numeric attributes and styles of an element
// from their current values to target values over a duration,
// driven by the surface animation clock. The element shows its
// starting values until the clock is advanced.
type Transition struct {
	el     *Element
	start  time.Duration
	dur    time.Duration
	ease   Eases
	tweens []tween
}

// Transition starts a transition on the element, lasting d.
func (e *Element) Transition(d time.Duration, ease Eases) *Transition {
	tr := &Transition{el: e, start: e.surface.clock, dur: d, ease: ease}
	e.surface.transitions = append(e.surface.transitions, tr)
	return tr
}

// Attr animates an attribute to the value to.
func (tr *Transition) Attr(name string, to float32) *Transition {
	tr.tweens = append(tr.tweens, tween{name: name, from: tr.el.AttrFloat(name), to: to})
	if tr.dur <= 0 {
		tr.apply(1)
	}
	return tr
}

// Style animates a style property to the value to. A property
// that is not set starts from 0.
func (tr *Transition) Style(name string, to float32) *Transition {
	from, _ := parseLength(tr.el.Style(name))
	tr.tweens = append(tr.tweens, tween{style: true, name: name, from: float32(from), to: to})
	if tr.dur <= 0 {
		tr.apply(1)
	}
	return tr
}

// Element returns the element being animated.
func (tr *Transition) Element() *Element {
	return tr.el
}

// Duration returns the length of the transition.
func (tr *Transition) Duration() time.Duration {
	return tr.dur
}

// progress returns the linear progress of the transition at clock.
func (tr *Transition) progress(clock time.Duration) float32 {
	if tr.dur <= 0 {
		return 1
	}
	return math32.Clamp(float32(clock-tr.start)/float32(tr.dur), 0, 1)
}

// remaining returns the time left at clock.
func (tr *Transition) remaining(clock time.Duration) time.Duration {
	return max(0, tr.start+tr.dur-clock)
}

func (tr *Transition) apply(t float32) {
	k := tr.ease.At(t)
	for _, tw := range tr.tweens {
		v := tw.from + (tw.to-tw.from)*k
		if t >= 1 {
			v = tw.to
		}
		if tw.style {
			tr.el.SetStyle(tw.name, v)
		} else {
			tr.el.SetAttr(tw.name, v)
		}
	}
}

// Advance moves the animation clock forward by dt, updating every
// running transition and dropping the finished ones.
func (s *Surface) Advance(dt time.Duration) {
	s.clock += dt
	running := s.transitions[:0]
	for _, tr := range s.transitions {
		t := tr.progress(s.clock)
		tr.apply(t)
		if t < 1 {
			running = append(running, tr)
		}
	}
	clear(s.transitions[len(running):])
	s.transitions = running
}

// Settle advances the clock until every transition has finished.
func (s *Surface) Settle() {
	var longest time.Duration
	for _, tr := range s.transitions {
		longest = max(longest, tr.remaining(s.clock))
	}
	s.Advance(longest)
}

// Running returns the transitions that have not finished.
func (s *Surface) Running() []*Transition {
	return s.transitions
}

// cancelTransitions drops the transitions of n and its descendants,
// leaving their values where they are.
func (s *Surface) cancelTransitions(n *html.Node) {
	running := s.transitions[:0]
	for _, tr := range s.transitions {
		if !contains(n, tr.el.Node) {
			running = append(running, tr)
		}
	}
	clear(s.transitions[len(running):])
	s.transitions = running
}
