// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "cogentcore.org/core/math32"

// Types are the pointer event types delivered to elements.
type Types int32 //enums:enum -transform lower

const (
	// MouseOver is sent when the pointer enters an element.
	MouseOver Types = iota

	// MouseOut is sent when the pointer leaves an element.
	MouseOut

	// Click is sent when an element is clicked.
	Click
)

// Event is a pointer event delivered to an element.
type Event struct {

	// Type is the event type.
	Type Types

	// Target is the element the event was dispatched to.
	Target *Element

	// Pos is the pointer position in surface coordinates.
	Pos math32.Vector2

	handled bool
}

// SetHandled marks the event as handled, which stops it from going
// to any more listeners.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled reports whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific elements.
type Listeners map[Types][]func(ev *Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(*Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev *Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}

// On adds a listener for events of the given type on the element.
func (e *Element) On(typ Types, fun func(ev *Event)) *Element {
	ls := e.surface.listeners[e.Node]
	if ls == nil {
		ls = &Listeners{}
		e.surface.listeners[e.Node] = ls
	}
	ls.Add(typ, fun)
	return e
}

// Listens reports whether the element has any listeners.
func (e *Element) Listens() bool {
	ls := e.surface.listeners[e.Node]
	return ls != nil && len(*ls) > 0
}

// Dispatch sends an event of the given type to the target element and
// then its ancestors, until one of the listeners handles it.
// It returns the event.
func (s *Surface) Dispatch(typ Types, target *Element, pos math32.Vector2) *Event {
	ev := &Event{Type: typ, Target: target, Pos: pos}
	if target == nil {
		return ev
	}
	for n := target.Node; n != nil && !ev.IsHandled(); n = n.Parent {
		if ls := s.listeners[n]; ls != nil {
			ls.Call(ev)
		}
	}
	return ev
}
