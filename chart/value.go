// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"strconv"
	"time"

	"cogentcore.org/insight/scale"
)

// Value is a coordinate of a point: either a number or an instant,
// as given by Type.
type Value struct {

	// Type is which of Num or Time holds the value.
	Type PointTypes

	// Num is the value of a Number.
	Num float64

	// Time is the value of a Date.
	Time time.Time
}

// NumberValue returns a Number value.
func NumberValue(v float64) Value {
	return Value{Type: Number, Num: v}
}

// DateValue returns a Date value.
func DateValue(t time.Time) Value {
	return Value{Type: Date, Time: t}
}

// Key returns the numeric ordering key of the value: the number itself,
// or unix milliseconds for dates. It is what scales map.
func (v Value) Key() float64 {
	if v.Type == Date {
		return scale.FromTime(v.Time)
	}
	return v.Num
}

// Equal reports whether v and o are the same value: the same instant
// for dates and equal numbers otherwise.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	if v.Type == Date {
		return v.Time.Equal(o.Time)
	}
	return v.Num == o.Num
}

// IsZero reports whether v is the zero value of its type.
func (v Value) IsZero() bool {
	if v.Type == Date {
		return v.Time.IsZero()
	}
	return v.Num == 0
}

func (v Value) String() string {
	if v.Type == Date {
		return v.Time.Format(time.RFC3339Nano)
	}
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}

// valueKey identifies a value the way scales do, for deduplication:
// instants whose keys are equal fall in the same band.
type valueKey struct {
	typ PointTypes
	key float64
}

func (v Value) ident() valueKey {
	return valueKey{typ: v.Type, key: v.Key()}
}
