// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "cogentcore.org/insight/shape"

// PointTypes are the value domains of a chart axis.
type PointTypes int32 //enums:enum

const (
	// Date values are instants in time.
	Date PointTypes = iota

	// Number values are plain numbers.
	Number
)

// ChartTypes are the kinds of chart a series or container is meant for.
type ChartTypes int32 //enums:enum

const (
	LineChart ChartTypes = iota
	BarChart
	CrossDotChart
	SquareDotChart
	CircleDotChart
	MixedChart
)

// DotTypes are the marks drawn for individual points.
type DotTypes int32 //enums:enum

const (
	Circle DotTypes = iota
	Cross
	Square
)

// LineTypes are the ways a series line is drawn through its points.
type LineTypes int32 //enums:enum

const (
	// StraightPath joins points with straight segments.
	StraightPath LineTypes = iota

	// CurveLinear is the same as StraightPath.
	CurveLinear

	// CurveStep draws horizontal and vertical steps between points.
	CurveStep

	// CurveCardinal is a smooth spline through every point.
	CurveCardinal

	// CurveBasis is a smooth spline that only approaches interior points.
	CurveBasis
)

// Curve returns the path interpolation for the line type.
func (i LineTypes) Curve() shape.Curves {
	switch i {
	case CurveStep:
		return shape.Step
	case CurveCardinal:
		return shape.Cardinal
	case CurveBasis:
		return shape.Basis
	}
	return shape.Linear
}

// TitleFields select what the tooltip of a point shows.
type TitleFields int32 //enums:enum -trim-prefix Title

const (
	// TitleX shows the formatted x value.
	TitleX TitleFields = iota

	// TitleY shows the formatted y value.
	TitleY

	// TitleText shows the point's own title.
	TitleText

	// TitleXY shows both values as "(x,y)".
	TitleXY
)

// GroupTypes are the sides a series' y axis can be drawn on.
type GroupTypes int32 //enums:enum

const (
	Left GroupTypes = iota
	Right
)
