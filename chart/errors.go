// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "fmt"

// ConfigurationError is returned by [Container.Prepare] when the series
// of a chart do not share point types, which a chart cannot be drawn with.
type ConfigurationError struct {

	// Series is the legend name of the offending series.
	Series string

	// Axis is "x" or "y".
	Axis string

	// Want is the point type of the first series on that axis.
	Want PointTypes

	// Got is the point type found.
	Got PointTypes
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("chart: series %q has %s %s values, want %s like the first series", e.Series, e.Got, e.Axis, e.Want)
}
