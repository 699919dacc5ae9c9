// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders charts of benchmark tables.
//
// A ChartSpec names an input table, the columns to plot and how to
// derive them, the chart's labels, and an output image. A Renderer
// runs each spec through one pass of load, derive, draw, and save.
// Either the whole image is written or nothing is.
//
// ThroughputCharts and QueryComparisonChart return the specs of the
// built-in reports. Other charts can be described in a JSON Config.
package benchplot
