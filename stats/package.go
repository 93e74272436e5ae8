// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the distributions plotted by package distplot.
package stats // import "github.com/aclements/statplot/stats"

import "gonum.org/v1/gonum/floats"

// Linspace returns n evenly spaced values over [lo, hi], including
// both end points. If n is 0, it returns an empty slice, and if n is
// 1, it returns []float64{lo}. If lo > hi, the values are descending.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 0 {
		panic("stats: negative sample count")
	}
	xs := make([]float64, n)
	switch n {
	case 0:
	case 1:
		xs[0] = lo
	default:
		floats.Span(xs, lo, hi)
		// Pin the end point against rounding in the step.
		xs[n-1] = hi
	}
	return xs
}
