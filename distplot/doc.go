// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distplot draws probability density curves, and shaded
// areas under them, onto gonum plots.
//
// Every function takes the *plot.Plot to draw on explicitly. A plot
// is not safe for concurrent use, so callers that share one between
// goroutines must serialize access themselves.
//
// A typical use draws a density curve and then shades part of it
// using the returned distribution:
//
//	d, p, err := distplot.Norm(nil, 0, 1, nil)
//	...
//	err = distplot.Area(p, d, -1, 1, nil)
//	...
//	err = p.Save(4*vg.Inch, 3*vg.Inch, "norm.png")
package distplot // import "github.com/aclements/statplot/distplot"
