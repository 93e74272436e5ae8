// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"fmt"
	"image/color"

	"github.com/aclements/statplot/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// AreaOptions controls how Area shades a region.
//
// The zero value, like a nil *AreaOptions, uses the defaults.
type AreaOptions struct {
	// NPts is the number of points at which to evaluate the
	// density. If this is 0, it defaults to 500.
	NPts int

	// Style, if non-nil, is called with the filled region before
	// it is added to the plot. It may change any field of the
	// polygon, such as its Color or LineStyle.
	Style func(*plotter.Polygon)
}

func (o *AreaOptions) npts() int {
	if o == nil || o.NPts == 0 {
		return defaultNPts
	}
	return o.NPts
}

// defaultFill is the fill color of areas that are not restyled.
var defaultFill = color.NRGBA{R: defaultColor.R, G: defaultColor.G, B: defaultColor.B, A: 0x66}

// Area shades the region under the density of d between xmin and
// xmax on p. The region is bounded below by y = 0 and above by the
// density curve sampled at opts.NPts evenly spaced points.
//
// d is typically the distribution returned by Norm, but any
// stats.Dist works. If xmin > xmax,
// the points are sampled in descending order, which shades the same
// region.
func Area(p *plot.Plot, d stats.Dist, xmin, xmax float64, opts *AreaOptions) error {
	xys, err := sample(d, xmin, xmax, opts.npts())
	if err != nil {
		return err
	}

	// Walk out along the curve and back along y = 0.
	ring := make(plotter.XYs, 0, 2*len(xys))
	ring = append(ring, xys...)
	for i := len(xys) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: xys[i].X, Y: 0})
	}

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return fmt.Errorf("distplot: shading [%v, %v]: %w", xmin, xmax, err)
	}
	poly.Color = defaultFill
	poly.LineStyle.Width = 0
	if opts != nil && opts.Style != nil {
		opts.Style(poly)
	}
	p.Add(poly)
	return nil
}
