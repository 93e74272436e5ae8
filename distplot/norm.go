// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/aclements/statplot/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// ErrNoPoints is returned when a curve or area would be drawn from
// zero sample points.
var ErrNoPoints = errors.New("distplot: no sample points")

const (
	defaultNStds = 4
	defaultNPts  = 500

	// xPad is the fraction of the display width added as margin
	// on each side of a density curve.
	xPad = 0.05
	// yHeadroom scales the peak density to the top of the y axis.
	yHeadroom = 1.1
)

// defaultColor is the color of curves and areas that are not
// restyled.
var defaultColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// NormOptions controls how Norm draws a density curve.
//
// The zero value, like a nil *NormOptions, uses the defaults.
type NormOptions struct {
	// NStds is how many standard deviations to either side of
	// the mean to draw. If this is 0, it defaults to 4.
	NStds float64

	// NPts is the number of points at which to evaluate the
	// density. If this is 0, it defaults to 500.
	NPts int

	// Style, if non-nil, is called with the curve before it is
	// added to the plot. It may change any field of the line,
	// such as its LineStyle or FillColor.
	Style func(*plotter.Line)
}

func (o *NormOptions) nstds() float64 {
	if o == nil || o.NStds == 0 {
		return defaultNStds
	}
	return o.NStds
}

func (o *NormOptions) npts() int {
	if o == nil || o.NPts == 0 {
		return defaultNPts
	}
	return o.NPts
}

// Norm draws the probability density function of the normal
// distribution N(mu, sigma) on p. If p is nil, Norm draws on a new
// plot.
//
// The curve spans opts.NStds standard deviations on either side of
// mu. Norm also sets up p's axes for displaying a density: the x axis
// is padded slightly past the curve, the y axis runs from 0 to just
// above the peak density and has neither tick marks nor an axis
// line, and the y axis is labeled "Density".
//
// Norm returns the distribution it plotted and the plot it drew on,
// so the caller can go on to shade regions with Area. Sigma is not
// validated: if sigma <= 0, the densities are not finite and Norm
// returns the plotter's error.
func Norm(p *plot.Plot, mu, sigma float64, opts *NormOptions) (stats.NormalDist, *plot.Plot, error) {
	d := stats.NormalDist{Mu: mu, Sigma: sigma}
	nstds, npts := opts.nstds(), opts.npts()
	if p == nil {
		p = plot.New()
	}

	xmin, xmax := mu-nstds*sigma, mu+nstds*sigma
	xys, err := sample(d, xmin, xmax, npts)
	if err != nil {
		return d, p, err
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return d, p, fmt.Errorf("distplot: plotting N(%v, %v): %w", mu, sigma, err)
	}
	line.LineStyle.Color = defaultColor
	if opts != nil && opts.Style != nil {
		opts.Style(line)
	}
	p.Add(line)

	// Make it look like a density plot. gonum/plot only draws
	// the bottom and left axes, so there are no top or right
	// borders to remove.
	pad := xPad * (xmax - xmin)
	p.X.Min, p.X.Max = xmin-pad, xmax+pad
	p.Y.Min, p.Y.Max = 0, yHeadroom*peak(xys)
	p.Y.Tick.Marker = plot.ConstantTicks{}
	p.Y.Tick.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0
	p.Y.Label.Text = "Density"

	return d, p, nil
}

// peak returns the largest Y value in xys, which must be non-empty.
func peak(xys plotter.XYs) float64 {
	ys := make([]float64, len(xys))
	for i, xy := range xys {
		ys[i] = xy.Y
	}
	return floats.Max(ys)
}

// sample evaluates d's density at npts evenly spaced points over
// [xmin, xmax].
func sample(d stats.Dist, xmin, xmax float64, npts int) (plotter.XYs, error) {
	if npts <= 0 {
		return nil, fmt.Errorf("%w: npts = %d", ErrNoPoints, npts)
	}
	xs := stats.Linspace(xmin, xmax, npts)
	ys := d.PDFEach(xs)
	xys := make(plotter.XYs, npts)
	for i := range xys {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	return xys, nil
}
