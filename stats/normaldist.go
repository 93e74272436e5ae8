// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
//
// NormalDist does not validate Sigma. If Sigma <= 0, the density is
// NaN or Inf.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

var _ Dist = NormalDist{}

func (n NormalDist) impl() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.impl().Prob(x)
}

func (n NormalDist) PDFEach(xs []float64) []float64 {
	return each(n.impl().Prob, xs)
}

func (n NormalDist) CDF(x float64) float64 {
	return n.impl().CDF(x)
}

func (n NormalDist) CDFEach(xs []float64) []float64 {
	return each(n.impl().CDF, xs)
}

// InvCDF returns the x such that CDF(x) = p. It panics if p is
// outside [0, 1].
func (n NormalDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		panic("stats: probability out of range")
	}
	return n.impl().Quantile(p)
}

func (n NormalDist) InvCDFEach(ps []float64) []float64 {
	return each(n.InvCDF, ps)
}

// Bounds returns Mu ± 3 Sigma, which covers 99.7% of the
// distribution's weight.
func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
