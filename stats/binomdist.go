// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

func (d BinomialDist) impl() distuv.Binomial {
	return distuv.Binomial{N: float64(d.N), P: d.P}
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return d.impl().Prob(float64(ki))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}
	return d.impl().CDF(k)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
