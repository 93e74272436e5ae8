// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks that f(x) ≅ want[x] for every x in want.
func testFunc(t *testing.T, name string, f func(float64) float64, want map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(want))
	for x := range want {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		if got := f(x); !aeq(want[x], got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want[x])
		}
	}
}

// testDiscreteCDF checks that dist.CDF is the running sum of
// dist.PMF, both at and between the steps of dist.
func testDiscreteCDF(t *testing.T, name string, dist interface {
	PMF(float64) float64
	CDF(float64) float64
	Bounds() (float64, float64)
	Step() float64
}) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()
	if got := dist.CDF(lo - step); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, lo-step, got)
	}
	sum := 0.0
	for x := lo; x <= hi; x += step {
		sum += dist.PMF(x)
		for _, dx := range []float64{0, step / 2} {
			if got := dist.CDF(x + dx); !aeq(sum, got) {
				t.Errorf("%s(%v) = %v, want %v", name, x+dx, got, sum)
			}
		}
	}
	if got := dist.CDF(hi + step); got != 1 {
		t.Errorf("%s(%v) = %v, want 1", name, hi+step, got)
	}
}
