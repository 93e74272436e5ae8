// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// normplot draws the density of a normal distribution, optionally
// shading intervals under it, and saves the plot to an image file.
//
// The output format is chosen by the file extension: png, svg, pdf,
// eps, jpg, jpeg, tif or tiff.
//
// For example,
//
//	normplot -mu 100 -sigma 15 -shade 85:115 -o iq.svg
//
// With -binom-n, normplot draws the normal approximation of a
// binomial distribution instead of using -mu and -sigma, and each
// -shade interval of successes is widened by 0.5 on either side.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/statplot/distplot"
	"github.com/aclements/statplot/stats"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/plot/vg"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if err := run(os.Args[1:], os.Stderr, logger); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

// interval is a closed interval lo:hi.
type interval struct{ lo, hi float64 }

// intervals is a repeatable flag of lo:hi intervals.
type intervals []interval

func (iv *intervals) String() string {
	parts := make([]string, len(*iv))
	for i, x := range *iv {
		parts[i] = fmt.Sprintf("%g:%g", x.lo, x.hi)
	}
	return strings.Join(parts, ",")
}

func (iv *intervals) Set(s string) error {
	los, his, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("interval %q is not of the form lo:hi", s)
	}
	lo, err := strconv.ParseFloat(los, 64)
	if err != nil {
		return err
	}
	hi, err := strconv.ParseFloat(his, 64)
	if err != nil {
		return err
	}
	*iv = append(*iv, interval{lo, hi})
	return nil
}

// config is the parsed command line.
type config struct {
	mu, sigma     float64
	nstds         float64
	npts          int
	binomN        int
	binomP        float64
	shade         intervals
	out           string
	width, height vg.Length
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	var cfg config
	fs := flag.NewFlagSet("normplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.mu, "mu", 0, "mean of the distribution")
	fs.Float64Var(&cfg.sigma, "sigma", 1, "standard deviation of the distribution")
	fs.Float64Var(&cfg.nstds, "nstds", 4, "standard deviations to draw either side of the mean")
	fs.IntVar(&cfg.npts, "npts", 500, "number of points at which to evaluate the density")
	fs.IntVar(&cfg.binomN, "binom-n", 0, "if > 0, plot the normal approximation of Binomial(`n`, p)")
	fs.Float64Var(&cfg.binomP, "binom-p", 0.5, "success probability for -binom-n")
	fs.Var(&cfg.shade, "shade", "shade the area over `lo:hi` (repeatable)")
	fs.StringVar(&cfg.out, "o", "normplot.png", "output `file`")
	width := fs.String("width", "4in", "image width")
	height := fs.String("height", "3in", "image height")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	var err error
	if cfg.width, err = vg.ParseLength(*width); err != nil {
		return nil, fmt.Errorf("bad -width: %w", err)
	}
	if cfg.height, err = vg.ParseLength(*height); err != nil {
		return nil, fmt.Errorf("bad -height: %w", err)
	}
	if cfg.binomN > 0 {
		n := stats.BinomialDist{N: cfg.binomN, P: cfg.binomP}.NormalApprox()
		cfg.mu, cfg.sigma = n.Mu, n.Sigma

		// Continuity correction: k in [lo, hi] covers the
		// normal over [lo-0.5, hi+0.5].
		for i, iv := range cfg.shade {
			lo, hi := math.Min(iv.lo, iv.hi), math.Max(iv.lo, iv.hi)
			cfg.shade[i] = interval{lo - 0.5, hi + 0.5}
		}
	}
	return &cfg, nil
}

func run(args []string, stderr io.Writer, logger log.Logger) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	d, p, err := distplot.Norm(nil, cfg.mu, cfg.sigma, &distplot.NormOptions{
		NStds: cfg.nstds,
		NPts:  cfg.npts,
	})
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("N(%.4g, %.4g)", cfg.mu, cfg.sigma)

	for _, iv := range cfg.shade {
		if err := distplot.Area(p, d, iv.lo, iv.hi, &distplot.AreaOptions{NPts: cfg.npts}); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "shaded", "lo", iv.lo, "hi", iv.hi, "p", d.CDF(iv.hi)-d.CDF(iv.lo))
	}

	if err := p.Save(cfg.width, cfg.height, cfg.out); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	level.Info(logger).Log("msg", "wrote plot", "file", cfg.out)
	return nil
}
