// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/spyglass/hic"
)

// grid adapts a matrix to plotter.GridXYZ, applying an optional value
// transform. Grid columns map to matrix columns and grid rows to
// matrix rows, both labelled by bin index.
type grid struct {
	m mat.Matrix
	f func(float64) float64
}

func (g grid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g grid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if g.f != nil {
		v = g.f(v)
	}
	return v
}

func (g grid) X(c int) float64 { return float64(c) }

func (g grid) Y(r int) float64 { return float64(r) }

// subGrid is a grid over a rectangular region of a matrix, keeping
// the original bin indices as the axis coordinates.
type subGrid struct {
	m      mat.Matrix
	r1, r2 hic.Region
	f      func(float64) float64
}

func (g subGrid) Dims() (c, r int) { return g.r2.Len(), g.r1.Len() }

func (g subGrid) Z(c, r int) float64 {
	v := g.m.At(g.r1.Start+r, g.r2.Start+c)
	if g.f != nil {
		v = g.f(v)
	}
	return v
}

func (g subGrid) X(c int) float64 { return float64(g.r2.Start + c) }

func (g subGrid) Y(r int) float64 { return float64(g.r1.Start + r) }

// gamma returns the contrast transform used for single frame
// heatmaps, the contact count raised to the given exponent.
func gamma(e float64) func(float64) float64 {
	return func(v float64) float64 {
		if v <= 0 {
			return 0
		}
		return math.Pow(v, e)
	}
}

// logShade compresses contact counts for whole matrix views. Empty
// cells map to zero.
func logShade(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log1p(v)
}

// clamp limits values to [lo, hi].
func clamp(lo, hi float64) func(float64) float64 {
	return func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
}
