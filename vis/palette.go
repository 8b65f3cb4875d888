// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// Gradient is a colour map interpolating linearly between a sequence
// of colour stops over a value range. It satisfies palette.ColorMap.
type Gradient struct {
	stops    []color.Color
	min, max float64
	alpha    float64
}

// NewGradient returns a gradient over the given stops with a zero
// value range. SetMin and SetMax fix the range before use.
func NewGradient(stops ...color.Color) *Gradient {
	if len(stops) < 2 {
		panic("vis: gradient needs at least two stops")
	}
	return &Gradient{stops: stops, alpha: 1}
}

// At returns the colour for the value v. Values outside the range are
// clamped to the nearest end of the gradient.
func (g *Gradient) At(v float64) (color.Color, error) {
	t := 0.0
	if g.max > g.min {
		t = (v - g.min) / (g.max - g.min)
	}
	if t <= 0 {
		return g.stops[0], nil
	}
	if t >= 1 {
		return g.stops[len(g.stops)-1], nil
	}
	s := t * float64(len(g.stops)-1)
	i := int(s)
	f := s - float64(i)
	return lerp(g.stops[i], g.stops[i+1], f), nil
}

// Min returns the lower bound of the value range.
func (g *Gradient) Min() float64 { return g.min }

// SetMin sets the lower bound of the value range.
func (g *Gradient) SetMin(v float64) { g.min = v }

// Max returns the upper bound of the value range.
func (g *Gradient) Max() float64 { return g.max }

// SetMax sets the upper bound of the value range.
func (g *Gradient) SetMax(v float64) { g.max = v }

// Alpha returns the opacity of the gradient.
func (g *Gradient) Alpha() float64 { return g.alpha }

// SetAlpha sets the opacity of the gradient. Zero is transparent and
// one is completely opaque. SetAlpha panics if a is outside [0, 1].
func (g *Gradient) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic("vis: alpha out of range")
	}
	g.alpha = a
}

// Palette returns a palette of n colours sampled from the gradient.
// A single colour palette holds the gradient midpoint.
func (g *Gradient) Palette(n int) palette.Palette {
	if n < 1 {
		panic("vis: palette needs at least one colour")
	}
	saved := *g
	if g.max <= g.min {
		g.min, g.max = 0, 1
	}
	p := make(gradientPalette, n)
	if n == 1 {
		p[0], _ = g.At((g.min + g.max) / 2)
	} else {
		for i := range p {
			v := g.min + (g.max-g.min)*float64(i)/float64(n-1)
			p[i], _ = g.At(v)
		}
	}
	*g = saved
	return p
}

type gradientPalette []color.Color

func (p gradientPalette) Colors() []color.Color { return p }

func lerp(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8((float64(x)*(1-t) + float64(y)*t) / 0x101)
	}
	return color.RGBA{
		R: mix(ar, br),
		G: mix(ag, bg),
		B: mix(ab, bb),
		A: mix(aa, ba),
	}
}

// HotReversed is the palette used for single frame contact heatmaps,
// running white through yellow and red to black.
func HotReversed() *Gradient {
	return NewGradient(
		color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		color.RGBA{R: 0xff, G: 0xff, B: 0x80, A: 0xff},
		color.RGBA{R: 0xff, G: 0x80, A: 0xff},
		color.RGBA{R: 0x80, A: 0xff},
		color.RGBA{A: 0xff},
	)
}

// BlueRed is the diverging palette used for pileup heatmaps, running
// deep blue through white to deep red.
func BlueRed() *Gradient {
	return NewGradient(
		color.RGBA{B: 0x80, A: 0xff},
		color.RGBA{B: 0xff, A: 0xff},
		color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		color.RGBA{R: 0xff, A: 0xff},
		color.RGBA{R: 0x80, A: 0xff},
	)
}

// Reds is the sequential palette used for whole matrix views, running
// near-white to deep red.
func Reds() *Gradient {
	return NewGradient(
		color.RGBA{R: 0xff, G: 0xf5, B: 0xf0, A: 0xff},
		color.RGBA{R: 0xfb, G: 0x6a, B: 0x4a, A: 0xff},
		color.RGBA{R: 0x67, B: 0x0d, A: 0xff},
	)
}
