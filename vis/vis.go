// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vis renders diagnostic plots of Hi-C contact matrices with
// detected loop and border patterns overlaid.
package vis

import (
	"image/color"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/kortschak/spyglass/hic"
)

var (
	borderColor = color.RGBA{G: 0x80, A: 0xff}
	loopColor   = color.RGBA{B: 0xff, A: 0xff}
)

// borderStyle is the glyph for border patterns, a small filled
// square.
func borderStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  borderColor,
		Radius: vg.Points(1),
		Shape:  draw.BoxGlyph{},
	}
}

// loopStyle is the glyph for loop patterns, an open ring.
func loopStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  loopColor,
		Radius: vg.Points(3),
		Shape:  draw.RingGlyph{},
	}
}

// overlayXYs returns the plotting coordinates of the patterns of the
// given kind detected in the given frame. Records carrying the NA
// sentinel are skipped.
func overlayXYs(pats []hic.Pattern, kind string, frame int) plotter.XYs {
	var xys plotter.XYs
	for _, p := range pats {
		if p.Kind != kind || p.Frame != frame || p.IsNA() {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(p.Bin1), Y: float64(p.Bin2)})
	}
	return xys
}

// regionXYs returns the plotting coordinates of the patterns falling
// strictly inside the row and column regions. NA records are skipped.
func regionXYs(pats []hic.Pattern, r1, r2 hic.Region) plotter.XYs {
	var xys plotter.XYs
	for _, p := range pats {
		if p.IsNA() || !r1.Contains(p.Bin1) || !r2.Contains(p.Bin2) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(p.Bin1), Y: float64(p.Bin2)})
	}
	return xys
}

// normalizeRegions resolves the optional row and column regions
// against the matrix shape. A nil row region selects the whole
// matrix; a nil column region mirrors the row region so that a single
// region shows a block on the diagonal.
func normalizeRegions(m mat.Matrix, region, region2 *hic.Region) (r1, r2 hic.Region) {
	r, c := m.Dims()
	switch {
	case region == nil:
		r1 = hic.Region{Start: 0, End: r}
		r2 = hic.Region{Start: 0, End: c}
	case region2 == nil:
		r1 = region.Clip(r)
		r2 = region.Clip(c)
	default:
		r1 = region.Clip(r)
		r2 = region2.Clip(c)
	}
	return r1, r2
}

// gridMinMax returns the value range of the grid.
func gridMinMax(g plotter.GridXYZ) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	c, r := g.Dims()
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			v := g.Z(i, j)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min > max {
		min, max = 0, 1
	}
	return min, max
}

// savePDF writes the plot to path with a horizontal colour bar drawn
// beneath it.
func savePDF(path string, p *plot.Plot, grad *Gradient, w, h vg.Length) error {
	bar, err := plot.New()
	if err != nil {
		return err
	}
	bar.Add(&plotter.ColorBar{ColorMap: grad})
	bar.HideY()
	bar.X.Padding = 0

	c := vgpdf.New(w, h)
	dc := draw.New(c)
	p.Draw(draw.Crop(dc, 0, 0, h/5, 0))
	bar.Draw(draw.Crop(dc, 0, 0, 0, -(h - h/6)))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
