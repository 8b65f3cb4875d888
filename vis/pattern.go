// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"fmt"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kortschak/spyglass/hic"
)

// patternGamma is the contrast exponent applied to contact counts
// before rendering single frame heatmaps.
const patternGamma = 0.15

// PatternPlot renders the matrix frame as a heatmap with the border
// and loop patterns detected in it overlaid, and writes the result to
// <frame+1>.2.pdf in dir. Patterns belonging to other frames and
// records carrying the NA position sentinel are not drawn. An empty
// dir writes to the current directory.
func PatternPlot(m mat.Matrix, pats []hic.Pattern, dir string, frame int) error {
	if dir == "" {
		dir = "."
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = strconv.Itoa(frame)
	p.Title.Font.Size = vg.Points(8)

	g := grid{m: m, f: gamma(patternGamma)}
	grad := HotReversed()
	min, max := gridMinMax(g)
	grad.SetMin(min)
	grad.SetMax(max)
	p.Add(plotter.NewHeatMap(g, grad.Palette(256)))

	if borders := overlayXYs(pats, "borders", frame); len(borders) != 0 {
		sc, err := plotter.NewScatter(borders)
		if err != nil {
			return err
		}
		sc.GlyphStyle = borderStyle()
		p.Add(sc)
	}
	if loops := overlayXYs(pats, "loops", frame); len(loops) != 0 {
		sc, err := plotter.NewScatter(loops)
		if err != nil {
			return err
		}
		sc.GlyphStyle = loopStyle()
		p.Add(sc)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d.2.pdf", frame+1))
	return savePDF(path, p, grad, 6*vg.Inch, 6*vg.Inch)
}
