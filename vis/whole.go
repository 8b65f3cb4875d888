// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kortschak/spyglass/hic"
	"github.com/kortschak/spyglass/view"
)

// WholeMatrixPlot renders a region of a genome-wide contact matrix
// with pattern centres overlaid and writes it to out, with the output
// format taken from the file extension. The row region defaults to
// the whole matrix and the column region to the row region, showing a
// block on the diagonal. Patterns strictly inside the regions are
// drawn; NA records are skipped. If out is empty the plot is written
// to a temporary file and displayed with the platform document
// viewer.
func WholeMatrixPlot(m mat.Matrix, pats []hic.Pattern, out string, region, region2 *hic.Region) error {
	r1, r2 := normalizeRegions(m, region, region2)
	if r1.Len() == 0 || r2.Len() == 0 {
		return fmt.Errorf("vis: empty plot region %d:%d %d:%d", r1.Start, r1.End, r2.Start, r2.End)
	}

	p, err := plot.New()
	if err != nil {
		return err
	}

	grad := Reds()
	g := subGrid{m: m, r1: r1, r2: r2, f: logShade}
	min, max := gridMinMax(g)
	grad.SetMin(min)
	grad.SetMax(max)
	p.Add(plotter.NewHeatMap(g, grad.Palette(256)))

	if xys := regionXYs(pats, r1, r2); len(xys) != 0 {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle = loopStyle()
		p.Add(sc)
	}

	if out == "" {
		f, err := os.CreateTemp("", "spyglass-*.pdf")
		if err != nil {
			return err
		}
		f.Close()
		out = f.Name()
		err = p.Save(8*vg.Inch, 8*vg.Inch, out)
		if err != nil {
			os.Remove(out)
			return err
		}
		err = view.Open(out)
		if err != nil {
			os.Remove(out)
		}
		return err
	}
	if dir := filepath.Dir(out); dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}
	return p.Save(8*vg.Inch, 8*vg.Inch, out)
}
