// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Value range for pileup heatmaps. Pileups are ratios of observed to
// expected contacts, centred on one.
const (
	pileupMin = 0
	pileupMax = 2
)

// PileupPlot renders the averaged pattern window as a heatmap on a
// diverging colour scale fixed to [0, 2] and writes it to
// <name>.pdf in dir. An empty name defaults to "pileup patterns".
func PileupPlot(pileup mat.Matrix, name, dir string) error {
	if name == "" {
		name = "pileup patterns"
	}
	if dir == "" {
		dir = "."
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "pileup " + name

	grad := BlueRed()
	grad.SetMin(pileupMin)
	grad.SetMax(pileupMax)
	hm := plotter.NewHeatMap(grid{m: pileup, f: clamp(pileupMin, pileupMax)}, grad.Palette(256))
	hm.Min = pileupMin
	hm.Max = pileupMax
	p.Add(hm)

	return savePDF(filepath.Join(dir, name+".pdf"), p, grad, 6*vg.Inch, 6*vg.Inch)
}
