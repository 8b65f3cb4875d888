// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vis

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kortschak/spyglass/hic"
	"github.com/kortschak/spyglass/savgol"
)

// Smoothing parameters for the distance law curve.
const (
	smoothWindow = 17
	smoothOrder  = 5
)

// DistancePlot writes a log-log plot of contact frequency against
// genomic distance for each matrix, overlaying the raw distance law
// with its Savitzky-Golay smoothed curve. One <label>.pdf is written
// to dir per matrix; missing labels default to the matrix index.
func DistancePlot(ms []mat.Matrix, labels []string, dir string) error {
	if dir == "" {
		dir = "."
	}
	for i, m := range ms {
		label := strconv.Itoa(i)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		err := distancePlot(m, label, dir)
		if err != nil {
			return fmt.Errorf("vis: distance plot %q: %v", label, err)
		}
	}
	return nil
}

func distancePlot(m mat.Matrix, label, dir string) error {
	law := hic.DistanceLaw(m)
	for i, v := range law {
		if math.IsNaN(v) {
			law[i] = 0
		}
	}
	smooth, err := savgol.Filter(law, smoothWindow, smoothOrder)
	if err != nil {
		return err
	}

	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = label
	p.X.Label.Text = "Genomic distance"
	p.Y.Label.Text = "Contact frequency"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}

	if xys := logXYs(law); len(xys) != 0 {
		raw, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		p.Add(raw)
	}
	if xys := logXYs(smooth); len(xys) != 0 {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = loopColor
		p.Add(line)
	}

	p.X.Min, p.X.Max = 1, 1e3
	p.Y.Min, p.Y.Max = 1e-5, 1e-1

	return p.Save(6*vg.Inch, 6*vg.Inch, filepath.Join(dir, label+".pdf"))
}

// logXYs returns the plottable points of the series, dropping values
// that cannot be shown on logarithmic axes.
func logXYs(y []float64) plotter.XYs {
	var xys plotter.XYs
	for d, v := range y {
		if d == 0 || v <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(d), Y: v})
	}
	return xys
}
