// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shade renders interactive HTML heatmaps of large contact
// matrices, aggregating bins to a bounded canvas with logarithmic
// shading.
package shade

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/spyglass/hic"
)

// Default bound on the number of bins along each rendered axis.
const defaultMaxBins = 1000

// Ramp from white to dark red used for aggregated contact counts.
var ramp = []string{"#ffffff", "#fee0d2", "#fc9272", "#de2d26", "#8b0000"}

// Options configure an interactive matrix rendering.
type Options struct {
	// Title is the page title of the rendered chart.
	Title string

	// MaxBins bounds the number of bins along each axis of the
	// rendered canvas. Larger matrices are aggregated by summing
	// strides of bins. The zero value means 1000.
	MaxBins int
}

// Render writes an interactive HTML heatmap of the matrix with the
// pattern centres overlaid to w.
func Render(w io.Writer, m mat.Matrix, pats []hic.Pattern, o Options) error {
	hm, err := HeatMap(m, pats, o)
	if err != nil {
		return err
	}
	return hm.Render(w)
}

// HeatMap returns an interactive heatmap chart of the matrix with
// the pattern centres overlaid as a scatter series.
func HeatMap(m mat.Matrix, pats []hic.Pattern, o Options) (*charts.HeatMap, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("shade: empty matrix")
	}
	maxBins := o.MaxBins
	if maxBins == 0 {
		maxBins = defaultMaxBins
	}
	stride := 1
	if rows > maxBins || cols > maxBins {
		n := rows
		if cols > n {
			n = cols
		}
		stride = (n + maxBins - 1) / maxBins
	}

	agg := aggregate(m, stride)
	nr := len(agg)
	nc := 0
	if nr != 0 {
		nc = len(agg[0])
	}

	var (
		data []opts.HeatMapData
		maxV float64
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			v := agg[i][j]
			if v == 0 {
				continue
			}
			v = math.Log1p(v)
			if v > maxV {
				maxV = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, v}})
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	xLabels := make([]string, nc)
	for j := range xLabels {
		xLabels[j] = strconv.Itoa(j * stride)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "1000px", Height: "1000px"}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: fmt.Sprintf("bins=%d stride=%d", nr, stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "bin1"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "bin2"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxV),
			InRange:    &opts.VisualMapInRange{Color: ramp},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("contacts", data)

	if len(pats) != 0 {
		var points []opts.ScatterData
		for _, p := range pats {
			if p.IsNA() {
				continue
			}
			points = append(points, opts.ScatterData{Value: []interface{}{p.Bin1 / stride, p.Bin2 / stride}})
		}
		if len(points) != 0 {
			sc := charts.NewScatter()
			sc.AddSeries("patterns", points, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
			hm.Overlap(sc)
		}
	}

	return hm, nil
}

// aggregate sums the matrix over stride×stride blocks.
func aggregate(m mat.Matrix, stride int) [][]float64 {
	rows, cols := m.Dims()
	nr := (rows + stride - 1) / stride
	nc := (cols + stride - 1) / stride
	agg := make([][]float64, nr)
	for i := range agg {
		agg[i] = make([]float64, nc)
	}
	if s, ok := m.(*hic.Sparse); ok {
		s.NonZero(func(i, j int, v float64) {
			agg[i/stride][j/stride] += v
		})
		return agg
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			agg[i/stride][j/stride] += m.At(i, j)
		}
	}
	return agg
}
