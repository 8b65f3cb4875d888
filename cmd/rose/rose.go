// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rose renders a rings plot of detected pattern density binned over
// the genome backing a contact matrix.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/graphics/rings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kortschak/spyglass/hic"
)

var (
	patPath   = flag.String("patterns", "", "input detected pattern table (required)")
	sizesPath = flag.String("genome", "", "input chromosome size table (required)")
	binSize   = flag.Int("binsize", 10e3, "genomic length of one matrix bin")
	binLength = flag.Int("length", 1e6, "density bin length")
	format    = flag.String("format", "pdf", "output format: eps, jpg, jpeg, pdf, png, svg, and tiff")
)

func init() {
	flag.Parse()
	if *patPath == "" || *sizesPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	for _, s := range []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tiff"} {
		if *format == s {
			return
		}
	}
	flag.Usage()
	os.Exit(1)
}

func main() {
	g, err := hic.ReadGenomeFile(*sizesPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pats, err := hic.ReadPatternsFile(*patPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p, err := plot.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hs, err := tracks(scorePatterns(pats, g, *binSize, *binLength), 15*vg.Centimeter)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p.Add(hs...)
	p.HideAxes()

	font, err := vg.MakeFont("Helvetica", 14)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	p.Title.Text = filepath.Base(*patPath)
	p.Title.TextStyle = draw.TextStyle{Color: color.Gray{0}, Font: font}

	base := strings.TrimSuffix(filepath.Base(*patPath), filepath.Ext(*patPath))
	err = p.Save(19*vg.Centimeter, 25*vg.Centimeter, base+"."+*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// chromosome makes a hic.Chromosome addressable as a feat.Feature.
type chromosome struct {
	hic.Chromosome
}

func (c chromosome) Start() int             { return 0 }
func (c chromosome) End() int               { return c.Chromosome.Length }
func (c chromosome) Len() int               { return c.Chromosome.Length }
func (c chromosome) Name() string           { return c.Chromosome.Name }
func (c chromosome) Description() string    { return "chromosome" }
func (c chromosome) Location() feat.Feature { return nil }

// scorePatterns bins the located pattern centres over the genome,
// mapping matrix bin coordinates to genomic positions.
func scorePatterns(pats []hic.Pattern, g hic.Genome, binSize, length int) []rings.Scorer {
	var n int
	gs := make([][]*density, len(g))
	for i, c := range g {
		bins := make([]*density, (c.Length-1)/length+1)
		n += len(bins)
		for j := range bins {
			bins[j] = &density{
				start: j * length,
				end:   min(c.Length, (j+1)*length),
				chr:   chromosome{c},
			}
		}
		gs[i] = bins
	}

	// Chromosome offsets of the concatenated binned genome.
	offsets := make([]int, len(g))
	var off int
	for i, c := range g {
		offsets[i] = off
		off += c.Length
	}

	for _, p := range pats {
		if p.IsNA() {
			continue
		}
		pos := p.Bin1 * binSize
		for i := len(offsets) - 1; i >= 0; i-- {
			if pos >= offsets[i] {
				local := pos - offsets[i]
				if local < g[i].Length {
					gs[i][local/length].events++
				}
				break
			}
		}
	}

	s := make([]rings.Scorer, 0, n)
	for _, c := range gs {
		for _, b := range c {
			s = append(s, b)
		}
	}
	return s
}

// density is a genomic bin scored by the number of pattern centres
// falling in it.
type density struct {
	start, end int
	chr        feat.Feature
	events     int
}

func (d *density) Start() int             { return d.start }
func (d *density) End() int               { return d.end }
func (d *density) Len() int               { return d.end - d.start }
func (d *density) Name() string           { return "" }
func (d *density) Description() string    { return "pattern density bin" }
func (d *density) Location() feat.Feature { return d.chr }
func (d *density) Scores() []float64      { return []float64{float64(d.events)} }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func tracks(scores []rings.Scorer, diameter vg.Length) ([]plot.Plotter, error) {
	var p []plot.Plotter

	radius := diameter / 2

	// Relative sizes.
	const (
		gap = 0.005

		label = 117. / 110.

		countsInner = 97. / 110.
		countsOuter = 70. / 110.

		karyotypeInner = 100. / 110.
		karyotypeOuter = 1.

		large = 6. / 110.
		small = 2. / 110.
	)

	sty := plotter.DefaultLineStyle
	sty.Width /= 2

	chrs := make(map[feat.Feature]bool)
	var chr []feat.Feature
	for _, s := range scores {
		c := s.(*density).chr
		if !chrs[c] {
			chrs[c] = true
			chr = append(chr, c)
		}
	}
	hs, err := rings.NewGappedBlocks(
		chr,
		rings.Arc{Theta: rings.Complete / 4 * rings.CounterClockwise, Phi: rings.Complete * rings.Clockwise},
		radius*karyotypeInner, radius*karyotypeOuter, gap,
	)
	if err != nil {
		return nil, err
	}
	hs.LineStyle = sty
	p = append(p, hs)

	font, err := vg.MakeFont("Helvetica", radius*large)
	if err != nil {
		return nil, err
	}
	lb, err := rings.NewLabels(hs, radius*label, rings.NameLabels(hs.Set)...)
	if err != nil {
		return nil, err
	}
	lb.TextStyle = draw.TextStyle{Color: color.Gray16{0}, Font: font}
	p = append(p, lb)

	smallFont, err := vg.MakeFont("Helvetica", radius*small)
	if err != nil {
		return nil, err
	}

	ct, err := rings.NewScores(scores, hs, radius*countsInner, radius*countsOuter,
		&rings.Trace{
			LineStyles: func() []draw.LineStyle {
				ls := []draw.LineStyle{sty}
				ls[0].Color = color.Gray16{0}
				return ls
			}(),
			Join: true,
			Axis: &rings.Axis{
				Angle:     rings.Complete / 4,
				Grid:      plotter.DefaultGridLineStyle,
				LineStyle: sty,
				Tick: rings.TickConfig{
					Marker:    plot.DefaultTicks{},
					LineStyle: sty,
					Length:    2,
					Label:     draw.TextStyle{Color: color.Gray16{0}, Font: smallFont},
				},
			},
		},
	)
	if err != nil {
		return nil, err
	}
	p = append(p, ct)

	return p, nil
}
