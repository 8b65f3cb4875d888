// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spyglass renders the full set of diagnostic plots for a Hi-C
// contact matrix and a table of detected loop and border patterns:
// a whole matrix overview, one annotated heatmap per pattern frame,
// the contact decay curve and, when provided, the pattern pileup.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/spyglass/hic"
	"github.com/kortschak/spyglass/vis"
)

var (
	matPath  = flag.String("mat", "", "input bin-pair contact matrix file (required)")
	patPath  = flag.String("patterns", "", "input detected pattern table")
	pilePath = flag.String("pileup", "", "input pileup matrix file")
	outDir   = flag.String("out", ".", "output directory for rendered plots")
)

func main() {
	flag.Parse()
	if *matPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	m, err := hic.ReadMatrixFile(*matPath)
	if err != nil {
		log.Fatalf("failed to read matrix %q: %v", *matPath, err)
	}

	var pats []hic.Pattern
	if *patPath != "" {
		pats, err = hic.ReadPatternsFile(*patPath)
		if err != nil {
			log.Fatalf("failed to read patterns %q: %v", *patPath, err)
		}
	}

	err = os.MkdirAll(*outDir, 0755)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	log.Printf("rendering whole matrix overview for %q", *matPath)
	err = vis.WholeMatrixPlot(m, pats, filepath.Join(*outDir, "overview.pdf"), nil, nil)
	if err != nil {
		log.Fatalf("failed to render overview: %v", err)
	}

	for _, frame := range frames(pats) {
		log.Printf("rendering pattern plot for frame %d", frame)
		err = vis.PatternPlot(m, pats, *outDir, frame)
		if err != nil {
			log.Fatalf("failed to render pattern plot for frame %d: %v", frame, err)
		}
	}

	label := strip(filepath.Base(*matPath))
	log.Printf("rendering distance decay for %q", *matPath)
	err = vis.DistancePlot([]mat.Matrix{m}, []string{label}, *outDir)
	if err != nil {
		log.Fatalf("failed to render decay plot: %v", err)
	}

	if *pilePath != "" {
		pile, err := hic.ReadMatrixFile(*pilePath)
		if err != nil {
			log.Fatalf("failed to read pileup %q: %v", *pilePath, err)
		}
		log.Printf("rendering pileup for %q", *pilePath)
		err = vis.PileupPlot(pile, strip(filepath.Base(*pilePath)), *outDir)
		if err != nil {
			log.Fatalf("failed to render pileup plot: %v", err)
		}
	}
}

// frames returns the sorted set of frame indices with at least one
// located pattern.
func frames(pats []hic.Pattern) []int {
	seen := make(map[int]bool)
	for _, p := range pats {
		if p.IsNA() {
			continue
		}
		seen[p.Frame] = true
	}
	f := make([]int, 0, len(seen))
	for i := range seen {
		f = append(f, i)
	}
	sort.Ints(f)
	return f
}

func strip(name string) string {
	for {
		ext := filepath.Ext(name)
		if ext == "" {
			return name
		}
		name = name[:len(name)-len(ext)]
	}
}
