// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stack renders the pileup of detected patterns as a heatmap on a
// diverging colour scale.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/kortschak/spyglass/hic"
	"github.com/kortschak/spyglass/vis"
)

var (
	in     = flag.String("in", "", "input pileup matrix file (required)")
	name   = flag.String("name", "", "pileup name used in the title and file name")
	outDir = flag.String("out", ".", "output directory for the rendered plot")
)

func main() {
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	pile, err := hic.ReadMatrixFile(*in)
	if err != nil {
		log.Fatalf("failed to read pileup %q: %v", *in, err)
	}
	err = os.MkdirAll(*outDir, 0755)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	err = vis.PileupPlot(pile, *name, *outDir)
	if err != nil {
		log.Fatalf("failed to render pileup plot: %v", err)
	}
}
