// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// decay plots contact frequency against genomic distance for a set of
// contact matrices given as command line arguments.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/kortschak/spyglass/hic"
	"github.com/kortschak/spyglass/vis"
)

var (
	labels = flag.String("labels", "", "comma separated plot labels (default to file names)")
	outDir = flag.String("out", ".", "output directory for rendered plots")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var names []string
	if *labels != "" {
		names = strings.Split(*labels, ",")
	}

	var ms []mat.Matrix
	for i, path := range flag.Args() {
		m, err := hic.ReadMatrixFile(path)
		if err != nil {
			log.Fatalf("failed to read matrix %q: %v", path, err)
		}
		ms = append(ms, m)
		if len(names) <= i {
			base := filepath.Base(path)
			names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
		}
	}

	err := os.MkdirAll(*outDir, 0755)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	err = vis.DistancePlot(ms, names, *outDir)
	if err != nil {
		log.Fatalf("failed to render decay plots: %v", err)
	}
}
