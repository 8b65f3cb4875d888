// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// panorama visualises a genome-wide contact matrix with detected
// patterns overlaid, optionally restricted to a region. Without an
// output file the plot is displayed with the platform document
// viewer. With -html or -serve the matrix is rendered as an
// interactive aggregated heatmap instead.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/kortschak/spyglass/hic"
	"github.com/kortschak/spyglass/shade"
	"github.com/kortschak/spyglass/vis"
)

var (
	matPath = flag.String("mat", "", "input bin-pair contact matrix file (required)")
	patPath = flag.String("patterns", "", "input detected pattern table")
	out     = flag.String("out", "", "output plot file (default to interactive display)")
	region  = flag.String("region", "", "row bin range as start:end (default whole matrix)")
	region2 = flag.String("region2", "", "column bin range as start:end (default to -region)")
	html    = flag.String("html", "", "write an interactive HTML heatmap to this file")
	serve   = flag.String("serve", "", "serve the interactive heatmap on this address")
	maxBins = flag.Int("bins", 1000, "maximum number of bins per axis for interactive rendering")
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

	opts := shade.Options{Title: *matPath, MaxBins: *maxBins}
	switch {
	case *serve != "":
		http.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			err := shade.Render(w, m, pats, opts)
			if err != nil {
				log.Printf("failed to render interactive heatmap: %v", err)
			}
		})
		log.Printf("serving interactive heatmap on %s", *serve)
		log.Fatal(http.ListenAndServe(*serve, nil))

	case *html != "":
		f, err := os.Create(*html)
		if err != nil {
			log.Fatalf("failed to create %q: %v", *html, err)
		}
		err = shade.Render(f, m, pats, opts)
		if err != nil {
			log.Fatalf("failed to render interactive heatmap: %v", err)
		}
		err = f.Close()
		if err != nil {
			log.Fatalf("failed to write %q: %v", *html, err)
		}

	default:
		r1, r2, err := regions()
		if err != nil {
			log.Fatal(err)
		}
		err = vis.WholeMatrixPlot(m, pats, *out, r1, r2)
		if err != nil {
			log.Fatalf("failed to render matrix plot: %v", err)
		}
	}
}

func regions() (r1, r2 *hic.Region, err error) {
	if *region != "" {
		r, err := hic.ParseRegion(*region)
		if err != nil {
			return nil, nil, err
		}
		r1 = &r
	}
	// A column region without a row region is ignored.
	if *region2 != "" && r1 != nil {
		r, err := hic.ParseRegion(*region2)
		if err != nil {
			return nil, nil, err
		}
		r2 = &r
	}
	return r1, r2, nil
}
