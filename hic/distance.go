// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hic

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// DistanceLaw returns the mean contact count for each genomic
// distance of the matrix, that is the mean over each diagonal
// including empty cells. The returned slice has min(r, c) elements,
// indexed by bin distance.
func DistanceLaw(m mat.Matrix) []float64 {
	r, c := m.Dims()
	n := r
	if c < n {
		n = c
	}
	law := make([]float64, n)
	diag := make([]float64, 0, n)
	for d := 0; d < n; d++ {
		diag = diag[:0]
		for i := 0; i+d < c && i < r; i++ {
			diag = append(diag, m.At(i, i+d))
		}
		mean, err := stats.Mean(diag)
		if err != nil {
			// Only possible for an empty diagonal, which
			// cannot happen for d < min(r, c).
			mean = 0
		}
		law[d] = mean
	}
	return law
}
