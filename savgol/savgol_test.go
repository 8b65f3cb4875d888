// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package savgol_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kortschak/spyglass/savgol"
)

func TestCoefficientsInvalid(t *testing.T) {
	_, err := savgol.Coefficients(4, 2)
	require.ErrorIs(t, err, savgol.ErrWindow)
	_, err = savgol.Coefficients(-5, 2)
	require.ErrorIs(t, err, savgol.ErrWindow)
	_, err = savgol.Coefficients(5, 5)
	require.ErrorIs(t, err, savgol.ErrOrder)
	_, err = savgol.Coefficients(5, -1)
	require.ErrorIs(t, err, savgol.ErrOrder)
}

func TestCoefficientsPreserveConstants(t *testing.T) {
	for _, test := range []struct{ window, order int }{
		{5, 2}, {7, 3}, {17, 5},
	} {
		c, err := savgol.Coefficients(test.window, test.order)
		require.NoError(t, err)
		require.Len(t, c, test.window)
		var sum float64
		for _, v := range c {
			sum += v
		}
		require.InDelta(t, 1, sum, 1e-10, "window %d order %d", test.window, test.order)
	}
}

func TestFilterReproducesPolynomials(t *testing.T) {
	// A Savitzky-Golay filter leaves polynomials up to its order
	// unchanged, including at the edges.
	poly := func(x float64) float64 { return 1 + 2*x - 0.5*x*x }
	y := make([]float64, 30)
	for i := range y {
		y[i] = poly(float64(i))
	}
	got, err := savgol.Filter(y, 7, 2)
	require.NoError(t, err)
	for i := range y {
		require.InDelta(t, y[i], got[i], 1e-8, "at %d", i)
	}
}

func TestFilterSmooths(t *testing.T) {
	// Alternating noise around a constant must contract toward the
	// constant.
	y := make([]float64, 40)
	for i := range y {
		y[i] = 1
		if i%2 == 0 {
			y[i] = 3
		}
	}
	got, err := savgol.Filter(y, 9, 2)
	require.NoError(t, err)
	var dev float64
	for i := 10; i < 30; i++ {
		dev += math.Abs(got[i] - 2)
	}
	require.Less(t, dev/20, 1.0)
}

func TestFilterShortSeries(t *testing.T) {
	_, err := savgol.Filter(make([]float64, 5), 7, 2)
	require.Error(t, err)
}
