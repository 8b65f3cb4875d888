// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package savgol provides Savitzky-Golay least squares smoothing of
// uniformly sampled series.
package savgol

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrWindow = errors.New("savgol: window must be odd and positive")
	ErrOrder  = errors.New("savgol: order must be non-negative and less than window")
)

// Coefficients returns the convolution coefficients of a
// Savitzky-Golay filter with the given window length and polynomial
// order. The window must be odd and greater than order.
func Coefficients(window, order int) ([]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, ErrWindow
	}
	if order < 0 || order >= window {
		return nil, ErrOrder
	}
	half := window / 2

	// Solve A x = e for the pseudoinverse row giving the value of
	// the fitted polynomial at the window centre. A is the
	// Vandermonde matrix of the window offsets.
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= x
		}
	}
	var pinv mat.Dense
	err := pinv.Solve(a, eye(window))
	if err != nil {
		return nil, fmt.Errorf("savgol: %v", err)
	}
	c := make([]float64, window)
	// The first row of the pseudoinverse evaluates the constant
	// term, the fit value at offset zero.
	for i := range c {
		c[i] = pinv.At(0, i)
	}
	return c, nil
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}

// Filter smooths y with a Savitzky-Golay filter. Values within half a
// window of either end are taken from polynomial fits over the first
// and last full windows. The input must be at least one window long.
func Filter(y []float64, window, order int) ([]float64, error) {
	c, err := Coefficients(window, order)
	if err != nil {
		return nil, err
	}
	if len(y) < window {
		return nil, fmt.Errorf("savgol: series length %d shorter than window %d", len(y), window)
	}
	half := window / 2
	out := make([]float64, len(y))
	for i := half; i < len(y)-half; i++ {
		var v float64
		for j, cj := range c {
			v += cj * y[i-half+j]
		}
		out[i] = v
	}

	head, err := fitWindow(y[:window], order)
	if err != nil {
		return nil, err
	}
	for i := 0; i < half; i++ {
		out[i] = polyval(head, float64(i))
	}
	tail, err := fitWindow(y[len(y)-window:], order)
	if err != nil {
		return nil, err
	}
	for i := len(y) - half; i < len(y); i++ {
		out[i] = polyval(tail, float64(i-(len(y)-window)))
	}
	return out, nil
}

// fitWindow returns the least squares polynomial coefficients for the
// given window of samples at offsets 0..len(y)-1.
func fitWindow(y []float64, order int) ([]float64, error) {
	a := mat.NewDense(len(y), order+1, nil)
	for i := range y {
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= float64(i)
		}
	}
	b := mat.NewDense(len(y), 1, y)
	var x mat.Dense
	err := x.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("savgol: %v", err)
	}
	c := make([]float64, order+1)
	for j := range c {
		c[j] = x.At(j, 0)
	}
	return c, nil
}

func polyval(c []float64, x float64) float64 {
	var v float64
	for j := len(c) - 1; j >= 0; j-- {
		v = v*x + c[j]
	}
	return v
}
