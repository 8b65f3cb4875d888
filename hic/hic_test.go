// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kortschak/spyglass/hic"
)

func TestNewSparse(t *testing.T) {
	m, err := hic.NewSparse(4, 4, []hic.Entry{
		{Row: 2, Col: 1, V: 3},
		{Row: 0, Col: 0, V: 1},
		{Row: 2, Col: 1, V: 2},
		{Row: 3, Col: 3, V: 0.5},
	})
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)

	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 5.0, m.At(2, 1), "duplicate entries must be summed")
	require.Equal(t, 0.5, m.At(3, 3))
	require.Equal(t, 0.0, m.At(1, 2))

	d := m.Dense()
	require.Equal(t, 5.0, d.At(2, 1))
	require.Equal(t, 0.0, d.At(0, 3))

	var got []hic.Entry
	m.NonZero(func(i, j int, v float64) {
		got = append(got, hic.Entry{Row: i, Col: j, V: v})
	})
	require.Equal(t, []hic.Entry{
		{Row: 0, Col: 0, V: 1},
		{Row: 2, Col: 1, V: 5},
		{Row: 3, Col: 3, V: 0.5},
	}, got)
}

func TestNewSparseBounds(t *testing.T) {
	_, err := hic.NewSparse(2, 2, []hic.Entry{{Row: 2, Col: 0, V: 1}})
	require.Error(t, err)
	_, err = hic.NewSparse(0, 2, nil)
	require.Error(t, err)
}

func TestPatternIsNA(t *testing.T) {
	require.False(t, hic.Pattern{Bin1: 3, Bin2: 4}.IsNA())
	require.True(t, hic.Pattern{Bin1: hic.NA, Bin2: hic.NA}.IsNA())
	require.True(t, hic.Pattern{Bin1: 3, Bin2: hic.NA}.IsNA())
}

func TestGenomeLength(t *testing.T) {
	g := hic.Genome{{Name: "I", Length: 100}, {Name: "II", Length: 250}}
	require.Equal(t, 350, g.Length())
}
