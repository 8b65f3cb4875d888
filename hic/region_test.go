// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kortschak/spyglass/hic"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    hic.Region
		wantErr bool
	}{
		{in: "10:20", want: hic.Region{Start: 10, End: 20}},
		{in: "0:0", want: hic.Region{}},
		{in: "10", wantErr: true},
		{in: "a:20", wantErr: true},
		{in: "10:b", wantErr: true},
		{in: "20:10", wantErr: true},
		{in: "-1:10", wantErr: true},
	}
	for _, test := range tests {
		got, err := hic.ParseRegion(test.in)
		if test.wantErr {
			require.Error(t, err, "parsing %q", test.in)
			continue
		}
		require.NoError(t, err, "parsing %q", test.in)
		require.Equal(t, test.want, got)
	}
}

func TestRegionClip(t *testing.T) {
	require.Equal(t, hic.Region{Start: 10, End: 15}, hic.Region{Start: 10, End: 20}.Clip(15))
	require.Equal(t, hic.Region{Start: 0, End: 5}, hic.Region{Start: -3, End: 5}.Clip(10))
	require.Equal(t, hic.Region{Start: 8, End: 8}, hic.Region{Start: 8, End: 20}.Clip(5))
}

func TestRegionContains(t *testing.T) {
	r := hic.Region{Start: 10, End: 20}
	require.False(t, r.Contains(10), "bounds are exclusive")
	require.False(t, r.Contains(20), "bounds are exclusive")
	require.True(t, r.Contains(11))
	require.True(t, r.Contains(19))
	require.False(t, r.Contains(9))
}
