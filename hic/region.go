// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hic

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a half-open range of matrix bins.
type Region struct {
	Start, End int
}

// ParseRegion parses a bin range in "start:end" form.
func ParseRegion(s string) (Region, error) {
	i := strings.Index(s, ":")
	if i < 0 {
		return Region{}, fmt.Errorf("hic: invalid region %q: missing ':'", s)
	}
	start, err := strconv.Atoi(s[:i])
	if err != nil {
		return Region{}, fmt.Errorf("hic: invalid region start %q: %v", s[:i], err)
	}
	end, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Region{}, fmt.Errorf("hic: invalid region end %q: %v", s[i+1:], err)
	}
	if start < 0 || end < start {
		return Region{}, fmt.Errorf("hic: invalid region %q", s)
	}
	return Region{Start: start, End: end}, nil
}

// Len returns the number of bins spanned by the region.
func (r Region) Len() int { return r.End - r.Start }

// Clip returns the region clipped to [0, n).
func (r Region) Clip(n int) Region {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > n {
		r.End = n
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Contains returns whether the bin is strictly inside the region,
// excluding both end points.
func (r Region) Contains(bin int) bool {
	return bin > r.Start && bin < r.End
}
