// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hic provides types for binned Hi-C contact matrices and
// detected structural patterns.
package hic

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// NA marks a pattern position that is not available, meaning no
// pattern was found for the frame the record belongs to.
const NA = -1

// Pattern is a detected structural feature in a contact matrix,
// located by a bin coordinate pair.
type Pattern struct {
	// Kind is the pattern class, conventionally
	// "loops" or "borders".
	Kind string

	// Frame is the index of the sub-matrix the pattern
	// was detected in.
	Frame int

	// Bin1 and Bin2 are the row and column bin positions
	// of the pattern centre. Both are NA when no pattern
	// was found for the frame.
	Bin1, Bin2 int

	Score float64
}

// IsNA returns whether p carries the not-available position sentinel.
func (p Pattern) IsNA() bool { return p.Bin1 == NA || p.Bin2 == NA }

// Entry is a single non-zero contact count.
type Entry struct {
	Row, Col int
	V        float64
}

// Sparse is a read-only sparse contact matrix held as sorted
// coordinate triplets. It satisfies mat.Matrix.
type Sparse struct {
	rows, cols int
	entries    []Entry
}

// NewSparse returns a sparse r×c matrix holding the given entries.
// Entries are sorted and duplicate coordinates are summed. NewSparse
// returns an error if any entry falls outside the matrix bounds.
func NewSparse(r, c int, entries []Entry) (*Sparse, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("hic: invalid matrix shape %d×%d", r, c)
	}
	e := make([]Entry, len(entries))
	copy(e, entries)
	sort.Slice(e, func(i, j int) bool {
		if e[i].Row != e[j].Row {
			return e[i].Row < e[j].Row
		}
		return e[i].Col < e[j].Col
	})
	w := 0
	for i, v := range e {
		if v.Row < 0 || v.Row >= r || v.Col < 0 || v.Col >= c {
			return nil, fmt.Errorf("hic: entry (%d,%d) outside %d×%d matrix", v.Row, v.Col, r, c)
		}
		if i != 0 && v.Row == e[w].Row && v.Col == e[w].Col {
			e[w].V += v.V
			continue
		}
		if i != 0 {
			w++
		}
		e[w] = v
	}
	if len(e) != 0 {
		e = e[:w+1]
	}
	return &Sparse{rows: r, cols: c, entries: e}, nil
}

// Dims returns the dimensions of the matrix.
func (m *Sparse) Dims() (r, c int) { return m.rows, m.cols }

// At returns the contact count at (i, j).
func (m *Sparse) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("hic: index out of range")
	}
	k := sort.Search(len(m.entries), func(k int) bool {
		e := m.entries[k]
		return e.Row > i || (e.Row == i && e.Col >= j)
	})
	if k < len(m.entries) && m.entries[k].Row == i && m.entries[k].Col == j {
		return m.entries[k].V
	}
	return 0
}

// T returns the transpose of the matrix.
func (m *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NonZero calls fn for each stored entry in row-major order.
func (m *Sparse) NonZero(fn func(i, j int, v float64)) {
	for _, e := range m.entries {
		fn(e.Row, e.Col, e.V)
	}
}

// Dense returns a dense copy of the matrix.
func (m *Sparse) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for _, e := range m.entries {
		d.Set(e.Row, e.Col, e.V)
	}
	return d
}

// Chromosome describes a chromosome of the binned genome backing a
// genome-wide contact matrix.
type Chromosome struct {
	Name   string
	Length int
}

// Genome is an ordered set of chromosomes.
type Genome []Chromosome

// Length returns the total genome length.
func (g Genome) Length() int {
	var n int
	for _, c := range g {
		n += c.Length
	}
	return n
}
