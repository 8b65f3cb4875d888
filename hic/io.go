// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hic

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/jgbaldwinbrown/fasttsv"
)

// ReadMatrix reads a bin-pair contact matrix from r. Each line holds
// tab separated bin1, bin2 and count fields. Comment lines starting
// with '#' and a leading header line are skipped. The matrix shape is
// the smallest square holding all entries.
func ReadMatrix(r io.Reader) (*Sparse, error) {
	var (
		entries []Entry
		max     int
		line    int
		seen    bool
	)
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		line++
		f := s.Line()
		if len(f) == 0 || strings.HasPrefix(f[0], "#") {
			continue
		}
		if len(f) < 3 {
			return nil, fmt.Errorf("hic: matrix line %d: want 3 fields, got %d", line, len(f))
		}
		b1, err := strconv.Atoi(f[0])
		if err != nil {
			if !seen {
				// Header line.
				continue
			}
			return nil, fmt.Errorf("hic: matrix line %d: %v", line, err)
		}
		seen = true
		b2, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("hic: matrix line %d: %v", line, err)
		}
		v, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return nil, fmt.Errorf("hic: matrix line %d: %v", line, err)
		}
		if b1 > max {
			max = b1
		}
		if b2 > max {
			max = b2
		}
		entries = append(entries, Entry{Row: b1, Col: b2, V: v})
	}
	return NewSparse(max+1, max+1, entries)
}

// ReadPatterns reads a pattern coordinate table from r. The input is
// tab separated with a header line naming at least bin1 and bin2
// columns; pattern, frame and score columns are used when present.
// Position fields holding "NA" produce the NA sentinel.
func ReadPatterns(r io.Reader) ([]Pattern, error) {
	var (
		pats []Pattern
		cols map[string]int
		line int
	)
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		line++
		f := s.Line()
		if len(f) == 0 || strings.HasPrefix(f[0], "#") {
			continue
		}
		if cols == nil {
			cols = make(map[string]int)
			for i, name := range f {
				cols[strings.ToLower(name)] = i
			}
			if _, ok := cols["bin1"]; !ok {
				return nil, fmt.Errorf("hic: pattern table missing bin1 column")
			}
			if _, ok := cols["bin2"]; !ok {
				return nil, fmt.Errorf("hic: pattern table missing bin2 column")
			}
			continue
		}
		var (
			p   Pattern
			err error
		)
		p.Bin1, err = patternPos(f, cols, "bin1")
		if err != nil {
			return nil, fmt.Errorf("hic: pattern line %d: %v", line, err)
		}
		p.Bin2, err = patternPos(f, cols, "bin2")
		if err != nil {
			return nil, fmt.Errorf("hic: pattern line %d: %v", line, err)
		}
		if i, ok := cols["pattern"]; ok && i < len(f) {
			p.Kind = f[i]
		}
		if i, ok := cols["frame"]; ok && i < len(f) {
			p.Frame, err = strconv.Atoi(f[i])
			if err != nil {
				return nil, fmt.Errorf("hic: pattern line %d: %v", line, err)
			}
		}
		if i, ok := cols["score"]; ok && i < len(f) {
			p.Score, err = strconv.ParseFloat(f[i], 64)
			if err != nil {
				return nil, fmt.Errorf("hic: pattern line %d: %v", line, err)
			}
		}
		pats = append(pats, p)
	}
	return pats, nil
}

func patternPos(f []string, cols map[string]int, name string) (int, error) {
	i := cols[name]
	if i >= len(f) {
		return 0, fmt.Errorf("missing %s field", name)
	}
	if f[i] == "NA" {
		return NA, nil
	}
	return strconv.Atoi(f[i])
}

// ReadGenome reads an ordered tab separated chromosome name/length
// table from r.
func ReadGenome(r io.Reader) (Genome, error) {
	var (
		g    Genome
		line int
	)
	s := fasttsv.NewScanner(r)
	for s.Scan() {
		line++
		f := s.Line()
		if len(f) == 0 || strings.HasPrefix(f[0], "#") {
			continue
		}
		if len(f) < 2 {
			return nil, fmt.Errorf("hic: genome line %d: want 2 fields, got %d", line, len(f))
		}
		l, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, fmt.Errorf("hic: genome line %d: %v", line, err)
		}
		g = append(g, Chromosome{Name: f[0], Length: l})
	}
	return g, nil
}

// ReadMatrixFile reads a bin-pair contact matrix from the named file,
// transparently decompressing BGZF input.
func ReadMatrixFile(path string) (*Sparse, error) {
	r, closer, err := openMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer closer()
	return ReadMatrix(r)
}

// ReadPatternsFile reads a pattern coordinate table from the named
// file, transparently decompressing BGZF input.
func ReadPatternsFile(path string) ([]Pattern, error) {
	r, closer, err := openMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer closer()
	return ReadPatterns(r)
}

// ReadGenomeFile reads a chromosome size table from the named file.
func ReadGenomeFile(path string) (Genome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGenome(f)
}

func openMaybeCompressed(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}
	z, err := bgzf.NewReader(f, 0)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("hic: opening %q: %v", path, err)
	}
	return z, func() error {
		err := z.Close()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}, nil
}
