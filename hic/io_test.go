// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hic_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/stretchr/testify/require"

	"github.com/kortschak/spyglass/hic"
)

func TestReadMatrix(t *testing.T) {
	const in = `# contact matrix
bin1	bin2	count
0	0	4
0	3	1.5
2	2	2
`
	m, err := hic.ReadMatrix(strings.NewReader(in))
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 4, r, "shape must cover the largest bin index")
	require.Equal(t, 4, c)
	require.Equal(t, 4.0, m.At(0, 0))
	require.Equal(t, 1.5, m.At(0, 3))
	require.Equal(t, 2.0, m.At(2, 2))
	require.Equal(t, 0.0, m.At(1, 1))
}

func TestReadMatrixBad(t *testing.T) {
	_, err := hic.ReadMatrix(strings.NewReader("0\t0\t1\nx\t0\t1\n"))
	require.Error(t, err, "non-numeric bin after data must fail")

	_, err = hic.ReadMatrix(strings.NewReader("0\t0\n"))
	require.Error(t, err, "short line must fail")
}

func TestReadPatterns(t *testing.T) {
	const in = `pattern	frame	bin1	bin2	score
loops	0	5	8	0.72
borders	0	NA	NA	0
loops	1	3	3	0.5
`
	pats, err := hic.ReadPatterns(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []hic.Pattern{
		{Kind: "loops", Frame: 0, Bin1: 5, Bin2: 8, Score: 0.72},
		{Kind: "borders", Frame: 0, Bin1: hic.NA, Bin2: hic.NA, Score: 0},
		{Kind: "loops", Frame: 1, Bin1: 3, Bin2: 3, Score: 0.5},
	}, pats)
	require.True(t, pats[1].IsNA())
}

func TestReadPatternsMinimal(t *testing.T) {
	const in = `bin1	bin2	score
5	8	0.72
`
	pats, err := hic.ReadPatterns(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []hic.Pattern{{Bin1: 5, Bin2: 8, Score: 0.72}}, pats)
}

func TestReadPatternsMissingColumns(t *testing.T) {
	_, err := hic.ReadPatterns(strings.NewReader("bin1\tscore\n1\t0.5\n"))
	require.Error(t, err)
}

// writeBGZF compresses text into a BGZF file under dir and returns its
// path.
func writeBGZF(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	z := bgzf.NewWriter(f, 0)
	_, err = z.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, z.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadMatrixFileBGZF(t *testing.T) {
	const in = `bin1	bin2	count
0	0	4
0	3	1.5
2	2	2
`
	path := writeBGZF(t, t.TempDir(), "mat.tsv.gz", in)
	m, err := hic.ReadMatrixFile(path)
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	require.Equal(t, 1.5, m.At(0, 3))
	require.Equal(t, 2.0, m.At(2, 2))
}

func TestReadPatternsFile(t *testing.T) {
	const in = `pattern	frame	bin1	bin2	score
loops	0	5	8	0.72
borders	1	NA	NA	0
`
	want := []hic.Pattern{
		{Kind: "loops", Frame: 0, Bin1: 5, Bin2: 8, Score: 0.72},
		{Kind: "borders", Frame: 1, Bin1: hic.NA, Bin2: hic.NA, Score: 0},
	}

	dir := t.TempDir()
	plain := filepath.Join(dir, "patterns.tsv")
	require.NoError(t, os.WriteFile(plain, []byte(in), 0644))
	pats, err := hic.ReadPatternsFile(plain)
	require.NoError(t, err)
	require.Equal(t, want, pats)

	pats, err = hic.ReadPatternsFile(writeBGZF(t, dir, "patterns.tsv.gz", in))
	require.NoError(t, err)
	require.Equal(t, want, pats)
}

func TestReadMatrixFileMissing(t *testing.T) {
	_, err := hic.ReadMatrixFile(filepath.Join(t.TempDir(), "absent.tsv"))
	require.Error(t, err)
}

func TestReadGenome(t *testing.T) {
	const in = `chrI	230218
chrII	813184
`
	g, err := hic.ReadGenome(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, hic.Genome{
		{Name: "chrI", Length: 230218},
		{Name: "chrII", Length: 813184},
	}, g)
	require.Equal(t, 230218+813184, g.Length())
}
