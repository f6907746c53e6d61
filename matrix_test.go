package qrgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertFinder checks the 7x7 finder geometry anchored at (rowStart,
// colStart): dark outer ring, light inner ring, dark 3x3 center.
func assertFinder(t *testing.T, dark func(row, col int) bool, rowStart, colStart int) {
	t.Helper()
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			want := finderPattern[r][c] == 1
			assert.Equal(t, want, dark(rowStart+r, colStart+c),
				"finder cell (%d,%d) at anchor (%d,%d)", r, c, rowStart, colStart)
		}
	}
}

func TestEmbedBasicPatternsVersion1(t *testing.T) {
	g := newGrid(21)
	embedBasicPatterns(&versions[0], g)

	darkAt := func(row, col int) bool { return g.get(row, col) == moduleDark }
	assertFinder(t, darkAt, 0, 0)
	assertFinder(t, darkAt, 0, 14)
	assertFinder(t, darkAt, 14, 0)

	// Separators are light.
	for i := 0; i < 8; i++ {
		assert.Equal(t, moduleLight, g.get(7, i), "separator row")
		assert.Equal(t, moduleLight, g.get(i, 7), "separator col")
	}

	// Timing patterns alternate starting dark at even indices.
	for i := 8; i < 13; i++ {
		want := moduleLight
		if i%2 == 0 {
			want = moduleDark
		}
		assert.Equal(t, want, g.get(6, i), "horizontal timing %d", i)
		assert.Equal(t, want, g.get(i, 6), "vertical timing %d", i)
	}

	// Dark module.
	assert.Equal(t, moduleDark, g.get(13, 8))

	// Version 1 has no alignment pattern: the center area stays unset.
	assert.Equal(t, moduleUnset, g.get(10, 10))
}

func TestEmbedAlignmentPatterns(t *testing.T) {
	// Version 2: a single pattern centered at (18, 18); the candidates at
	// (6,6), (6,18) and (18,6) fall inside finder areas and are skipped.
	g := newGrid(25)
	embedBasicPatterns(&versions[1], g)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := moduleLight
			if alignmentPattern[r][c] == 1 {
				want = moduleDark
			}
			assert.Equal(t, want, g.get(16+r, 16+c), "alignment cell (%d,%d)", r, c)
		}
	}

	// Version 7: six patterns survive, including two straddling the
	// timing strips at (6,22) and (22,6).
	g = newGrid(45)
	embedBasicPatterns(&versions[6], g)
	for _, center := range [][2]int{{6, 22}, {22, 6}, {22, 22}, {22, 38}, {38, 22}, {38, 38}} {
		assert.Equal(t, moduleDark, g.get(center[0], center[1]), "alignment center %v", center)
		assert.Equal(t, moduleLight, g.get(center[0]-1, center[1]), "alignment ring %v", center)
		assert.Equal(t, moduleDark, g.get(center[0]-2, center[1]-2), "alignment corner %v", center)
	}
}

func TestReserveFormatInfo(t *testing.T) {
	g := newGrid(21)
	embedBasicPatterns(&versions[0], g)
	reserveFormatInfo(g)

	for _, coord := range formatInfoCoordinates {
		assert.Equal(t, moduleLight, g.get(coord[0], coord[1]), "reserved %v", coord)
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, moduleLight, g.get(8, 20-i), "mirror strip right %d", i)
	}
	for i := 0; i < 7; i++ {
		assert.Equal(t, moduleLight, g.get(14+i, 8), "mirror strip bottom %d", i)
	}
	// The dark module is not part of the reservation.
	assert.Equal(t, moduleDark, g.get(13, 8))
}

func TestFinalizePanicsOnUnset(t *testing.T) {
	g := newGrid(21)
	embedBasicPatterns(&versions[0], g)
	assert.PanicsWithValue(t, "qrgen: unset module after placement", func() { g.finalize() })
}

func TestMatrixBitmapIsACopy(t *testing.T) {
	m, err := EncodeString("copy", LevelM)
	require.NoError(t, err)

	bm := m.Bitmap()
	require.Len(t, bm, m.Size())
	bm[0][0] = !bm[0][0]
	assert.NotEqual(t, bm[0][0], m.Dark(0, 0))
}

func TestMatrixString(t *testing.T) {
	m, err := EncodeString("str", LevelM)
	require.NoError(t, err)

	s := m.String()
	lines := 0
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, m.Size(), lines)
}
