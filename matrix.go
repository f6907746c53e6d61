package qrgen

import "strings"

// module is the tri-state value of one grid cell during construction.
type module uint8

const (
	moduleUnset module = iota // available for data
	moduleLight
	moduleDark
)

// grid is the mutable tri-state module grid owned by one encode call.
// Cells start Unset and are determined through the build, placement,
// masking and format-info stages.
type grid struct {
	size    int
	modules []module
}

func newGrid(size int) *grid {
	return &grid{size: size, modules: make([]module, size*size)}
}

func (g *grid) get(row, col int) module {
	return g.modules[row*g.size+col]
}

func (g *grid) set(row, col int, m module) {
	g.modules[row*g.size+col] = m
}

func (g *grid) setBool(row, col int, dark bool) {
	if dark {
		g.set(row, col, moduleDark)
	} else {
		g.set(row, col, moduleLight)
	}
}

// finderPattern is the 7x7 position detection pattern.
var finderPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// alignmentPattern is the 5x5 position adjustment pattern.
var alignmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// embedBasicPatterns places every function pattern of the symbol: finder
// patterns with separators, alignment patterns, timing patterns and the
// dark module. Cells not touched here remain Unset.
func embedBasicPatterns(v *version, g *grid) {
	embedFinderPattern(g, 0, 0)
	embedFinderPattern(g, 0, g.size-7)
	embedFinderPattern(g, g.size-7, 0)

	// Horizontal separators under/over the finders.
	embedHorizontalSeparator(g, 7, 0)
	embedHorizontalSeparator(g, 7, g.size-8)
	embedHorizontalSeparator(g, g.size-8, 0)

	// Vertical separators beside the finders.
	embedVerticalSeparator(g, 0, 7)
	embedVerticalSeparator(g, 0, g.size-8)
	embedVerticalSeparator(g, g.size-7, 7)

	if v.number >= 2 {
		embedAlignmentPatterns(v, g)
	}

	embedTimingPatterns(g)

	if v.number >= 7 {
		embedVersionInfo(v, g)
	}

	// Dark module above the bottom-left finder's separator.
	g.set(g.size-8, 8, moduleDark)
}

// versionInfoBits holds the precomputed 18-bit BCH-protected version
// strings for versions 7-10, the only versions in range that carry them.
var versionInfoBits = map[int]int{
	7:  0x07C94,
	8:  0x085BC,
	9:  0x09A99,
	10: 0x0A4D3,
}

// embedVersionInfo writes the two 6x3 version information blocks next to
// the top-right and bottom-left finders.
func embedVersionInfo(v *version, g *grid) {
	bits := versionInfoBits[v.number]
	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			dark := (bits>>uint(bitIndex))&1 != 0
			bitIndex++
			g.setBool(g.size-11+j, i, dark) // bottom-left block
			g.setBool(i, g.size-11+j, dark) // top-right block
		}
	}
}

func embedFinderPattern(g *grid, rowStart, colStart int) {
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			g.setBool(rowStart+r, colStart+c, finderPattern[r][c] == 1)
		}
	}
}

func embedHorizontalSeparator(g *grid, row, colStart int) {
	for c := 0; c < 8; c++ {
		if colStart+c < g.size {
			g.set(row, colStart+c, moduleLight)
		}
	}
}

func embedVerticalSeparator(g *grid, rowStart, col int) {
	for r := 0; r < 7; r++ {
		if rowStart+r < g.size {
			g.set(rowStart+r, col, moduleLight)
		}
	}
}

// embedAlignmentPatterns places a 5x5 alignment pattern at every pair of
// center coordinates whose center cell is still free. Candidates whose
// center falls inside a finder area are skipped that way.
func embedAlignmentPatterns(v *version, g *grid) {
	for _, cr := range v.alignmentCenters {
		for _, cc := range v.alignmentCenters {
			if g.get(cr, cc) != moduleUnset {
				continue
			}
			for r := 0; r < 5; r++ {
				for c := 0; c < 5; c++ {
					g.setBool(cr-2+r, cc-2+c, alignmentPattern[r][c] == 1)
				}
			}
		}
	}
}

// embedTimingPatterns draws the alternating strips along row 6 and column
// 6 between the finders, leaving cells already claimed by alignment
// patterns untouched.
func embedTimingPatterns(g *grid) {
	for i := 8; i < g.size-8; i++ {
		dark := i%2 == 0
		if g.get(6, i) == moduleUnset {
			g.setBool(6, i, dark)
		}
		if g.get(i, 6) == moduleUnset {
			g.setBool(i, 6, dark)
		}
	}
}

// reserveFormatInfo fills the two format information strips with
// placeholder light modules so data placement skips them. The real format
// bits overwrite these after masking.
func reserveFormatInfo(g *grid) {
	for i := 0; i < 15; i++ {
		r, c := formatInfoCoordinates[i][0], formatInfoCoordinates[i][1]
		g.set(r, c, moduleLight)
		if i < 8 {
			g.set(8, g.size-1-i, moduleLight)
		} else {
			g.set(g.size-7+(i-8), 8, moduleLight)
		}
	}
}

// finalize collapses the tri-state grid into an immutable Matrix. A cell
// still Unset at this point is an internal invariant violation.
func (g *grid) finalize() *Matrix {
	dark := make([]bool, len(g.modules))
	for i, m := range g.modules {
		switch m {
		case moduleDark:
			dark[i] = true
		case moduleLight:
		default:
			panic("qrgen: unset module after placement")
		}
	}
	return &Matrix{size: g.size, dark: dark}
}

// Matrix is a finished symbol: a square grid of boolean modules where
// true means dark. The side length is version*4 + 17.
type Matrix struct {
	size int
	dark []bool
}

// Size returns the number of modules on a side.
func (m *Matrix) Size() int {
	return m.size
}

// Dark reports whether the module at (row, col) is dark.
func (m *Matrix) Dark(row, col int) bool {
	return m.dark[row*m.size+col]
}

// Bitmap returns a row-major copy of the module grid for rasterizers.
func (m *Matrix) Bitmap() [][]bool {
	rows := make([][]bool, m.size)
	for r := range rows {
		rows[r] = make([]bool, m.size)
		copy(rows[r], m.dark[r*m.size:(r+1)*m.size])
	}
	return rows
}

// String returns a visual representation of the symbol.
func (m *Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if m.Dark(r, c) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
