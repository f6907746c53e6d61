package qrgen

// maskFunc reports whether the data module at (row, col) is flipped by a
// mask pattern.
type maskFunc func(row, col int) bool

// masks holds the implemented mask predicates. Only the first four of the
// eight standard patterns are carried, and Encode always uses fixedMask;
// there is no penalty scoring.
var masks = [4]maskFunc{
	func(row, col int) bool { return (row+col)%2 == 0 },
	func(row, col int) bool { return row%2 == 0 },
	func(row, col int) bool { return col%3 == 0 },
	func(row, col int) bool { return (row+col)%3 == 0 },
}

// fixedMask is the mask id applied by Encode.
const fixedMask = 0

// applyMask flips the data cells selected by the mask predicate. cells is
// the placement output, so function and reserved modules are never
// touched.
func applyMask(g *grid, mask int, cells []position) {
	f := masks[mask]
	for _, p := range cells {
		if !f(p.row, p.col) {
			continue
		}
		if g.get(p.row, p.col) == moduleDark {
			g.set(p.row, p.col, moduleLight)
		} else {
			g.set(p.row, p.col, moduleDark)
		}
	}
}

// formatInfoCoordinates lists the (row, col) cells of the format strip
// around the top-left finder, in bit order 0..14. Cell (6, 8) is skipped:
// it belongs to the timing column.
var formatInfoCoordinates = [15][2]int{
	{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
	{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
}

// formatStrings holds the 15-bit BCH-protected, XOR-masked format strings
// indexed by the 5-bit format value (levelBits << 3) | maskID.
var formatStrings = [32]uint16{
	0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
	0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
	0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
}

// writeFormatInfo overwrites the reserved strips with the format string
// for the level and mask. Bit i goes to formatInfoCoordinates[i] and to
// the mirrored strip split between the top-right and bottom-left finders.
func writeFormatInfo(g *grid, level Level, mask int) {
	bits := formatStrings[(level.Bits()<<3)|mask]
	for i := 0; i < 15; i++ {
		dark := (bits>>uint(i))&1 != 0
		g.setBool(formatInfoCoordinates[i][0], formatInfoCoordinates[i][1], dark)
		if i < 8 {
			g.setBool(8, g.size-1-i, dark)
		} else {
			g.setBool(g.size-7+(i-8), 8, dark)
		}
	}
}
