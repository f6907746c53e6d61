package qrgen

import "github.com/ericlevine/qrgen/bitutil"

// position is one (row, col) cell coordinate.
type position struct {
	row, col int
}

// zigzagOrder returns every cell coordinate of a size-wide grid in the
// serpentine data-placement order: column pairs from the right edge
// inward, skipping the vertical timing column, with the row direction
// alternating per pair (up first). Function cells are included; the
// placement step skips whatever is not Unset. Keeping the traversal
// separate from bit consumption lets the order be tested on its own.
func zigzagOrder(size int) []position {
	coords := make([]position, 0, size*(size-1))
	upward := true
	for col := size - 1; col > 0; col -= 2 {
		if col == 6 {
			col-- // skip the timing column
		}
		for count := 0; count < size; count++ {
			row := count
			if upward {
				row = size - 1 - count
			}
			coords = append(coords, position{row, col}, position{row, col - 1})
		}
		upward = !upward
	}
	return coords
}

// placeData walks the zig-zag order and assigns the next codeword bit to
// every cell still Unset, placing light modules once the bit sequence is
// exhausted. It returns the positions written, in placement order: these
// are exactly the symbol's data cells, which masking flips afterwards.
func placeData(g *grid, bits *bitutil.BitArray) []position {
	placed := make([]position, 0, bits.Size())
	bitIndex := 0
	for _, p := range zigzagOrder(g.size) {
		if g.get(p.row, p.col) != moduleUnset {
			continue
		}
		bit := false
		if bitIndex < bits.Size() {
			bit = bits.Get(bitIndex)
			bitIndex++
		}
		g.setBool(p.row, p.col, bit)
		placed = append(placed, p)
	}
	return placed
}
