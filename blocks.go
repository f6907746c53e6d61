package qrgen

import (
	"github.com/ericlevine/qrgen/bitutil"
	"github.com/ericlevine/qrgen/reedsolomon"
)

// codewordBlock pairs one RS block's data codewords with its parity
// codewords. Blocks are local to a single encode call.
type codewordBlock struct {
	data []byte
	ec   []byte
}

// splitBlocks slices the padded data codewords sequentially into the
// version's RS blocks and computes the parity codewords for each.
func splitBlocks(data []byte, eb *ecBlocks) []codewordBlock {
	enc := reedsolomon.NewEncoder()
	blocks := make([]codewordBlock, 0, eb.numBlocks())
	for _, group := range eb.blocks {
		for i := 0; i < group.count; i++ {
			d := data[:group.dataCodewords]
			data = data[group.dataCodewords:]
			blocks = append(blocks, codewordBlock{
				data: d,
				ec:   enc.Encode(d, eb.ecCodewordsPerBlock),
			})
		}
	}
	if len(data) != 0 {
		panic("qrgen: leftover data codewords after block split")
	}
	return blocks
}

// interleaveBlocks emits byte i of every data block in block order, then
// byte i of every EC block, and re-reads the result as a bit sequence.
// Shorter data blocks are skipped once exhausted; every EC block has the
// same length.
func interleaveBlocks(blocks []codewordBlock, eb *ecBlocks) *bitutil.BitArray {
	maxDataBytes := 0
	for _, block := range blocks {
		if len(block.data) > maxDataBytes {
			maxDataBytes = len(block.data)
		}
	}

	result := bitutil.NewBitArray((eb.dataCodewords() + eb.totalECCodewords()) * 8)
	for i := 0; i < maxDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.data) {
				result.AppendBits(uint32(block.data[i]), 8)
			}
		}
	}
	for i := 0; i < eb.ecCodewordsPerBlock; i++ {
		for _, block := range blocks {
			result.AppendBits(uint32(block.ec[i]), 8)
		}
	}
	return result
}

// buildCodewords runs the padded bit stream through block splitting, RS
// parity generation and interleaving, producing the final bit sequence
// laid out in the symbol.
func buildCodewords(bits *bitutil.BitArray, v *version, level Level) *bitutil.BitArray {
	eb := v.ecBlocksForLevel(level)
	if bits.SizeInBytes() != eb.dataCodewords() {
		panic("qrgen: data codeword count mismatch")
	}
	return interleaveBlocks(splitBlocks(bits.Bytes(), eb), eb)
}
