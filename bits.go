package qrgen

import "github.com/ericlevine/qrgen/bitutil"

// byteModeIndicator is the 4-bit mode indicator for Byte mode, 0b0100.
const byteModeIndicator = 0x4

// buildBitStream assembles the data bit sequence for a Byte-mode payload:
// mode indicator, character count, payload bytes MSB-first, terminator,
// and padding up to the version's data capacity. The version selector has
// already guaranteed the payload fits.
func buildBitStream(data []byte, v *version, level Level) *bitutil.BitArray {
	bits := bitutil.NewBitArray(v.dataCapacityBits(level))
	bits.AppendBits(byteModeIndicator, 4)
	bits.AppendBits(uint32(len(data)), v.countBits())
	for _, c := range data {
		bits.AppendBits(uint32(c), 8)
	}
	terminateBits(v.ecBlocksForLevel(level).dataCodewords(), bits)
	return bits
}

// terminateBits appends the terminator and padding so that bits holds
// exactly numDataBytes bytes.
func terminateBits(numDataBytes int, bits *bitutil.BitArray) {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		panic("qrgen: data bits exceed capacity")
	}

	// Terminator: up to 4 zero bits, truncated at capacity.
	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	// Pad to a byte boundary.
	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	// Pad with alternating bytes to the full data capacity.
	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
}
