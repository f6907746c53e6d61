// Package bitutil provides the growable bit buffer used during QR encoding.
package bitutil

import "strings"

const loadFactor = 0.75

// BitArray is a simple, fast array of bits represented compactly by an array
// of uint32 values internally. Bits are appended in stream order and read
// back most-significant bit first when repacked into bytes.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates an empty BitArray with capacity for sizeHint bits.
func NewBitArray(sizeHint int) *BitArray {
	if sizeHint <= 0 {
		return &BitArray{}
	}
	return &BitArray{bits: makeArray(sizeHint)}
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitutil: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// ToBytes writes numBytes bytes to array starting at offset, reading bits
// from bitOffset onward, most significant bit first within each byte.
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// Bytes returns the whole array repacked into bytes, most significant bit
// first. The size must be a multiple of 8.
func (ba *BitArray) Bytes() []byte {
	if ba.size%8 != 0 {
		panic("bitutil: fractional byte")
	}
	out := make([]byte, ba.size/8)
	ba.ToBytes(0, out, 0, len(out))
	return out
}

// String returns a string representation using 'X' for set and '.' for unset.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size + ba.size/8 + 1)
	for i := 0; i < ba.size; i++ {
		if i&0x07 == 0 {
			sb.WriteByte(' ')
		}
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
