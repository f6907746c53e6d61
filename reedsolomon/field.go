// Package reedsolomon generates QR error-correction codewords over GF(256).
package reedsolomon

// primitive is the QR code field polynomial, x^8 + x^4 + x^3 + x^2 + 1.
const primitive = 0x11D

// field holds the exp/log lookup tables for GF(256). The exp table is
// mirrored into its upper half so that exp[log[a]+log[b]] never needs a
// reduction mod 255.
type field struct {
	exp [512]byte
	log [256]byte
}

// qrField is built once before first use and never mutated afterwards,
// so concurrent encodes may share it freely.
var qrField = newField()

func newField() *field {
	f := &field{}
	x := 1
	for i := 0; i < 255; i++ {
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x *= 2
		if x >= 256 {
			x ^= primitive
		}
	}
	return f
}

// Exp returns 2^i in the field.
func Exp(i int) byte {
	return qrField.exp[i]
}

// Log returns the discrete logarithm of a. a must be nonzero.
func Log(a byte) byte {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return qrField.log[a]
}

// Multiply returns a * b in the field.
func Multiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return qrField.exp[int(qrField.log[a])+int(qrField.log[b])]
}
