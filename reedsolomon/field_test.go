package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFieldLogExpRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		assert.Equal(t, byte(a), Exp(int(Log(byte(a)))), "exp(log(%d))", a)
	}
}

func TestFieldKnownValues(t *testing.T) {
	assert.Equal(t, byte(1), Exp(0))
	assert.Equal(t, byte(2), Exp(1))
	assert.Equal(t, byte(0), Log(1))
	assert.Equal(t, byte(1), Log(2))
	// 2^8 wraps through the primitive polynomial: 256 ^ 0x11D = 29.
	assert.Equal(t, byte(29), Exp(8))
}

func TestFieldExpMirror(t *testing.T) {
	for i := 0; i < 255; i++ {
		assert.Equal(t, Exp(i), Exp(i+255), "exp mirror at %d", i)
	}
}

func TestFieldLogZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Log(0) })
}

func TestMultiplyZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(0), Multiply(byte(a), 0))
		assert.Equal(t, byte(0), Multiply(0, byte(a)))
	}
}

func TestMultiplyProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")
		c := rapid.Byte().Draw(t, "c")

		assert.Equal(t, Multiply(a, b), Multiply(b, a), "commutativity")
		assert.Equal(t, Multiply(Multiply(a, b), c), Multiply(a, Multiply(b, c)), "associativity")
		assert.Equal(t, Multiply(a, b^c), Multiply(a, b)^Multiply(a, c), "distributivity over XOR")
		assert.Equal(t, a, Multiply(a, 1), "multiplicative identity")
	})
}
