package reedsolomon

// Encoder computes error-correction codewords for data blocks. Generator
// polynomials are cached per degree, so encoding every block of a symbol
// builds the generator once.
type Encoder struct {
	cachedGenerators [][]byte
}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{cachedGenerators: [][]byte{{1}}}
}

// buildGenerator returns the generator polynomial of the given degree,
// the product of (x - 2^i) for i in [0, degree). Coefficients are ordered
// from the highest-degree term down; the leading coefficient is always 1.
func (e *Encoder) buildGenerator(degree int) []byte {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	last := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		// Multiply the previous generator by (x - 2^(d-1)).
		root := Exp(d - 1)
		next := make([]byte, len(last)+1)
		copy(next, last)
		for i, c := range last {
			next[i+1] ^= Multiply(c, root)
		}
		e.cachedGenerators = append(e.cachedGenerators, next)
		last = next
	}
	return e.cachedGenerators[degree]
}

// Encode returns the numECCodewords error-correction codewords for data:
// the remainder of data * x^n divided by the degree-n generator.
func (e *Encoder) Encode(data []byte, numECCodewords int) []byte {
	if numECCodewords <= 0 {
		panic("reedsolomon: no error correction codewords")
	}
	if len(data) == 0 {
		panic("reedsolomon: no data codewords")
	}
	generator := e.buildGenerator(numECCodewords)

	// XOR-based polynomial long division over data || n zero bytes. The
	// remainder accumulates in the trailing n bytes.
	remainder := make([]byte, len(data)+numECCodewords)
	copy(remainder, data)
	for i := 0; i < len(data); i++ {
		coeff := remainder[i]
		if coeff == 0 {
			continue
		}
		for j, g := range generator {
			remainder[i+j] ^= Multiply(g, coeff)
		}
	}
	return remainder[len(data):]
}
