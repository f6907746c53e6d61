package qrgen

// Encode encodes data as a Byte-mode QR symbol at the given error
// correction level, choosing the smallest version from 1 to 10 that fits.
// It returns ErrDataTooLong if the payload exceeds version 10's capacity
// at that level. Encoding is deterministic: the same input always
// produces the same matrix.
func Encode(data []byte, level Level) (*Matrix, error) {
	if level < LevelL || level > LevelH {
		level = LevelM
	}
	v, err := chooseVersion(len(data), level)
	if err != nil {
		return nil, err
	}

	bits := buildBitStream(data, v, level)
	codewords := buildCodewords(bits, v, level)

	g := newGrid(v.dimension())
	embedBasicPatterns(v, g)
	reserveFormatInfo(g)
	dataCells := placeData(g, codewords)
	applyMask(g, fixedMask, dataCells)
	writeFormatInfo(g, level, fixedMask)
	return g.finalize(), nil
}

// EncodeString encodes the raw bytes of text. See Encode.
func EncodeString(text string, level Level) (*Matrix, error) {
	return Encode([]byte(text), level)
}
