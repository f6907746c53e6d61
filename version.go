package qrgen

// ecb describes one group of identically sized error-correction blocks.
type ecb struct {
	count         int
	dataCodewords int
}

// ecBlocks describes the block structure for one (version, level) pair.
type ecBlocks struct {
	ecCodewordsPerBlock int
	blocks              []ecb
}

// numBlocks returns the total number of RS blocks.
func (eb *ecBlocks) numBlocks() int {
	total := 0
	for _, b := range eb.blocks {
		total += b.count
	}
	return total
}

// dataCodewords returns the total number of data codewords across all blocks.
func (eb *ecBlocks) dataCodewords() int {
	total := 0
	for _, b := range eb.blocks {
		total += b.count * b.dataCodewords
	}
	return total
}

// totalECCodewords returns the total number of error-correction codewords.
func (eb *ecBlocks) totalECCodewords() int {
	return eb.ecCodewordsPerBlock * eb.numBlocks()
}

// version carries the capacity and layout constants for one symbol version.
type version struct {
	number           int
	alignmentCenters []int
	levels           [4]ecBlocks // indexed by Level: L, M, Q, H
}

// dimension returns the number of modules on a side.
func (v *version) dimension() int {
	return 17 + 4*v.number
}

// ecBlocksForLevel returns the block structure for the given level.
func (v *version) ecBlocksForLevel(level Level) *ecBlocks {
	return &v.levels[level]
}

// totalCodewords returns the total codeword count (data + EC) of the symbol.
func (v *version) totalCodewords(level Level) int {
	eb := v.ecBlocksForLevel(level)
	return eb.dataCodewords() + eb.totalECCodewords()
}

// countBits returns the width of the Byte-mode character count field.
func (v *version) countBits() int {
	if v.number <= 9 {
		return 8
	}
	return 16
}

// dataCapacityBits returns the number of data bits available at the level.
func (v *version) dataCapacityBits(level Level) int {
	return v.ecBlocksForLevel(level).dataCodewords() * 8
}

// byteCapacity returns the maximum Byte-mode payload length in bytes,
// accounting for the 4-bit mode indicator and the character count field.
func (v *version) byteCapacity(level Level) int {
	return (v.dataCapacityBits(level) - 4 - v.countBits()) / 8
}

// chooseVersion returns the smallest version whose Byte-mode capacity at
// the given level fits payloadLen bytes, or ErrDataTooLong if none does.
func chooseVersion(payloadLen int, level Level) (*version, error) {
	for i := range versions {
		if v := &versions[i]; payloadLen <= v.byteCapacity(level) {
			return v, nil
		}
	}
	return nil, ErrDataTooLong
}

func eb(ecCodewords int, blocks ...ecb) ecBlocks {
	return ecBlocks{ecCodewordsPerBlock: ecCodewords, blocks: blocks}
}

func b(count, dataCodewords int) ecb {
	return ecb{count: count, dataCodewords: dataCodewords}
}

func newVersion(number int, centers []int, l, m, q, h ecBlocks) version {
	return version{
		number:           number,
		alignmentCenters: centers,
		levels:           [4]ecBlocks{l, m, q, h},
	}
}

// versions holds the published Model 2 capacity table for versions 1-10.
var versions = [10]version{
	newVersion(1, nil, eb(7, b(1, 19)), eb(10, b(1, 16)), eb(13, b(1, 13)), eb(17, b(1, 9))),
	newVersion(2, []int{6, 18}, eb(10, b(1, 34)), eb(16, b(1, 28)), eb(22, b(1, 22)), eb(28, b(1, 16))),
	newVersion(3, []int{6, 22}, eb(15, b(1, 55)), eb(26, b(1, 44)), eb(18, b(2, 17)), eb(22, b(2, 13))),
	newVersion(4, []int{6, 26}, eb(20, b(1, 80)), eb(18, b(2, 32)), eb(26, b(2, 24)), eb(16, b(4, 9))),
	newVersion(5, []int{6, 30}, eb(26, b(1, 108)), eb(24, b(2, 43)), eb(18, b(2, 15), b(2, 16)), eb(22, b(2, 11), b(2, 12))),
	newVersion(6, []int{6, 34}, eb(18, b(2, 68)), eb(16, b(4, 27)), eb(24, b(4, 19)), eb(28, b(4, 15))),
	newVersion(7, []int{6, 22, 38}, eb(20, b(2, 78)), eb(18, b(4, 31)), eb(18, b(2, 14), b(4, 15)), eb(26, b(4, 13), b(1, 14))),
	newVersion(8, []int{6, 24, 42}, eb(24, b(2, 97)), eb(22, b(2, 38), b(2, 39)), eb(22, b(4, 18), b(2, 19)), eb(26, b(4, 14), b(2, 15))),
	newVersion(9, []int{6, 26, 46}, eb(30, b(2, 116)), eb(22, b(3, 36), b(2, 37)), eb(20, b(4, 16), b(4, 17)), eb(24, b(4, 12), b(4, 13))),
	newVersion(10, []int{6, 28, 50}, eb(18, b(2, 68), b(2, 69)), eb(26, b(4, 43), b(1, 44)), eb(24, b(6, 19), b(2, 20)), eb(28, b(6, 15), b(2, 16))),
}
