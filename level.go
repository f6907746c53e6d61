// Package qrgen encodes Byte-mode QR Model 2 symbols, versions 1 through 10.
//
// Encode turns a payload and an error correction level into a finished
// boolean module matrix. Rendering the matrix to pixels is left to the
// caller.
package qrgen

// Level represents the four QR code error correction levels.
type Level int

const (
	LevelL Level = iota // ~7% correction
	LevelM              // ~15% correction
	LevelQ              // ~25% correction
	LevelH              // ~30% correction
)

// Bits returns the 2-bit encoding of this level used in format information.
func (l Level) Bits() int {
	switch l {
	case LevelL:
		return 0x01
	case LevelM:
		return 0x00
	case LevelQ:
		return 0x03
	case LevelH:
		return 0x02
	}
	return 0
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "?"
}

// ParseLevel returns the Level named by s. The tokens are case-sensitive;
// anything other than "L", "M", "Q" or "H" normalizes to LevelM.
func ParseLevel(s string) Level {
	switch s {
	case "L":
		return LevelL
	case "M":
		return LevelM
	case "Q":
		return LevelQ
	case "H":
		return LevelH
	}
	return LevelM
}
