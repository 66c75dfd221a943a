package letterhuffman

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCodeSize is the bit length of the longest Code that can be represented.
const MaxCodeSize = 32

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint32) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is too long: got %d bits, max %d", str, len(str), MaxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, str[i], i)
		}
	}
	return hc, nil
}

// Append returns the Code formed by appending one bit to the end of this
// Code.  Any non-zero bit is treated as 1.
func (hc Code) Append(bit uint32) Code {
	if bit != 0 {
		hc.Bits |= uint32(1) << hc.Size
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from the first bit.
func (hc Code) Bit(i byte) uint32 {
	return (hc.Bits >> i) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	mask := uint32(1)<<prefix.Size - 1
	return hc.Bits&mask == prefix.Bits&mask
}

// BitString returns the bits of this Code as a string of '0' and '1'
// characters, first bit first.
func (hc Code) BitString() string {
	var sb strings.Builder
	hc.appendTo(&sb)
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.BitString())
}

func (hc Code) appendTo(sb *strings.Builder) {
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
}

// JoinCodes concatenates a sequence of Codes into a single string of '0' and
// '1' characters.
func JoinCodes(codes []Code) string {
	var sb strings.Builder
	for _, hc := range codes {
		hc.appendTo(&sb)
	}
	return sb.String()
}

var _ fmt.Stringer = Code{}
