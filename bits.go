package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Bit is a single binary digit.  It is used both as a branch choice while
// walking a Tree (0 = zero child, 1 = one child) and as the leaf/interior tag
// in a flattened Tree.
type Bit byte

const (
	// Zero is the Bit 0.
	Zero Bit = 0

	// One is the Bit 1.
	One Bit = 1
)

// IsValid returns true iff this Bit is 0 or 1.
func (b Bit) IsValid() bool {
	return b <= One
}

// String returns "0" or "1".
func (b Bit) String() string {
	if b.IsValid() {
		return string(rune('0' + b))
	}
	return "Bit(" + strconv.FormatUint(uint64(b), 10) + ")"
}

var _ fmt.Stringer = Bit(0)

// Bits represents an ordered sequence of bits.  The first bit is Bits[0].
type Bits []Bit

// MakeBits is a convenience function that constructs Bits from a list of
// 0/1 integers.
func MakeBits(values ...int) Bits {
	out := make(Bits, len(values))
	for index, value := range values {
		out[index] = Bit(value)
	}
	return out
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(str string) (Bits, error) {
	out := make(Bits, len(str))
	for index := 0; index < len(str); index++ {
		switch ch := str[index]; ch {
		case '0':
			out[index] = Zero
		case '1':
			out[index] = One
		default:
			return nil, fmt.Errorf("invalid character %q at index %d in bit string %q", ch, index, str)
		}
	}
	return out, nil
}

// Equal returns true iff both sequences hold the same bits in the same order.
func (bits Bits) Equal(other Bits) bool {
	if len(bits) != len(other) {
		return false
	}
	for index := range bits {
		if bits[index] != other[index] {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a (possibly improper) prefix of bits.
func (bits Bits) HasPrefix(prefix Bits) bool {
	if len(prefix) > len(bits) {
		return false
	}
	return bits[:len(prefix)].Equal(prefix)
}

// String returns the string representation of these Bits.
func (bits Bits) String() string {
	if len(bits) == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		sb.WriteString(bit.String())
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Bits(nil)

func prependBit(bit Bit, bits Bits) Bits {
	out := make(Bits, 0, len(bits)+1)
	out = append(out, bit)
	out = append(out, bits...)
	return out
}
