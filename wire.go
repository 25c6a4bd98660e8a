package huffman

import (
	"bytes"
	"encoding"
	"fmt"
	"math"

	"github.com/icza/bitio"
)

// Binary layout of EncodedData:
//
//     magic       32 bits  "HUF1"
//     numTree     32 bits  len(TreeBits)
//     numLeaves   32 bits  len(TreeLeaves)
//     numMessage  32 bits  len(MessageBits)
//     TreeBits     1 bit each
//     TreeLeaves   8 bits each
//     MessageBits  1 bit each
//     zero padding to the next byte boundary
//
// All multi-bit fields are most significant bit first.
//
const (
	wireMagic      = uint64(0x48554631) // "HUF1"
	wireHeaderSize = 16
)

// MarshalBinary packs data into bytes.
func (data EncodedData) MarshalBinary() ([]byte, error) {
	for _, n := range [...]int{len(data.TreeBits), len(data.TreeLeaves), len(data.MessageBits)} {
		if uint64(n) > math.MaxUint32 {
			return nil, fmt.Errorf("sequence of %d elements is too long to marshal", n)
		}
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	writeBits := func(bits Bits) error {
		for index, bit := range bits {
			if !bit.IsValid() {
				return fmt.Errorf("invalid bit %s at index %d: %w", bit, index, ErrMalformedEncoding)
			}
			if err := w.WriteBool(bit == One); err != nil {
				return err
			}
		}
		return nil
	}

	header := [...]uint64{wireMagic, uint64(len(data.TreeBits)), uint64(len(data.TreeLeaves)), uint64(len(data.MessageBits))}
	for _, value := range header {
		if err := w.WriteBits(value, 32); err != nil {
			return nil, err
		}
	}
	if err := writeBits(data.TreeBits); err != nil {
		return nil, err
	}
	for _, symbol := range data.TreeLeaves {
		if err := w.WriteByte(byte(symbol)); err != nil {
			return nil, err
		}
	}
	if err := writeBits(data.MessageBits); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary unpacks bytes produced by MarshalBinary.  Input whose
// header is invalid, whose size disagrees with its header, whose declared
// lengths cannot describe a full binary tree over the byte alphabet, or whose
// padding bits are not zero is reported as ErrMalformedEncoding.
func (data *EncodedData) UnmarshalBinary(p []byte) error {
	if len(p) < wireHeaderSize {
		return fmt.Errorf("truncated header: got %d bytes, need %d: %w", len(p), wireHeaderSize, ErrMalformedEncoding)
	}

	r := bitio.NewReader(bytes.NewReader(p))

	var header [4]uint64
	for index := range header {
		value, err := r.ReadBits(32)
		if err != nil {
			return fmt.Errorf("failed to read header: %v: %w", err, ErrMalformedEncoding)
		}
		header[index] = value
	}
	magic, numTree, numLeaves, numMessage := header[0], header[1], header[2], header[3]

	if magic != wireMagic {
		return fmt.Errorf("bad magic 0x%08x: %w", magic, ErrMalformedEncoding)
	}
	if numLeaves > NumSymbols {
		return fmt.Errorf("%d tree leaves exceed the %d-symbol alphabet: %w", numLeaves, NumSymbols, ErrMalformedEncoding)
	}
	if numTree != 0 || numLeaves != 0 {
		if numLeaves == 0 || numTree != 2*numLeaves-1 {
			return fmt.Errorf("%d tree bits cannot describe a tree with %d leaves: %w", numTree, numLeaves, ErrMalformedEncoding)
		}
	}

	numPayloadBits := numTree + 8*numLeaves + numMessage
	expectSize := uint64(wireHeaderSize) + (numPayloadBits+7)/8
	if uint64(len(p)) != expectSize {
		return fmt.Errorf("wrong size: expected %d bytes, got %d: %w", expectSize, len(p), ErrMalformedEncoding)
	}

	readBits := func(n uint64) (Bits, error) {
		out := make(Bits, n)
		for index := range out {
			b, err := r.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("failed to read bit: %v: %w", err, ErrMalformedEncoding)
			}
			if b {
				out[index] = One
			}
		}
		return out, nil
	}

	treeBits, err := readBits(numTree)
	if err != nil {
		return err
	}
	treeLeaves := make([]Symbol, numLeaves)
	for index := range treeLeaves {
		b, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("failed to read leaf: %v: %w", err, ErrMalformedEncoding)
		}
		treeLeaves[index] = Symbol(b)
	}
	messageBits, err := readBits(numMessage)
	if err != nil {
		return err
	}
	if numPad := uint8((8 - numPayloadBits%8) % 8); numPad != 0 {
		pad, err := r.ReadBits(numPad)
		if err != nil {
			return fmt.Errorf("failed to read padding: %v: %w", err, ErrMalformedEncoding)
		}
		if pad != 0 {
			return fmt.Errorf("non-zero padding bits 0x%02x: %w", pad, ErrMalformedEncoding)
		}
	}

	*data = EncodedData{
		TreeBits:    treeBits,
		TreeLeaves:  treeLeaves,
		MessageBits: messageBits,
	}
	return nil
}

var (
	_ encoding.BinaryMarshaler   = EncodedData{}
	_ encoding.BinaryUnmarshaler = (*EncodedData)(nil)
)
