package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// EncodedData is the complete compressed form of a text: the flattened tree
// and the message encoded against it.
type EncodedData struct {
	// TreeBits holds the shape of the flattened tree, one bit per node.
	TreeBits Bits

	// TreeLeaves holds the leaf Symbols of the flattened tree, in pre-order.
	TreeLeaves []Symbol

	// MessageBits holds the encoded message.
	MessageBits Bits
}

// Compress builds the Huffman tree for text and encodes text against it.
// It fails with ErrInvalidInput unless text holds at least two distinct
// symbols; no partial EncodedData is ever returned.
func Compress(text string) (EncodedData, error) {
	t, err := BuildTreeFromText(text)
	if err != nil {
		return EncodedData{}, err
	}

	treeBits, treeLeaves := Flatten(t)
	messageBits, err := Encode(t, text)
	if err != nil {
		return EncodedData{}, err
	}

	return EncodedData{
		TreeBits:    treeBits,
		TreeLeaves:  treeLeaves,
		MessageBits: messageBits,
	}, nil
}

// Decompress reconstructs the tree carried by data and decodes the message
// against it.
func Decompress(data EncodedData) (string, error) {
	t, err := Unflatten(data.TreeBits, data.TreeLeaves)
	if err != nil {
		return "", err
	}
	return Decode(t, data.MessageBits)
}

// Equal returns true iff both values hold identical sequences.
func (data EncodedData) Equal(other EncodedData) bool {
	return data.TreeBits.Equal(other.TreeBits) &&
		textOf(data.TreeLeaves) == textOf(other.TreeLeaves) &&
		data.MessageBits.Equal(other.MessageBits)
}

// Dump writes a programmer-readable debugging dump of the EncodedData to the
// given writer.
func (data EncodedData) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("EncodedData{\n")
	fmt.Fprintf(&buf, "\tTreeBits = %s\n", data.TreeBits)
	fmt.Fprintf(&buf, "\tTreeLeaves = %q\n", textOf(data.TreeLeaves))
	fmt.Fprintf(&buf, "\tMessageBits = %s\n", data.MessageBits)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
