// Package huffman implements a self-describing Huffman text codec.
//
// Compress derives a prefix-free code from the byte frequencies of a text,
// encodes the text with it, and returns the code tree in flattened form
// alongside the message bits, so that Decompress needs nothing else to
// reconstruct the text exactly.
//
// The flattened tree is a pre-order walk that emits a 0 bit (and the leaf's
// symbol) for every leaf and a 1 bit for every interior node, visiting the
// zero child before the one child.  EncodedData.MarshalBinary packs the
// three sequences into bytes for storage or transmission.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
