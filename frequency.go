package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies counts the occurrences of each byte of text.  It fails
// with ErrInvalidInput unless text holds at least two distinct symbols.
func CountFrequencies(text string) (FrequencyTable, error) {
	var freqs FrequencyTable
	for index := 0; index < len(text); index++ {
		freqs[text[index]]++
	}
	if n := freqs.Distinct(); n < 2 {
		return FrequencyTable{}, fmt.Errorf("found %d distinct symbols in %d bytes of text: %w", n, len(text), ErrInvalidInput)
	}
	return freqs, nil
}

// Distinct returns the number of Symbols with a non-zero count.
func (freqs *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Symbols returns the Symbols with a non-zero count, in ascending order.
func (freqs *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, freqs.Distinct())
	for symbol, freq := range freqs {
		if freq != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (freqs *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range freqs.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%q) = %d\n", byte(symbol), freqs[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
