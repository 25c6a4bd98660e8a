package huffman

// Symbol represents a symbol in the code's alphabet, which is a single byte
// of text.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// textOf converts symbols back into text, one byte per Symbol.
func textOf(symbols []Symbol) string {
	buf := make([]byte, len(symbols))
	for index, symbol := range symbols {
		buf[index] = byte(symbol)
	}
	return string(buf)
}
