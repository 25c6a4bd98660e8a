package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestCompress_Example(t *testing.T) {
	data, err := Compress("STREETTEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectDump := strings.Join([]string{
		"EncodedData{\n",
		"\tTreeBits = \"1011000\"\n",
		"\tTreeLeaves = \"TRSE\"\n",
		"\tMessageBits = \"1010100111100111010\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = data.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCompress_Rejects(t *testing.T) {
	for _, text := range []string{"", "a", "aa", "aaaa", "ccccccc"} {
		data, err := Compress(text)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%q: expected ErrInvalidInput, got %v", text, err)
		}
		if !data.Equal(EncodedData{}) {
			t.Errorf("%q: expected no partial result", text)
		}
	}
}

func TestCompress_Deterministic(t *testing.T) {
	for _, text := range sampleTexts {
		a, err := Compress(text)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		b, err := Compress(text)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		if !a.Equal(b) {
			t.Errorf("%q: EncodedData differs between runs", text)
		}
	}
}

func TestDecompress_Example(t *testing.T) {
	data := EncodedData{
		TreeBits:    MakeBits(1, 0, 1, 1, 0, 0, 0),
		TreeLeaves:  symbolsOf("TRSE"),
		MessageBits: MakeBits(0, 1, 0, 0, 1, 1, 1, 0, 1, 1, 0, 1),
	}
	text, err := Decompress(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := "TRESS"; text != expect {
		t.Errorf("wrong text:\n\texpect: %q\n\tactual: %q", expect, text)
	}
}

func TestDecompress_Malformed(t *testing.T) {
	type testRow struct {
		name string
		data EncodedData
	}

	testData := [...]testRow{
		{"zero-value", EncodedData{}},
		{"bad-tree", EncodedData{TreeBits: MakeBits(1, 0), TreeLeaves: symbolsOf("AB"), MessageBits: MakeBits(0)}},
		{"partial-message", EncodedData{TreeBits: MakeBits(1, 0, 1, 1, 0, 0, 0), TreeLeaves: symbolsOf("TRSE"), MessageBits: MakeBits(0, 1, 0)}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Decompress(row.data)
			if !errors.Is(err, ErrMalformedEncoding) {
				t.Errorf("expected ErrMalformedEncoding, got %v", err)
			}
		})
	}
}

func TestCompress_RoundTrip(t *testing.T) {
	var all strings.Builder
	for i := 0; i < NumSymbols; i++ {
		all.WriteByte(byte(i))
		all.WriteByte(byte(i / 3))
	}

	inputs := append([]string{
		strings.Repeat("ab", 1000) + "c",
		"日本語のテキスト",
		all.String(),
	}, sampleTexts...)

	for _, input := range inputs {
		data, err := Compress(input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		output, err := Decompress(data)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		if len(output) != len(input) {
			t.Errorf("wrong length: expected %d, got %d", len(input), len(output))
		}
		if input != output {
			t.Errorf("round trip mismatch for input of %d bytes", len(input))
		}
	}
}

func TestCompress_HappyHipHop(t *testing.T) {
	const input = "HAPPY HIP HOP"
	data, err := Compress(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output, err := Decompress(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != input {
		t.Errorf("wrong text:\n\texpect: %q\n\tactual: %q", input, output)
	}
	if n := len(data.TreeLeaves); n != 7 {
		t.Errorf("expected 7 leaves, got %d", n)
	}
}
