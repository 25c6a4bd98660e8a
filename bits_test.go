package huffman

import (
	"testing"
)

func TestBits_String(t *testing.T) {
	type testRow struct {
		bits   Bits
		expect string
	}

	testData := [...]testRow{
		{nil, `""`},
		{MakeBits(0), `"0"`},
		{MakeBits(1, 0, 1, 1, 1, 0), `"101110"`},
		{Bits{Bit(7)}, `"Bit(7)"`},
	}
	for _, row := range testData {
		if actual := row.bits.String(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

func TestParseBits(t *testing.T) {
	bits, err := ParseBits("1011000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := MakeBits(1, 0, 1, 1, 0, 0, 0); !expect.Equal(bits) {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, bits)
	}

	bits, err = ParseBits("")
	if err != nil || len(bits) != 0 {
		t.Errorf("expected empty bits, got %s, %v", bits, err)
	}

	if _, err = ParseBits("10x1"); err == nil {
		t.Errorf("expected error for invalid character")
	}
}

func TestBits_HasPrefix(t *testing.T) {
	bits := MakeBits(1, 0, 1)
	if !bits.HasPrefix(nil) {
		t.Errorf("empty prefix rejected")
	}
	if !bits.HasPrefix(MakeBits(1, 0)) {
		t.Errorf("\"10\" rejected as prefix of \"101\"")
	}
	if !bits.HasPrefix(bits) {
		t.Errorf("\"101\" rejected as prefix of itself")
	}
	if bits.HasPrefix(MakeBits(1, 1)) {
		t.Errorf("\"11\" accepted as prefix of \"101\"")
	}
	if bits.HasPrefix(MakeBits(1, 0, 1, 0)) {
		t.Errorf("\"1010\" accepted as prefix of \"101\"")
	}
}
