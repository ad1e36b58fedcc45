package trie

import (
	"bytes"
	"testing"
)

func TestHexToCompactLeafEven(t *testing.T) {
	hex := []byte{1, 2, 3, 4, terminatorNibble}
	compact := hexToCompact(hex)
	expected := []byte{0x20, 0x12, 0x34}
	if !bytes.Equal(compact, expected) {
		t.Errorf("hexToCompact(%v) = %x, want %x", hex, compact, expected)
	}
}

func TestHexToCompactLeafOdd(t *testing.T) {
	hex := []byte{1, 2, 3, terminatorNibble}
	compact := hexToCompact(hex)
	expected := []byte{0x31, 0x23}
	if !bytes.Equal(compact, expected) {
		t.Errorf("hexToCompact(%v) = %x, want %x", hex, compact, expected)
	}
}

func TestHexToCompactExtensionEven(t *testing.T) {
	hex := []byte{1, 2, 3, 4}
	compact := hexToCompact(hex)
	expected := []byte{0x00, 0x12, 0x34}
	if !bytes.Equal(compact, expected) {
		t.Errorf("hexToCompact(%v) = %x, want %x", hex, compact, expected)
	}
}

func TestHexToCompactExtensionOdd(t *testing.T) {
	hex := []byte{1, 2, 3}
	compact := hexToCompact(hex)
	expected := []byte{0x11, 0x23}
	if !bytes.Equal(compact, expected) {
		t.Errorf("hexToCompact(%v) = %x, want %x", hex, compact, expected)
	}
}

func TestCompactToHexRoundtrip(t *testing.T) {
	tests := [][]byte{
		{1, 2, 3, 4, terminatorNibble},
		{1, 2, 3, terminatorNibble},
		{1, 2, 3, 4},
		{1, 2, 3},
		{0, terminatorNibble},
		{0xf, 0xa, 0xb, terminatorNibble},
		{},
	}
	for _, hex := range tests {
		compact := hexToCompact(hex)
		result := compactToHex(compact)
		if !bytes.Equal(result, hex) {
			t.Errorf("compactToHex(hexToCompact(%v)) = %v, want %v", hex, result, hex)
		}
	}
}

func TestToNibblesFromNibblesRoundtrip(t *testing.T) {
	keys := [][]byte{
		{},
		{0x00},
		{0xff},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
		{0x00, 0x00, 0x00},
	}
	for _, key := range keys {
		nibbles := ToNibbles(key)
		back, ok := FromNibbles(nibbles)
		if !ok {
			t.Fatalf("FromNibbles(ToNibbles(%x)) reported odd length", key)
		}
		if !bytes.Equal(back, key) {
			t.Errorf("FromNibbles(ToNibbles(%x)) = %x, want %x", key, back, key)
		}
	}
}

func TestPrefixLen(t *testing.T) {
	tests := []struct {
		a, b []byte
		want int
	}{
		{[]byte{1, 2, 3}, []byte{1, 2, 4}, 2},
		{[]byte{1, 2, 3}, []byte{1, 2, 3}, 3},
		{[]byte{1, 2, 3}, []byte{4, 5, 6}, 0},
		{[]byte{}, []byte{1}, 0},
		{[]byte{1}, []byte{}, 0},
	}
	for _, tt := range tests {
		got := prefixLen(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("prefixLen(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHasTerm(t *testing.T) {
	if !hasTerm([]byte{1, 2, 3, terminatorNibble}) {
		t.Error("expected hasTerm to return true")
	}
	if hasTerm([]byte{1, 2, 3}) {
		t.Error("expected hasTerm to return false")
	}
	if hasTerm([]byte{}) {
		t.Error("expected hasTerm to return false for empty")
	}
}
