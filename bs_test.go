package schema

import "testing"

func TestBitStringDecodesUnusedBits(t *testing.T) {
	data := []byte{0x03, 0x04, 0x06, 0x6E, 0x5D, 0xC0}
	v, err := DecodeTo[BitString](BitStringSchema(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BitLength != 3*8-6 {
		t.Fatalf("got bit length %d, want %d", v.BitLength, 3*8-6)
	}
	if len(v.Bytes) != 3 {
		t.Fatalf("got %d bytes, want 3", len(v.Bytes))
	}
}

func TestBitStringRejectsInvalidUnusedCountByDefault(t *testing.T) {
	data := []byte{0x03, 0x02, 0x09, 0xFF}
	var v BitString
	_, err := DecodeInto(BitStringSchema(), data, &v)
	if !HasKind(err, InvalidBitString) {
		t.Fatalf("expected InvalidBitString, got %v", err)
	}
}

func TestBitStringTolerantModeIgnoresInvalidUnusedCount(t *testing.T) {
	data := []byte{0x03, 0x02, 0x09, 0xFF}
	var v BitString
	_, err := DecodeInto(BitStringSchema(), data, &v, DecodeOptions{IgnoreBitStringInvalidUnusedCount: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
