package schema

import "testing"

func TestBooleanRejectsNonCanonicalTrue(t *testing.T) {
	data := []byte{0x01, 0x01, 0x7F}
	var v bool
	_, err := DecodeInto(Bool(), data, &v)
	if !HasKind(err, InvalidBoolean) {
		t.Fatalf("expected InvalidBoolean, got %v", err)
	}
}

func TestBooleanAcceptsCanonicalValues(t *testing.T) {
	var v bool
	if _, err := DecodeInto(Bool(), []byte{0x01, 0x01, 0x00}, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v {
		t.Fatalf("expected false")
	}
	if _, err := DecodeInto(Bool(), []byte{0x01, 0x01, 0xFF}, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v {
		t.Fatalf("expected true")
	}
}
