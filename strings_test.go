package schema

import "testing"

func TestUTF8StringDecodesToGoString(t *testing.T) {
	content := []byte("hello")
	data := append([]byte{0x0C, byte(len(content))}, content...)
	v, err := DecodeTo[string](UTF8String(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" {
		t.Fatalf("got %q, want %q", v, "hello")
	}
}

func TestBMPStringDecodesUTF16BE(t *testing.T) {
	data := []byte{0x1E, 0x04, 0x00, 0x41, 0x00, 0x42}
	v, err := DecodeTo[string](BMPString(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "AB" {
		t.Fatalf("got %q, want %q", v, "AB")
	}
}

func TestUniversalStringRejectsOddLength(t *testing.T) {
	data := []byte{0x1C, 0x03, 0x00, 0x00, 0x41}
	var v string
	_, err := DecodeInto(UniversalString(), data, &v)
	if !HasKind(err, InvalidString) {
		t.Fatalf("expected InvalidString, got %v", err)
	}
}

func TestPrintableStringRawByteCarrierTarget(t *testing.T) {
	data := []byte{0x13, 0x03, 'a', 'b', 'c'}
	v, err := DecodeTo[View](PrintableString(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(v) != "abc" {
		t.Fatalf("got %q, want %q", string(v), "abc")
	}
}
