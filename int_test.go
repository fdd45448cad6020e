package schema

import "testing"

func TestIntegerPositive32Bit(t *testing.T) {
	data := []byte{0x02, 0x03, 0x01, 0x02, 0x03}
	var v int32
	if _, err := DecodeInto(Integer(), data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 66051 {
		t.Fatalf("got %d, want 66051", v)
	}
}

func TestIntegerNegative64Bit(t *testing.T) {
	data := []byte{0x02, 0x03, 0xFB, 0xA7, 0xC8}
	var v int64
	if _, err := DecodeInto(Integer(), data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -284728 {
		t.Fatalf("got %d, want -284728", v)
	}
}

func TestIntegerTooLargeFor8Bit(t *testing.T) {
	data := []byte{0x02, 0x02, 0x01, 0x00}
	var v int8
	_, err := DecodeInto(Integer(), data, &v)
	if !HasKind(err, IntegerTooLarge) {
		t.Fatalf("expected IntegerTooLarge, got %v", err)
	}
}

func TestIntegerRawView(t *testing.T) {
	data := []byte{0x02, 0x03, 0x01, 0x02, 0x03}
	var v View
	if _, err := DecodeInto(Integer(), data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 3 || v[0] != 0x01 {
		t.Fatalf("unexpected view content: %v", v)
	}
}

func TestEnumeratedSharesIntegerEncoding(t *testing.T) {
	data := []byte{0x0A, 0x01, 0x02}
	var v int
	if _, err := DecodeInto(Enumerated(), data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}
