package schema

import "testing"

func TestDecodeIntoPanicsOnNonPointerTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-pointer target")
		}
	}()
	var v int
	_, _ = DecodeInto(Integer(), []byte{0x02, 0x01, 0x01}, v)
}

func TestDecodeIntoFailsOnTrailingBytes(t *testing.T) {
	data := []byte{0x02, 0x01, 0x01, 0xFF}
	var v int
	_, err := DecodeInto(Integer(), data, &v)
	if !HasKind(err, TrailingBytes) {
		t.Fatalf("expected TrailingBytes, got %v", err)
	}
}

func TestDecodeIntoReturnsBytesConsumed(t *testing.T) {
	data := []byte{0x02, 0x01, 0x01}
	var v int
	n, err := DecodeInto(Integer(), data, &v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(data) {
		t.Fatalf("got %d bytes consumed, want %d", n, len(data))
	}
}

func TestDecodeOptionsContextNoneOmitsPath(t *testing.T) {
	data := []byte{0x01, 0x01, 0x7F}
	var v bool
	_, err := DecodeInto(Bool(), data, &v, DecodeOptions{ContextPolicy: ContextNone})
	var derr *Error
	if !asError(err, &derr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(derr.Path) != 0 {
		t.Fatalf("expected empty path under ContextNone, got %v", derr.Path)
	}
}

func TestDecodeOptionsContextFullCarriesPath(t *testing.T) {
	data := []byte{0x01, 0x01, 0x7F}
	var v bool
	_, err := DecodeInto(Bool(), data, &v, DecodeOptions{ContextPolicy: ContextFull})
	var derr *Error
	if !asError(err, &derr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if len(derr.Path) == 0 {
		t.Fatalf("expected non-empty path under ContextFull")
	}
}

func asError(err error, target **Error) bool {
	if e, ok := err.(*Error); ok {
		*target = e
		return true
	}
	return false
}
