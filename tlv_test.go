package schema

import "testing"

func TestReadTagRejectsHighTagNumberForm(t *testing.T) {
	c := newCursor([]byte{0x1F, 0x20}, -1)
	if _, err := readTag(c); err != errHighTagNumberUnsupported {
		t.Fatalf("expected errHighTagNumberUnsupported, got %v", err)
	}
}

func TestReadLengthRejectsIndefiniteForm(t *testing.T) {
	c := newCursor([]byte{0x80}, -1)
	if _, err := readLength(c); err != errIndefiniteLength {
		t.Fatalf("expected errIndefiniteLength, got %v", err)
	}
}

func TestReadLengthRejectsReservedForm(t *testing.T) {
	c := newCursor([]byte{0xFF}, -1)
	if _, err := readLength(c); err != errReservedLength {
		t.Fatalf("expected errReservedLength, got %v", err)
	}
}

func TestReadLengthLongForm(t *testing.T) {
	c := newCursor(append([]byte{0x82, 0x01, 0x00}, make([]byte, 256)...), -1)
	n, err := readLength(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 256 {
		t.Fatalf("got %d, want 256", n)
	}
}

func TestReadLengthRejectsLengthBeyondRemaining(t *testing.T) {
	c := newCursor([]byte{0x05, 0x00, 0x00}, -1)
	if _, err := readLength(c); err != errInvalidLength {
		t.Fatalf("expected errInvalidLength, got %v", err)
	}
}

func TestPeekTagDoesNotAdvanceCursor(t *testing.T) {
	c := newCursor([]byte{0x02, 0x01, 0x01}, -1)
	before := c.pos
	if _, ok := peekTag(c); !ok {
		t.Fatalf("expected ok")
	}
	if c.pos != before {
		t.Fatalf("peekTag must not advance the cursor")
	}
}

func TestCursorWithBoundRestoresPositionOnShortConsumption(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, -1)
	err := c.withBound(3, func() error {
		_, e := c.take(1)
		return e
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.pos != 3 {
		t.Fatalf("got pos %d, want 3", c.pos)
	}
}

func TestCursorEnterRecursionExhaustsBudget(t *testing.T) {
	c := newCursor(nil, 1)
	restore1, err := c.enterRecursion()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.enterRecursion(); err != errRecursionDepthExceeded {
		t.Fatalf("expected errRecursionDepthExceeded, got %v", err)
	}
	restore1()
	if _, err := c.enterRecursion(); err != nil {
		t.Fatalf("unexpected error after restore: %v", err)
	}
}
