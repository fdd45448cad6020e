package schema

import "testing"

type setWithOptionalsTarget struct {
	A bool
	B struct{}
	C []byte
}

func TestSetRejectsDuplicateElement(t *testing.T) {
	data := []byte{0x31, 0x06, 0x01, 0x01, 0xFF, 0x01, 0x01, 0x00}
	s := Set([]Schema{
		Bool(),
		Optional(Null()),
		Optional(OctetString()),
	})
	var v setWithOptionalsTarget
	_, err := DecodeInto(s, data, &v)
	if !HasKind(err, DuplicateSetElement) {
		t.Fatalf("expected DuplicateSetElement, got %v", err)
	}
}

func TestSetAcceptsOutOfOrderMembers(t *testing.T) {
	data := []byte{0x31, 0x05, 0x05, 0x00, 0x01, 0x01, 0xFF}
	s := Set([]Schema{
		Bool(),
		Optional(Null()),
		Optional(OctetString()),
	})
	v, err := DecodeTo[setWithOptionalsTarget](s, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.A {
		t.Fatalf("expected A true, got %+v", v)
	}
}

func TestSetOfBindsSlice(t *testing.T) {
	data := []byte{0x31, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	s := SetOf(Integer())
	v, err := DecodeTo[[]int](s, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 2 {
		t.Fatalf("unexpected slice: %v", v)
	}
}
