package schema

import "testing"

type seqWithDefaultTarget struct {
	A int
	B int
	C bool
}

func TestSequenceAppliesDefaultWhenFieldAbsent(t *testing.T) {
	data := []byte{0x30, 0x08, 0xA5, 0x03, 0x02, 0x01, 0x55, 0x01, 0x01, 0xFF}
	s := Sequence([]Schema{
		Tagged(5, ClassContextSpecific, true, Integer()),
		OptionalDefault(Integer(), 12345),
		Bool(),
	})
	v, err := DecodeTo[seqWithDefaultTarget](s, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := seqWithDefaultTarget{A: 0x55, B: 12345, C: true}
	if v != want {
		t.Fatalf("got %+v, want %+v", v, want)
	}
}

func TestSequenceFailsOnMissingRequiredField(t *testing.T) {
	data := []byte{0x30, 0x00}
	s := Sequence([]Schema{Bool()})
	var v struct{ A bool }
	_, err := DecodeInto(s, data, &v)
	if !HasKind(err, MissingField) {
		t.Fatalf("expected MissingField, got %v", err)
	}
}

func TestSequenceOfBindsSlice(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	s := SequenceOf(Integer())
	v, err := DecodeTo[[]int](s, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 2 || v[0] != 1 || v[1] != 2 {
		t.Fatalf("unexpected slice: %v", v)
	}
}

func TestSequenceOfEnforcesMinElements(t *testing.T) {
	data := []byte{0x30, 0x03, 0x02, 0x01, 0x01}
	s := SequenceOf(Integer(), MinElements(2))
	var v []int
	_, err := DecodeInto(s, data, &v)
	if !HasKind(err, TooFewElements) {
		t.Fatalf("expected TooFewElements, got %v", err)
	}
}
