package schema

import (
	"reflect"
	"testing"
)

func TestObjectIdentifierRSAEncryption(t *testing.T) {
	data := []byte{0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B}
	v, err := DecodeTo[ObjectIdentifier](ObjectIdentifierSchema(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("got %v, want %v", v, want)
	}
}

func TestObjectIdentifierComponentOverflow(t *testing.T) {
	data := []byte{0x06, 0x06, 0x2A, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}
	var v ObjectIdentifier
	_, err := DecodeInto(ObjectIdentifierSchema(), data, &v)
	if !HasKind(err, OidComponentOverflow) {
		t.Fatalf("expected OidComponentOverflow, got %v", err)
	}
}
