package schema

import "testing"

func TestAnyCapturesFullTLVIncludingHeader(t *testing.T) {
	data := []byte{0x02, 0x01, 0x2A}
	v, err := DecodeTo[[]byte](Any(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v) != 3 || v[0] != 0x02 {
		t.Fatalf("expected full TLV including header, got %v", v)
	}
}

func TestAnyMatchesAnyTag(t *testing.T) {
	for _, data := range [][]byte{
		{0x01, 0x01, 0xFF},
		{0x05, 0x00},
		{0x04, 0x02, 0xAA, 0xBB},
	} {
		if _, err := DecodeTo[View](Any(), data); err != nil {
			t.Fatalf("unexpected error for %v: %v", data, err)
		}
	}
}
