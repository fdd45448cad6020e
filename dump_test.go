package schema

import (
	"strings"
	"testing"
)

func TestDumpWalksNestedConstructedTLVs(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}
	var b strings.Builder
	if err := Dump(&b, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "SEQUENCE") {
		t.Fatalf("expected SEQUENCE in output, got %q", out)
	}
	if !strings.Contains(out, "INTEGER") || !strings.Contains(out, "BOOLEAN") {
		t.Fatalf("expected nested children in output, got %q", out)
	}
}

func TestDumpHandlesMultipleTopLevelTLVs(t *testing.T) {
	data := []byte{0x05, 0x00, 0x05, 0x00}
	var b strings.Builder
	if err := Dump(&b, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(b.String(), "NULL") != 2 {
		t.Fatalf("expected two NULL entries, got %q", b.String())
	}
}

func TestDumpFailsOnTruncatedHeader(t *testing.T) {
	data := []byte{0x30, 0x05, 0x02}
	var b strings.Builder
	if err := Dump(&b, data); err == nil {
		t.Fatalf("expected error for truncated nested TLV")
	}
}
