package schema

import "testing"

func TestUTCTimeWithZeroYearPivot(t *testing.T) {
	data := []byte{0x17, 0x0D, '1', '2', '0', '5', '2', '4', '1', '1', '2', '2', '3', '3', 'Z'}
	v, err := DecodeTo[UTCTime](UTCTimeSchema(ZeroYear(2000)), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := UTCTime{Year: 12, Month: 5, Day: 24, Hour: 11, Minute: 22, Second: 33}
	if v != want {
		t.Fatalf("got %+v, want %+v", v, want)
	}
}

func TestGeneralizedTimeRejectsTrailingZeroFraction(t *testing.T) {
	content := []byte("25910524112233.10Z")
	data := append([]byte{0x18, byte(len(content))}, content...)
	var v GeneralizedTime
	_, err := DecodeInto(GeneralizedTimeSchema(), data, &v)
	if !HasKind(err, InvalidDateTime) {
		t.Fatalf("expected InvalidDateTime, got %v", err)
	}
}

func TestGeneralizedTimeAcceptsNonTrailingZeroFraction(t *testing.T) {
	content := []byte("19951231235959.123Z")
	data := append([]byte{0x18, byte(len(content))}, content...)
	v, err := DecodeTo[GeneralizedTime](GeneralizedTimeSchema(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Year != 1995 || v.Fraction != "123" {
		t.Fatalf("unexpected decoded value: %+v", v)
	}
}
