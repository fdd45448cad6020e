package schema

import (
	"errors"
	"testing"
)

var errNegativeNotAllowed = errors.New("negative values are not allowed")

func TestValidatorOptionComposesInOrder(t *testing.T) {
	var order []int
	s := Integer(
		Validator(func(v int) error { order = append(order, 1); return nil }),
		Validator(func(v int) error { order = append(order, 2); return nil }),
	)
	var v int
	if _, err := DecodeInto(s, []byte{0x02, 0x01, 0x05}, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("validators did not run in declaration order: %v", order)
	}
}

func TestValidatorFailureWrapsValidationFailed(t *testing.T) {
	s := Integer(Validator(func(v int) error {
		if v < 0 {
			return errNegativeNotAllowed
		}
		return nil
	}))
	var v int
	_, err := DecodeInto(s, []byte{0x02, 0x01, 0xFF}, &v)
	if !HasKind(err, ValidationFailed) {
		t.Fatalf("expected ValidationFailed, got %v", err)
	}
}

func TestWithinBounds(t *testing.T) {
	if !withinBounds(5, 1, true, 10, true) {
		t.Fatalf("expected 5 to be within [1,10]")
	}
	if withinBounds(0, 1, true, 10, true) {
		t.Fatalf("expected 0 to be outside [1,10]")
	}
	if withinBounds(11, 1, true, 10, true) {
		t.Fatalf("expected 11 to be outside [1,10]")
	}
	if !withinBounds(100, 0, false, 0, false) {
		t.Fatalf("expected no bounds to always pass")
	}
}
