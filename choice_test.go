package schema

import "testing"

func choiceBooleanOrInteger() Schema {
	return ChoiceSchema([]ChoiceAlternative{
		Alt(Bool(), func() any { return new(bool) }),
		Alt(Integer(), func() any { return new(int) }),
	})
}

func TestChoiceMatchesIntegerAlternative(t *testing.T) {
	data := []byte{0x02, 0x01, 0x05}
	v, err := DecodeTo[Choice](choiceBooleanOrInteger(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Index != 1 || v.Value.(int) != 5 {
		t.Fatalf("unexpected choice: %+v", v)
	}
}

func TestChoiceMatchesBooleanAlternative(t *testing.T) {
	data := []byte{0x01, 0x01, 0xFF}
	v, err := DecodeTo[Choice](choiceBooleanOrInteger(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Index != 0 || v.Value.(bool) != true {
		t.Fatalf("unexpected choice: %+v", v)
	}
}

func TestChoiceFailsWithNoMatchingAlternative(t *testing.T) {
	data := []byte{0x05, 0x00}
	_, err := DecodeTo[Choice](choiceBooleanOrInteger(), data)
	if !HasKind(err, NoMatchingAlternative) {
		t.Fatalf("expected NoMatchingAlternative, got %v", err)
	}
}

func TestChoiceSchemaPanicsOnTagCollision(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on colliding CHOICE alternatives")
		}
	}()
	ChoiceSchema([]ChoiceAlternative{
		Alt(Bool(), func() any { return new(bool) }),
		Alt(Bool(), func() any { return new(bool) }),
	})
}
