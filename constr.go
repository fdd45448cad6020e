package schema

/*
constr.go contains the small generic constraint-composition helpers
shared by the option bag and the cardinality checks on SEQUENCE OF /
SET OF. Grounded directly on the teacher corpus's constr.go, which
defines the same Constraint/ConstraintGroup shape for its own
validation layer; reused here verbatim for the node-level Validator
option, and extended with a constraints.Integer-bounded cardinality
check the teacher's version does not need.
*/

import "golang.org/x/exp/constraints"

// Constraint is a single named check against a decoded value.
type Constraint[T any] func(T) error

// ConstraintGroup runs its members in declaration order, stopping at
// the first failure. Multiple Validator options attached to the same
// schema node accumulate into one group rather than overwriting one
// another.
type ConstraintGroup[T any] []Constraint[T]

func (g ConstraintGroup[T]) Constrain(v T) error {
	for _, c := range g {
		if c == nil {
			continue
		}
		if err := c(v); err != nil {
			return err
		}
	}
	return nil
}

// withinBounds reports whether v falls within [min, max], where either
// bound may be absent.
func withinBounds[T constraints.Integer](v T, min T, hasMin bool, max T, hasMax bool) bool {
	if hasMin && v < min {
		return false
	}
	if hasMax && v > max {
		return false
	}
	return true
}
