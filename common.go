package schema

/*
common.go contains small helpers shared across the package, following
the teacher corpus's habit (common.go) of collecting trivial aliases and
reflect helpers in one place rather than scattering them.
*/

import (
	"fmt"
	"reflect"
)

var sprintf = fmt.Sprintf

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// indirectAlloc dereferences a pointer value, allocating a new zero value
// when the pointer is nil, and returns the pointed-to (addressable) value.
func indirectAlloc(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	return v
}

func bool2str(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
