package schema

/*
bind.go collects the reflect-based target-binding helpers shared by
the composite decoders: unwrapping an offset-decorated wrapper before
delegating to the wrapped schema, and the field/element reflection
used by SEQUENCE, SET and the *OF constructs. Grounded on the teacher
corpus's index-based struct field walk used for its own composite
types, generalized from a struct-tag-driven walk into a schema-driven
one (field i of the struct corresponds to child i of the schema).
*/

import "reflect"

// unwrapSpan reports whether target is addressable and its address
// implements spanner; if so it returns the wrapper's inner value (the
// one the wrapped schema actually decodes into) in place of target.
func unwrapSpan(target reflect.Value) (inner reflect.Value, wrap spanner, ok bool) {
	if !target.CanAddr() {
		return target, nil, false
	}
	sp, isSpan := target.Addr().Interface().(spanner)
	if !isSpan {
		return target, nil, false
	}
	return sp.spanInnerAddr(), sp, true
}

// decodeFieldExplicit decodes one schema-described value at the
// current cursor position into target, transparently bracketing the
// call with byte offsets when target is one of the offset-decorated
// wrapper types.
func decodeFieldExplicit(child Schema, cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	inner, wrap, ok := unwrapSpan(target)
	if !ok {
		return child.decodeExplicit(cur, ctx, target, opts)
	}
	begin := cur.pos
	err := child.decodeExplicit(cur, ctx, inner, opts)
	end := cur.pos
	if err == nil {
		wrap.setSpan(begin, end, cur.data)
	}
	return err
}

// structField addresses field index i of a struct target. It allocates
// nothing: a pointer field is allocated later by the OPTIONAL/RECURSIVE
// node that decodes into it. i is the position of the schema child
// among the aggregate's fields, which must equal the declaration order
// of the SEQUENCE/SET children.
func structField(target reflect.Value, i int) reflect.Value {
	if target.Kind() != reflect.Struct {
		panic(sprintf("schema: aggregate target must be a struct, got %s", target.Type()))
	}
	if i >= target.NumField() {
		panic(sprintf("schema: schema declares more children than target struct %s has fields", target.Type()))
	}
	return target.Field(i)
}

// growSlice appends a new zero element to a slice target and returns an
// addressable handle to it, for SEQUENCE OF / SET OF element decoding.
func growSlice(target reflect.Value) reflect.Value {
	elemType := target.Type().Elem()
	target.Set(reflect.Append(target, reflect.Zero(elemType)))
	return target.Index(target.Len() - 1)
}
