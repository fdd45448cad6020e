package schema

/*
null.go implements the NULL primitive: universal tag 5, always
primitive, value length always zero. Grounded on the teacher corpus's
handling of fixed-length primitives in prim.go, trimmed to the single
zero-length case.
*/

import "reflect"

type nullNode struct {
	base
}

// Null decodes an ASN.1 NULL. The target type may be struct{} or any
// type; nothing is written to it beyond confirming the encoding.
func Null(opts ...Option) Schema {
	return &nullNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *nullNode) specName() string { return n.displayName("NULL") }
func (n *nullNode) specType() string { return "NULL" }
func (n *nullNode) ownTag() tag      { return tag{Class: ClassUniversal, Number: tagNull, Constructed: false} }
func (n *nullNode) canDecode(t tag) bool  { return canDecodeOwnTag(n)(t) }
func (n *nullNode) isConstructed() bool   { return false }

func (n *nullNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if length != 0 {
		return ctx.fail(InvalidNull, nil, "NULL must have zero-length content, got %d", length)
	}
	return nil
}

func (n *nullNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *nullNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
