package schema

/*
bool.go implements BOOLEAN: universal tag 1, primitive, exactly one
content octet. DER requires the octet to be either 0x00 (false) or
0xFF (true); any other value octet is legal BER but not legal DER,
matching spec.md's scenario for tag 01 01 7F. Grounded on the teacher
corpus's primitive decode dispatch in prim.go.
*/

import "reflect"

type boolNode struct {
	base
}

// Bool decodes an ASN.1 BOOLEAN into a *bool target.
func Bool(opts ...Option) Schema {
	return &boolNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *boolNode) specName() string { return n.displayName("BOOLEAN") }
func (n *boolNode) specType() string { return "BOOLEAN" }
func (n *boolNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagBoolean, Constructed: false}
}
func (n *boolNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *boolNode) isConstructed() bool  { return false }

func (n *boolNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if length != 1 {
		return ctx.fail(InvalidBoolean, nil, "BOOLEAN content must be exactly one octet, got %d", length)
	}
	b, err := cur.take(1)
	if err != nil {
		return ctx.fail(Truncated, err, "reading BOOLEAN content octet")
	}
	switch b[0] {
	case 0x00:
		target.SetBool(false)
	case 0xFF:
		target.SetBool(true)
	default:
		return ctx.fail(InvalidBoolean, nil, "DER BOOLEAN content octet must be 0x00 or 0xFF, got 0x%02X", b[0])
	}
	return nil
}

func (n *boolNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *boolNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
