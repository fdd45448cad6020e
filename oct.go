package schema

/*
oct.go implements OCTET STRING: universal tag 4, primitive in DER,
content is an opaque byte range bound to either an owned []byte or a
zero-copy View target. Grounded on the teacher corpus's raw-bytes
reader in prim.go.
*/

import "reflect"

type octetStringNode struct {
	base
}

// OctetString decodes an ASN.1 OCTET STRING into a []byte or View target.
func OctetString(opts ...Option) Schema {
	return &octetStringNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *octetStringNode) specName() string { return n.displayName("OCTET STRING") }
func (n *octetStringNode) specType() string { return "OCTET STRING" }
func (n *octetStringNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagOctetString, Constructed: false}
}
func (n *octetStringNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *octetStringNode) isConstructed() bool  { return false }

func (n *octetStringNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading OCTET STRING content")
	}
	bindRawBytes(target, content)
	return nil
}

func (n *octetStringNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *octetStringNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
