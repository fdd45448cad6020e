package schema

/*
any.go implements ANY: a schema node that matches any tag and records
the raw TLV bytes rather than interpreting them. Grounded on the
teacher corpus's raw-bytes passthrough reader, generalized from a
fixed-tag opaque blob into a wildcard-tag one.

ANY used directly as a CHOICE alternative is a known gap: CHOICE
consumes the tag and length before dispatching to the alternative's
decodeImplicit, so the alternative never sees its own header bytes.
decodeImplicit below records only the value bytes in that case, not
the full TLV decodeExplicit would have captured.
*/

import "reflect"

type anyNode struct {
	base
}

// Any decodes any single TLV into a raw-byte-carrier target, including
// its own tag and length octets.
func Any(opts ...Option) Schema {
	return &anyNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *anyNode) specName() string    { return n.displayName("ANY") }
func (n *anyNode) specType() string    { return "ANY" }
func (n *anyNode) isAny() bool         { return true }
func (n *anyNode) isConstructed() bool { return false }
func (n *anyNode) canDecode(tag) bool  { return true }

func (n *anyNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading ANY content")
	}
	bindRawBytes(target, content)
	return nil
}

func (n *anyNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}

func (n *anyNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	pop := ctx.push(n.specName(), n.specType())
	defer pop()

	start := cur.pos
	h, err := readHeader(cur)
	if err != nil {
		return wrapLengthErr(ctx, err, n.specType())
	}
	if err := cur.skip(h.Length); err != nil {
		return ctx.fail(Truncated, err, "reading ANY value")
	}
	full := cur.data[start:cur.pos]
	bindRawBytes(target, full)
	return finishValidator(ctx, n.nodeOptions, n.specType(), target, nil)
}
