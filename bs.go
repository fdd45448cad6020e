package schema

/*
bs.go implements BIT STRING: universal tag 3, primitive in DER. The
first content octet is the unused-bits count; the remaining octets
are the bit data itself, most significant bit first. Grounded on the
teacher corpus's BIT STRING reader in prim.go; the strict-vs-lenient
unused-bits check is a direct generalization of that reader's fixed
behavior into the IgnoreBitStringInvalidUnusedCount decode option.
*/

import "reflect"

// BitString is the decoded target shape for an ASN.1 BIT STRING: the
// octets that carry the bits, and how many of their bits are meaningful
// (eight per octet, less the unused trailing bits of the last octet).
type BitString struct {
	Bytes     []byte
	BitLength int
}

var bitStringType = reflect.TypeOf(BitString{})

type bitStringNode struct {
	base
}

// BitStringSchema decodes an ASN.1 BIT STRING into a BitString target.
func BitStringSchema(opts ...Option) Schema {
	return &bitStringNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *bitStringNode) specName() string { return n.displayName("BIT STRING") }
func (n *bitStringNode) specType() string { return "BIT STRING" }
func (n *bitStringNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagBitString, Constructed: false}
}
func (n *bitStringNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *bitStringNode) isConstructed() bool  { return false }

func (n *bitStringNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if length < 1 {
		return ctx.fail(InvalidBitString, nil, "BIT STRING content must include the unused-bits octet")
	}
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading BIT STRING content")
	}
	unused := int(content[0])
	data := content[1:]
	bitCount := len(data)*8 - unused

	if unused > 7 || unused > len(data)*8 {
		strict := opts == nil || !opts.ignoreBitStringInvalidUnusedCount
		if strict {
			return ctx.fail(InvalidBitString, nil, "unused-bits count %d is invalid for %d content octets", unused, len(data))
		}
		if bitCount < 0 {
			bitCount = 0
		}
	}

	if target.Type() != bitStringType {
		panic(sprintf("schema: BIT STRING cannot bind to target type %s", target.Type()))
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	target.Set(reflect.ValueOf(BitString{Bytes: cp, BitLength: bitCount}))
	return nil
}

func (n *bitStringNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *bitStringNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
