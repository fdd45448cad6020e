package schema

/*
oid.go implements OBJECT IDENTIFIER (tag 6) and RELATIVE-OID (tag 13):
both are sequences of base-128 sub-identifiers, the only difference
being that an absolute OID's first sub-identifier is split into its
first two arc components via the X*40+Y rule. Grounded on the teacher
corpus's OID reader in prim.go, generalized to share one body between
the two tags and to fail on a per-component basis (OidComponentOverflow)
rather than only on total value overflow.
*/

import "reflect"

// ObjectIdentifier is the decoded target shape for OBJECT IDENTIFIER
// and RELATIVE-OID: the ordered arc components.
type ObjectIdentifier []uint32

var objectIdentifierType = reflect.TypeOf(ObjectIdentifier(nil))

type oidNode struct {
	base
	number      int
	specTypeStr string
	relative    bool
}

// ObjectIdentifierSchema decodes an absolute ASN.1 OBJECT IDENTIFIER.
func ObjectIdentifierSchema(opts ...Option) Schema {
	return &oidNode{base: base{nodeOptions: applyOptions(opts)}, number: tagOID, specTypeStr: "OBJECT IDENTIFIER"}
}

// RelativeOID decodes an ASN.1 RELATIVE-OID.
func RelativeOID(opts ...Option) Schema {
	return &oidNode{base: base{nodeOptions: applyOptions(opts)}, number: tagRelativeOID, specTypeStr: "RELATIVE-OID", relative: true}
}

func (n *oidNode) specName() string { return n.displayName(n.specTypeStr) }
func (n *oidNode) specType() string { return n.specTypeStr }
func (n *oidNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: n.number, Constructed: false}
}
func (n *oidNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *oidNode) isConstructed() bool  { return false }

func (n *oidNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if length < 1 {
		return ctx.fail(InvalidOid, nil, "%s content must not be empty", n.specTypeStr)
	}
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading %s content", n.specTypeStr)
	}

	if isRawByteCarrier(target.Type()) {
		bindRawBytes(target, content)
		return nil
	}

	subIDs, err := decodeBase128Components(content)
	if err == errOidOverflow {
		return ctx.fail(OidComponentOverflow, err, "%s sub-identifier overflow", n.specTypeStr)
	}
	if err != nil {
		return ctx.fail(InvalidOid, err, "%s ends inside a sub-identifier", n.specTypeStr)
	}
	if len(subIDs) == 0 {
		return ctx.fail(InvalidOid, nil, "%s decoded to zero components", n.specTypeStr)
	}

	var components []uint32
	if n.relative {
		components = subIDs
	} else {
		first := subIDs[0]
		var x, y uint32
		if first >= 80 {
			x = 2
			y = first - 80
		} else {
			x = first / 40
			y = first % 40
		}
		components = append([]uint32{x, y}, subIDs[1:]...)
	}

	if target.Type() != objectIdentifierType {
		panic(sprintf("schema: %s cannot bind to target type %s", n.specTypeStr, target.Type()))
	}
	target.Set(reflect.ValueOf(ObjectIdentifier(components)))
	return nil
}

// decodeBase128Components splits content into its base-128
// sub-identifiers: groups of 7 bits, high bit set on every octet
// except the group's last, accumulated big-endian into a uint32.
func decodeBase128Components(content []byte) ([]uint32, error) {
	var out []uint32
	var cur uint32
	var inGroup bool
	for _, b := range content {
		if cur > (1<<25)-1 {
			return nil, errOidOverflow
		}
		cur = cur<<7 | uint32(b&0x7F)
		inGroup = true
		if b&0x80 == 0 {
			out = append(out, cur)
			cur = 0
			inGroup = false
		}
	}
	if inGroup {
		return nil, errTruncated
	}
	return out, nil
}

func (n *oidNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *oidNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
