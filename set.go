package schema

/*
set.go implements SET and SET OF. Unlike SEQUENCE, a SET's children may
arrive in any order, so matching is by tag rather than position: each
incoming TLV's tag must match exactly one not-yet-seen child. A dense
256-bit bitmap over the tag-octet space (grounded on the teacher
corpus's compact membership bitsets used elsewhere for flag tracking)
catches duplicate tags in O(1) regardless of how many children the SET
declares.
*/

import "reflect"

type tagBitmap [4]uint64

func (m *tagBitmap) set(octet byte)     { m[octet/64] |= 1 << (octet % 64) }
func (m tagBitmap) isSet(octet byte) bool { return m[octet/64]&(1<<(octet%64)) != 0 }

type setNode struct {
	base
	children []Schema
}

// Set decodes an ASN.1 SET whose children's effective tags are
// pairwise disjoint. The target must be a struct with one exported
// field per child, in the same order as children (order does not
// affect matching, only where each decoded value lands).
func Set(children []Schema, opts ...Option) Schema {
	return &setNode{base: base{nodeOptions: applyOptions(opts)}, children: children}
}

func (n *setNode) specName() string { return n.displayName("SET") }
func (n *setNode) specType() string { return "SET" }
func (n *setNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagSet, Constructed: true}
}
func (n *setNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *setNode) isConstructed() bool  { return true }

func (n *setNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	decoded := make([]bool, len(n.children))
	var seen tagBitmap

	err := cur.withBound(length, func() error {
		for !cur.atEnd() {
			t, ok := peekTag(cur)
			if !ok {
				return ctx.fail(UnexpectedTag, nil, "invalid tag octet while decoding %s", n.specType())
			}
			octet := t.octet()
			if seen.isSet(octet) {
				return ctx.fail(DuplicateSetElement, nil, "duplicate SET element with tag %s", t)
			}

			idx := -1
			for i, child := range n.children {
				if !decoded[i] && !child.isExtensionMarker() && child.canDecode(t) {
					idx = i
					break
				}
			}
			if idx == -1 {
				extensible := false
				for _, child := range n.children {
					if child.isExtensionMarker() {
						extensible = true
					}
				}
				if !extensible {
					return ctx.fail(UnexpectedTag, nil, "no member of %s matches tag %s", n.specType(), t)
				}
				if err := skipOneTLV(cur); err != nil {
					return ctx.fail(Truncated, err, "skipping extension data in %s", n.specType())
				}
				continue
			}
			if err := decodeFieldExplicit(n.children[idx], cur, ctx, structField(target, idx), opts); err != nil {
				return err
			}
			decoded[idx] = true
			seen.set(octet)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, child := range n.children {
		if decoded[i] || child.isExtensionMarker() {
			continue
		}
		if child.hasDefault() {
			child.(defaultApplier).applyDefault(structField(target, i))
			continue
		}
		if child.isOptional() {
			continue
		}
		return ctx.fail(MissingField, nil, "missing required SET element %s", child.specName())
	}
	return nil
}

func (n *setNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *setNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}

type setOfNode struct {
	base
	child Schema
}

// SetOf decodes an ASN.1 SET OF child into a slice target. Canonical
// DER element ordering is not enforced on decode.
func SetOf(child Schema, opts ...Option) Schema {
	return &setOfNode{base: base{nodeOptions: applyOptions(opts)}, child: child}
}

func (n *setOfNode) specName() string { return n.displayName("SET OF") }
func (n *setOfNode) specType() string { return "SET OF" }
func (n *setOfNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagSet, Constructed: true}
}
func (n *setOfNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *setOfNode) isConstructed() bool  { return true }

func (n *setOfNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	err := cur.withBound(length, func() error {
		for !cur.atEnd() {
			elem := growSlice(target)
			if err := decodeFieldExplicit(n.child, cur, ctx, elem, opts); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return checkCardinality(ctx, n.nodeOptions, n.specType(), target.Len())
}

func (n *setOfNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *setOfNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
