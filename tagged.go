package schema

/*
tagged.go implements TAGGED[number, class, encoding]. Implicit tagging
replaces the child's own tag with the declared one and hands the
content straight to the child's implicit decoder; explicit tagging
frames an extra outer TLV around the child's ordinary (tag-checked)
decode. Grounded on the teacher corpus's own context-tag wrapping used
for its protocol fields, generalized from a single fixed wrapping
convention into the caller-chosen implicit/explicit pair the spec
requires.
*/

import "reflect"

type taggedNode struct {
	base
	number   int
	class    TagClass
	explicit bool
	child    Schema
}

// Tagged wraps child in an ASN.1 context/application/private tag.
// Implicit tagging is rejected at construction time for CHOICE and ANY
// children, matching the compile-time prohibition in the ASN.1 tagging
// rules: neither has a single fixed tag of its own to replace.
func Tagged(number int, class TagClass, explicit bool, child Schema, opts ...Option) Schema {
	if !explicit && (child.isChoice() || child.isAny()) {
		panic(sprintf("schema: implicit tagging of a %s child is not permitted; use explicit tagging", childKindName(child)))
	}
	return &taggedNode{base: base{nodeOptions: applyOptions(opts)}, number: number, class: class, explicit: explicit, child: child}
}

func childKindName(s Schema) string {
	if s.isChoice() {
		return "CHOICE"
	}
	return "ANY"
}

func (n *taggedNode) specName() string { return n.displayName(sprintf("[%d]", n.number)) }
func (n *taggedNode) specType() string {
	kind := "IMPLICIT"
	if n.explicit {
		kind = "EXPLICIT"
	}
	return sprintf("[%d] %s", n.number, kind)
}
func (n *taggedNode) ownTag() tag {
	return tag{Class: n.class, Number: n.number, Constructed: constructedBit(n.child, n.explicit)}
}
func (n *taggedNode) canDecode(t tag) bool     { return canDecodeOwnTag(n)(t) }
func (n *taggedNode) isConstructed() bool      { return n.ownTag().Constructed }
func (n *taggedNode) ownsPointerTarget() bool  { return n.child.ownsPointerTarget() }

func (n *taggedNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if !n.explicit {
		return n.child.decodeImplicit(cur, length, ctx, target, opts)
	}
	return cur.withBound(length, func() error {
		if err := n.child.decodeExplicit(cur, ctx, target, opts); err != nil {
			return err
		}
		if !cur.atEnd() {
			return ctx.fail(TrailingBytes, nil, "explicit %s has %d trailing bytes after its inner TLV", n.specType(), cur.remaining())
		}
		return nil
	})
}

func (n *taggedNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *taggedNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
