package schema

/*
seq.go implements SEQUENCE and SEQUENCE OF. A SEQUENCE's children bind
to a target struct's fields by position: child i of the schema is
field i of the struct, the same index-based correspondence the teacher
corpus uses for its own composite decode (there driven by a struct
tag's declared index rather than a schema). SEQUENCE OF binds a single
child schema to a slice target, appending one element per decoded TLV.
*/

import "reflect"

type sequenceNode struct {
	base
	children []Schema
}

// Sequence decodes an ASN.1 SEQUENCE whose children are, in order,
// children. The target must be a struct with exactly len(children)
// exported fields in the same order.
func Sequence(children []Schema, opts ...Option) Schema {
	return &sequenceNode{base: base{nodeOptions: applyOptions(opts)}, children: children}
}

func (n *sequenceNode) specName() string { return n.displayName("SEQUENCE") }
func (n *sequenceNode) specType() string { return "SEQUENCE" }
func (n *sequenceNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagSequence, Constructed: true}
}
func (n *sequenceNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *sequenceNode) isConstructed() bool  { return true }

func (n *sequenceNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return cur.withBound(length, func() error {
		for i, child := range n.children {
			field := structField(target, i)

			if child.isExtensionMarker() {
				for !cur.atEnd() {
					if err := skipOneTLV(cur); err != nil {
						return ctx.fail(Truncated, err, "skipping extension data in %s", n.specType())
					}
				}
				continue
			}

			present := false
			if !cur.atEnd() {
				if t, ok := peekTag(cur); ok && child.canDecode(t) {
					present = true
				}
			}
			if !present {
				if child.hasDefault() {
					child.(defaultApplier).applyDefault(field)
					continue
				}
				if child.isOptional() {
					continue
				}
				if cur.atEnd() {
					return ctx.fail(MissingField, nil, "missing required field %s", child.specName())
				}
				return ctx.fail(UnexpectedTag, nil, "unexpected tag for field %s", child.specName())
			}
			if err := decodeFieldExplicit(child, cur, ctx, field, opts); err != nil {
				return err
			}
		}
		if !cur.atEnd() {
			return ctx.fail(TrailingBytes, nil, "%s has %d trailing bytes beyond its declared children", n.specType(), cur.remaining())
		}
		return nil
	})
}

func (n *sequenceNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *sequenceNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}

type sequenceOfNode struct {
	base
	child Schema
}

// SequenceOf decodes an ASN.1 SEQUENCE OF child into a slice target.
func SequenceOf(child Schema, opts ...Option) Schema {
	return &sequenceOfNode{base: base{nodeOptions: applyOptions(opts)}, child: child}
}

func (n *sequenceOfNode) specName() string { return n.displayName("SEQUENCE OF") }
func (n *sequenceOfNode) specType() string { return "SEQUENCE OF" }
func (n *sequenceOfNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagSequence, Constructed: true}
}
func (n *sequenceOfNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *sequenceOfNode) isConstructed() bool  { return true }

func (n *sequenceOfNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
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

func (n *sequenceOfNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *sequenceOfNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}

// checkCardinality enforces the MinElements/MaxElements options shared
// by SEQUENCE OF and SET OF.
func checkCardinality(ctx *errCtx, opt nodeOptions, specType string, count int) error {
	if opt.hasMin && !withinBounds(count, opt.minElements, true, 0, false) {
		return ctx.fail(TooFewElements, nil, "%s has %d elements, fewer than the required minimum %d", specType, count, opt.minElements)
	}
	if opt.hasMax && !withinBounds(count, 0, false, opt.maxElements, true) {
		return ctx.fail(TooManyElements, nil, "%s has %d elements, more than the allowed maximum %d", specType, count, opt.maxElements)
	}
	return nil
}
