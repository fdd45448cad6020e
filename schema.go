package schema

/*
schema.go defines the Schema interface: the "small sum type" compile-
time schema representation chosen in SPEC_FULL.md over per-schema
generic monomorphization. Every ASN.1 construct in this package
(primitive, tagged, choice, sequence, set, sequence-of, set-of,
optional, default, recursive, extension) implements it.
*/

import "reflect"

// decodeOptions bundles the decode-time knobs from the public facade;
// it is threaded down to every node so leaf decoders can see it without
// a package-level global.
type decodeOptions struct {
	ignoreBitStringInvalidUnusedCount bool
}

// Schema describes one ASN.1 type: the tag it expects (if any), the
// category flags that change how the engine treats it, and the decode
// entry points described throughout spec.md §4.
//
// decodeExplicit reads the node's own tag and length from cur, checks
// the tag, then behaves like decodeImplicit over the length it just
// read. decodeImplicit assumes the caller already consumed (and, for
// non-CHOICE nodes, validated) the tag octet and the length; it must
// consume exactly n bytes of value content from cur and populate
// target, which is always addressable. decodeBody does the actual
// per-node work and assumes the caller has already pushed this node
// onto the error context path — decodeExplicit/decodeImplicit exist
// only to do that push/pop and run the node's validator exactly once.
type Schema interface {
	specName() string
	specType() string
	canDecode(t tag) bool

	isChoice() bool
	isAny() bool
	isOptional() bool
	hasDefault() bool
	isExtensionMarker() bool
	isConstructed() bool
	// ownsPointerTarget reports whether this node manages its own
	// pointer allocation on its target. True only for RECURSIVE, whose
	// Go representation is inherently a pointer due to the cycle it
	// breaks; Optional consults this to decide whether it must allocate
	// the pointer itself or simply delegate to the child.
	ownsPointerTarget() bool

	decodeBody(cur *cursor, n int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error
	decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error
	decodeImplicit(cur *cursor, n int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error
}

// ownTagger is implemented by every node with a single, fixed outer tag.
// CHOICE, ANY, the OPTIONAL wrappers, RECURSIVE and the extension marker
// do not implement it.
type ownTagger interface {
	ownTag() tag
}

// defaultApplier is implemented by OptionalDefault; SEQUENCE and SET
// call applyDefault on any child for which hasDefault() is true and no
// matching TLV was present.
type defaultApplier interface {
	applyDefault(target reflect.Value)
}

// base is embedded by every concrete schema node to supply the common,
// non-overridden parts of the Schema interface.
type base struct {
	nodeOptions
}

func (base) isChoice() bool          { return false }
func (base) isAny() bool             { return false }
func (base) isOptional() bool        { return false }
func (base) hasDefault() bool        { return false }
func (base) isExtensionMarker() bool { return false }
func (base) ownsPointerTarget() bool { return false }

func (b base) displayName(fallback string) string { return b.nodeOptions.displayName(fallback) }

// canDecodeOwnTag implements canDecode for any node with a single fixed
// tag, by simple equality.
func canDecodeOwnTag(s ownTagger) func(tag) bool {
	return func(t tag) bool { return t.equal(s.ownTag()) }
}

// finishValidator runs s's validator (if any) against target's current
// value once decodeBody has succeeded.
func finishValidator(ctx *errCtx, opt nodeOptions, specType string, target reflect.Value, err error) error {
	if err != nil || len(opt.validators) == 0 {
		return err
	}
	return opt.runValidator(ctx, specType, target.Interface())
}

// standardExplicit implements the shared decodeExplicit shape used by
// every node that owns a single fixed tag: read the tag, check it, read
// the length, and hand off to decodeBody for the value.
func standardExplicit(s Schema, want tag, cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions, opt nodeOptions) (err error) {
	pop := ctx.push(s.specName(), s.specType())
	defer pop()
	defer debugEnter(s.specName(), s.specType())(&err)

	got, terr := readTag(cur)
	if terr != nil {
		return ctx.fail(Truncated, terr, "reading tag for %s", s.specType())
	}
	if !got.equal(want) {
		return ctx.fail(UnexpectedTag, nil, "expected %s, got %s", want, got)
	}
	length, lerr := readLength(cur)
	if lerr != nil {
		return wrapLengthErr(ctx, lerr, s.specType())
	}
	err = s.decodeBody(cur, length, ctx, target, opts)
	err = finishValidator(ctx, opt, s.specType(), target, err)
	return
}

// standardImplicit implements the shared decodeImplicit shape: the
// caller already consumed the tag and length, so this only pushes the
// node's context entry, runs decodeBody over exactly n bytes, and runs
// the validator.
func standardImplicit(s Schema, cur *cursor, n int, ctx *errCtx, target reflect.Value, opts *decodeOptions, opt nodeOptions) (err error) {
	pop := ctx.push(s.specName(), s.specType())
	defer pop()
	defer debugEnter(s.specName(), s.specType())(&err)
	err = s.decodeBody(cur, n, ctx, target, opts)
	err = finishValidator(ctx, opt, s.specType(), target, err)
	return
}

func wrapLengthErr(ctx *errCtx, err error, specType string) error {
	if err == errTruncated {
		return ctx.fail(Truncated, err, "reading length for %s", specType)
	}
	return ctx.fail(InvalidLength, err, "invalid length for %s", specType)
}

func constructedBit(child Schema, explicit bool) bool {
	return explicit || child.isConstructed()
}
