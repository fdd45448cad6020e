package schema

/*
optional.go implements OPTIONAL and OPTIONAL-DEFAULT, the two marker
wrappers that make a SEQUENCE/SET child absence-tolerant. OPTIONAL
materialises a pointer-shaped target cell only when its child is
actually present in the input; OPTIONAL-DEFAULT never uses a pointer
cell at all, instead filling the field's ordinary value with a
supplied default when the child is absent. Grounded on the teacher
corpus's own nilable-field convention for protocol fields it does not
always expect.
*/

import "reflect"

type optionalNode struct {
	base
	child Schema
}

// Optional makes child's absence tolerable. The target field it
// populates must be a pointer to the child's ordinary target type,
// unless child already owns its own pointer target (RECURSIVE), in
// which case Optional passes the pointer straight through.
func Optional(child Schema, opts ...Option) Schema {
	return &optionalNode{base: base{nodeOptions: applyOptions(opts)}, child: child}
}

func (n *optionalNode) specName() string      { return n.displayName(n.child.specName()) }
func (n *optionalNode) specType() string      { return n.child.specType() }
func (n *optionalNode) isOptional() bool      { return true }
func (n *optionalNode) canDecode(t tag) bool  { return n.child.canDecode(t) }
func (n *optionalNode) isConstructed() bool   { return n.child.isConstructed() }
func (n *optionalNode) ownsPointerTarget() bool { return n.child.ownsPointerTarget() }

func (n *optionalNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: Optional has no decodeBody; decodeExplicit/decodeImplicit delegate directly to its child")
}

func (n *optionalNode) target(target reflect.Value) reflect.Value {
	if n.child.ownsPointerTarget() {
		return target
	}
	return indirectAlloc(target)
}

func (n *optionalNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return n.child.decodeExplicit(cur, ctx, n.target(target), opts)
}

func (n *optionalNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return n.child.decodeImplicit(cur, length, ctx, n.target(target), opts)
}

type optionalDefaultNode struct {
	base
	child   Schema
	defVal  any
}

// OptionalDefault makes child's absence tolerable, filling the field's
// ordinary value with def when the enclosing SEQUENCE/SET decides the
// child is absent. Unlike Optional, the target field holds the child's
// value directly, never a pointer.
func OptionalDefault(child Schema, def any, opts ...Option) Schema {
	return &optionalDefaultNode{base: base{nodeOptions: applyOptions(opts)}, child: child, defVal: def}
}

func (n *optionalDefaultNode) specName() string        { return n.displayName(n.child.specName()) }
func (n *optionalDefaultNode) specType() string        { return n.child.specType() }
func (n *optionalDefaultNode) isOptional() bool        { return true }
func (n *optionalDefaultNode) hasDefault() bool        { return true }
func (n *optionalDefaultNode) canDecode(t tag) bool    { return n.child.canDecode(t) }
func (n *optionalDefaultNode) isConstructed() bool     { return n.child.isConstructed() }
func (n *optionalDefaultNode) ownsPointerTarget() bool { return n.child.ownsPointerTarget() }

func (n *optionalDefaultNode) applyDefault(target reflect.Value) {
	target.Set(reflect.ValueOf(n.defVal))
}

func (n *optionalDefaultNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: OptionalDefault has no decodeBody; decodeExplicit/decodeImplicit delegate directly to its child")
}

func (n *optionalDefaultNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return n.child.decodeExplicit(cur, ctx, target, opts)
}

func (n *optionalDefaultNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return n.child.decodeImplicit(cur, length, ctx, target, opts)
}
