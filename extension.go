package schema

/*
extension.go implements the extension-marker placeholder: a slot, last
among a SEQUENCE/SET's declared children, that absorbs any TLVs left
in the enclosing length without type-checking them. SEQUENCE and SET
handle it by direct isExtensionMarker() inspection rather than through
the ordinary decode dispatch, so the entry points below exist only to
satisfy the Schema interface and should never actually run.
*/

import "reflect"

type extensionNode struct {
	base
}

// ExtensionMarker marks the end of a SEQUENCE/SET's known children,
// consuming any remaining TLVs in its enclosing length. Like every other
// child it occupies one field position in the target struct; that field
// is never written.
func ExtensionMarker(opts ...Option) Schema {
	return &extensionNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *extensionNode) specName() string        { return n.displayName("...") }
func (n *extensionNode) specType() string        { return "EXTENSION-MARKER" }
func (n *extensionNode) isExtensionMarker() bool { return true }
func (n *extensionNode) isConstructed() bool     { return false }
func (n *extensionNode) canDecode(tag) bool      { return false }

func (n *extensionNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: extension marker is consumed directly by its enclosing SEQUENCE/SET, not decoded")
}

func (n *extensionNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: extension marker is consumed directly by its enclosing SEQUENCE/SET, not decoded")
}

func (n *extensionNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: extension marker is consumed directly by its enclosing SEQUENCE/SET, not decoded")
}
