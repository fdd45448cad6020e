package schema

/*
recursive.go implements RECURSIVE: a forward reference that lets a
schema refer to itself. Go cannot build a literal cyclic value graph,
so the reference is a thunk supplied by the caller — typically a
closure over a package-level or enclosing-scope variable that has
already been assigned the cyclic schema by the time any decode call
runs:

	var node Schema
	node = Sequence([]Schema{
		OctetString(),
		Optional(Recursive(func() Schema { return node })),
	})

Grounded on the spec's recursion-depth counter living on the cursor
(cursor.go's enterRecursion), which this node is the sole caller of.
*/

import "reflect"

type recursiveNode struct {
	base
	resolve func() Schema
}

// Recursive returns a schema node that, at decode time, delegates to
// whatever resolve returns. Its target is always a pointer to the
// resolved schema's ordinary target type; RECURSIVE allocates it
// itself rather than relying on an enclosing Optional.
func Recursive(resolve func() Schema, opts ...Option) Schema {
	return &recursiveNode{base: base{nodeOptions: applyOptions(opts)}, resolve: resolve}
}

func (n *recursiveNode) specName() string        { return n.displayName("RECURSIVE") }
func (n *recursiveNode) specType() string        { return "RECURSIVE" }
func (n *recursiveNode) canDecode(t tag) bool    { return n.resolve().canDecode(t) }
func (n *recursiveNode) isConstructed() bool     { return n.resolve().isConstructed() }
func (n *recursiveNode) ownsPointerTarget() bool { return true }

func (n *recursiveNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: RECURSIVE has no decodeBody; decodeExplicit/decodeImplicit delegate directly to the resolved schema")
}

func (n *recursiveNode) enter(cur *cursor, ctx *errCtx) (func(), error) {
	restore, err := cur.enterRecursion()
	if err != nil {
		return restore, ctx.fail(RecursionDepthExceeded, err, "recursion depth exceeded at %s", n.specName())
	}
	pop := ctx.push(n.specName(), n.specType())
	return func() { pop(); restore() }, nil
}

func (n *recursiveNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	done, err := n.enter(cur, ctx)
	if err != nil {
		return err
	}
	defer done()
	inner := indirectAlloc(target)
	return n.resolve().decodeExplicit(cur, ctx, inner, opts)
}

func (n *recursiveNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	done, err := n.enter(cur, ctx)
	if err != nil {
		return err
	}
	defer done()
	inner := indirectAlloc(target)
	return n.resolve().decodeImplicit(cur, length, ctx, inner, opts)
}
