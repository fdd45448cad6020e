package schema

/*
facade.go is the package's public entry point: decode_into / decode_to
from the data-flow summary, each constructing a cursor over the input
and dispatching straight into the root schema's explicit decoder.
Grounded on the teacher corpus's top-level Decode/Unmarshal wrapper
that also just builds a reader and dispatches once.
*/

import "reflect"

// DecodeOptions bundles the facade-level knobs: the error-context
// policy, an optional recursion-depth ceiling, and whether an invalid
// BIT STRING unused-bits count should be tolerated rather than
// rejected.
type DecodeOptions struct {
	ContextPolicy                     ContextPolicy
	MaxDepth                          int
	IgnoreBitStringInvalidUnusedCount bool
}

// DefaultDecodeOptions returns the zero-value-safe defaults: full
// error context, no recursion-depth ceiling, strict BIT STRING
// unused-bits checking.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{ContextPolicy: ContextFull}
}

func (o DecodeOptions) internal() *decodeOptions {
	return &decodeOptions{ignoreBitStringInvalidUnusedCount: o.IgnoreBitStringInvalidUnusedCount}
}

// DecodeInto decodes exactly one top-level TLV matching s out of data
// into target, which must be a non-nil pointer to a value of the shape
// s expects. It fails with TrailingBytes if data has bytes left over
// after that one TLV. It returns the number of bytes consumed.
func DecodeInto(s Schema, data []byte, target any, opts ...DecodeOptions) (int, error) {
	o := resolveOptions(opts)
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("schema: DecodeInto target must be a non-nil pointer")
	}

	cur := newCursor(data, o.MaxDepth)
	ctx := newErrCtx(o.ContextPolicy)
	if err := s.decodeExplicit(cur, ctx, v.Elem(), o.internal()); err != nil {
		return 0, err
	}
	if !cur.atEnd() {
		return cur.pos, ctx.fail(TrailingBytes, nil, "%d trailing bytes after the decoded top-level TLV", cur.remaining())
	}
	return cur.pos, nil
}

// DecodeTo decodes exactly one top-level TLV matching s out of data
// into a freshly allocated T, returning it by value.
func DecodeTo[T any](s Schema, data []byte, opts ...DecodeOptions) (T, error) {
	var result T
	_, err := DecodeInto(s, data, &result, opts...)
	return result, err
}

func resolveOptions(opts []DecodeOptions) DecodeOptions {
	if len(opts) == 0 {
		return DefaultDecodeOptions()
	}
	return opts[0]
}
