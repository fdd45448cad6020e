package schema

/*
opts.go implements the schema node option bag described by the spec:
a diagnostic name, the UTCTime zero_year pivot, a post-decode
validator, and sequence-of/set-of cardinality bounds. The teacher
corpus delivers these through struct-tag strings parsed by reflection
(opts.go); this package's schema is a constant value tree built by
explicit constructor calls rather than tags on the target type, so the
same concerns are delivered as functional options passed to each
schema constructor instead.
*/

// nodeOptions holds the option bag recognized by every schema node.
type nodeOptions struct {
	name        string
	validators  ConstraintGroup[any]
	zeroYear    int
	hasZeroYear bool
	minElements int
	hasMin      bool
	maxElements int
	hasMax      bool
}

// Option configures a schema node at construction time.
type Option func(*nodeOptions)

func applyOptions(opts []Option) nodeOptions {
	var o nodeOptions
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Name attaches a diagnostic label to a schema node; it appears in the
// error context path in place of the node's bare ASN.1 type name.
func Name(n string) Option {
	return func(o *nodeOptions) { o.name = n }
}

// Validator runs fn against the fully-decoded value of the node it is
// attached to, after decoding succeeds but before the value becomes
// visible to the enclosing decoder. A non-nil return is wrapped beneath
// ValidationFailed.
func Validator[T any](fn func(T) error) Option {
	return func(o *nodeOptions) {
		o.validators = append(o.validators, func(v any) error {
			tv, ok := v.(T)
			if !ok {
				panic(sprintf("schema: Validator attached to a node whose decoded type is %T, not %T", v, tv))
			}
			return fn(tv)
		})
	}
}

// ZeroYear sets the UTCTime epoch pivot: two-digit years <= 50 resolve
// to Y+yy, years > 50 resolve to Y+yy-100. Without this option,
// UTCTime accepts February 29 in any two-digit year unconditionally.
func ZeroYear(y int) Option {
	return func(o *nodeOptions) { o.zeroYear = y; o.hasZeroYear = true }
}

// MinElements bounds a SEQUENCE OF / SET OF from below.
func MinElements(n int) Option {
	return func(o *nodeOptions) { o.minElements = n; o.hasMin = true }
}

// MaxElements bounds a SEQUENCE OF / SET OF from above.
func MaxElements(n int) Option {
	return func(o *nodeOptions) { o.maxElements = n; o.hasMax = true }
}

func (o nodeOptions) displayName(fallback string) string {
	if o.name != "" {
		return o.name
	}
	return fallback
}

func (o nodeOptions) runValidator(ctx *errCtx, specType string, v any) error {
	if err := o.validators.Constrain(v); err != nil {
		return ctx.fail(ValidationFailed, err, "validator rejected decoded %s value", specType)
	}
	return nil
}
