package schema

/*
choice.go implements CHOICE. Go has no native tagged-union type, so a
CHOICE decodes into a Choice value: the index of the matched
alternative and its decoded value boxed as any. Each alternative pairs
a child schema with a factory that produces a fresh, addressable Go
value of that alternative's own target type, since the CHOICE node
itself has no static knowledge of what shape each branch decodes into.
Grounded on the teacher corpus's dispatch-table pattern used for its
own tag-keyed decoder lookup, generalized from a closed enum of wire
types into an open, caller-declared alternative list.
*/

import "reflect"

// Choice is the decoded target shape for an ASN.1 CHOICE: which
// alternative (by declaration order) matched, and its decoded value.
type Choice struct {
	Index int
	Value any
}

var choiceType = reflect.TypeOf(Choice{})

// ChoiceAlternative pairs one CHOICE branch's schema with a factory
// that allocates a fresh pointer to that branch's target type.
type ChoiceAlternative struct {
	Schema Schema
	New    func() any
}

// Alt constructs a ChoiceAlternative.
func Alt(s Schema, newTarget func() any) ChoiceAlternative {
	return ChoiceAlternative{Schema: s, New: newTarget}
}

type choiceNode struct {
	base
	alts []ChoiceAlternative
}

// ChoiceSchema decodes an ASN.1 CHOICE over the given alternatives. The
// alternatives' effective tags must be pairwise disjoint; a collision
// between two alternatives that each expose a single fixed tag panics
// at construction time.
func ChoiceSchema(alts []ChoiceAlternative, opts ...Option) Schema {
	for i := 0; i < len(alts); i++ {
		ti, iok := ownTagOf(alts[i].Schema)
		for j := i + 1; j < len(alts); j++ {
			tj, jok := ownTagOf(alts[j].Schema)
			if iok && jok && ti.equal(tj) {
				panic(sprintf("schema: CHOICE alternatives %d and %d share tag %s", i, j, ti))
			}
		}
	}
	return &choiceNode{base: base{nodeOptions: applyOptions(opts)}, alts: alts}
}

func ownTagOf(s Schema) (tag, bool) {
	t, ok := s.(ownTagger)
	if !ok {
		return tag{}, false
	}
	return t.ownTag(), true
}

func (n *choiceNode) specName() string     { return n.displayName("CHOICE") }
func (n *choiceNode) specType() string     { return "CHOICE" }
func (n *choiceNode) isChoice() bool       { return true }
func (n *choiceNode) isConstructed() bool  { return false }
func (n *choiceNode) canDecode(t tag) bool {
	for _, a := range n.alts {
		if a.Schema.canDecode(t) {
			return true
		}
	}
	return false
}

func (n *choiceNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: CHOICE has no single decodeBody; decodeExplicit dispatches directly")
}

func (n *choiceNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	panic("schema: CHOICE cannot be decoded implicitly")
}

func (n *choiceNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	pop := ctx.push(n.specName(), n.specType())
	defer pop()

	if target.Type() != choiceType {
		panic(sprintf("schema: CHOICE cannot bind to target type %s", target.Type()))
	}

	t, err := readTag(cur)
	if err != nil {
		return ctx.fail(Truncated, err, "reading CHOICE tag")
	}
	length, err := readLength(cur)
	if err != nil {
		return wrapLengthErr(ctx, err, n.specType())
	}

	idx := -1
	for i, a := range n.alts {
		if a.Schema.canDecode(t) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ctx.fail(NoMatchingAlternative, nil, "no CHOICE alternative matches tag %s", t)
	}

	ptr := n.alts[idx].New()
	elem := reflect.ValueOf(ptr).Elem()
	if err := n.alts[idx].Schema.decodeImplicit(cur, length, ctx, elem, opts); err != nil {
		return err
	}
	result := Choice{Index: idx, Value: elem.Interface()}
	target.Set(reflect.ValueOf(result))
	return finishValidator(ctx, n.nodeOptions, n.specType(), target, nil)
}
