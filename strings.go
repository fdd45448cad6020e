package schema

/*
strings.go implements the ASN.1 character-string family. All of them
share one decode body parameterized by the tag number, the declared
name, and the width in bytes of one source code unit: 1 for the
narrow strings and UTF8String, 2 for BMPString (UCS-2/UTF-16BE), 4 for
UniversalString (UCS-4/UTF-32BE). A raw-byte-carrier target receives
the untouched content; a Go string target receives the content
re-encoded as UTF-8, using unicode/utf16 for the BMPString
case the way the teacher corpus's string reader in prim.go already
does for its own 16-bit string type. Grounded on the teacher corpus's
single generic "string" reader, split here per code-unit width because
the teacher only ever handled one width.
*/

import (
	"reflect"
	"unicode/utf16"
	"unicode/utf8"
)

var goStringType = reflect.TypeOf("")

type stringNode struct {
	base
	number      int
	specTypeStr string
	codeUnit    int // bytes per source code unit: 1, 2 or 4
}

func newStringNode(number int, name string, codeUnit int, opts []Option) Schema {
	return &stringNode{base: base{nodeOptions: applyOptions(opts)}, number: number, specTypeStr: name, codeUnit: codeUnit}
}

func NumericString(opts ...Option) Schema    { return newStringNode(tagNumericString, "NumericString", 1, opts) }
func PrintableString(opts ...Option) Schema  { return newStringNode(tagPrintableString, "PrintableString", 1, opts) }
func TeletexString(opts ...Option) Schema    { return newStringNode(tagTeletexString, "TeletexString", 1, opts) }
func VideotexString(opts ...Option) Schema   { return newStringNode(tagVideotexString, "VideotexString", 1, opts) }
func IA5String(opts ...Option) Schema        { return newStringNode(tagIA5String, "IA5String", 1, opts) }
func GraphicString(opts ...Option) Schema    { return newStringNode(tagGraphicString, "GraphicString", 1, opts) }
func VisibleString(opts ...Option) Schema    { return newStringNode(tagVisibleString, "VisibleString", 1, opts) }
func GeneralString(opts ...Option) Schema    { return newStringNode(tagGeneralString, "GeneralString", 1, opts) }
func ObjectDescriptor(opts ...Option) Schema { return newStringNode(tagObjectDescriptor, "ObjectDescriptor", 1, opts) }
func UTF8String(opts ...Option) Schema       { return newStringNode(tagUTF8String, "UTF8String", 1, opts) }
func BMPString(opts ...Option) Schema        { return newStringNode(tagBMPString, "BMPString", 2, opts) }
func UniversalString(opts ...Option) Schema  { return newStringNode(tagUniversalString, "UniversalString", 4, opts) }

func (n *stringNode) specName() string { return n.displayName(n.specTypeStr) }
func (n *stringNode) specType() string { return n.specTypeStr }
func (n *stringNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: n.number, Constructed: false}
}
func (n *stringNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *stringNode) isConstructed() bool  { return false }

func (n *stringNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if n.codeUnit > 1 && length%n.codeUnit != 0 {
		return ctx.fail(InvalidString, nil, "%s length %d is not a multiple of its %d-byte code unit", n.specTypeStr, length, n.codeUnit)
	}
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading %s content", n.specTypeStr)
	}

	if isRawByteCarrier(target.Type()) {
		bindRawBytes(target, content)
		return nil
	}
	if target.Type() != goStringType {
		panic(sprintf("schema: %s cannot bind to target type %s", n.specTypeStr, target.Type()))
	}

	switch n.codeUnit {
	case 1:
		target.SetString(string(content))
		return nil
	case 2:
		s, err := decodeUTF16BE(content)
		if err != nil {
			return ctx.fail(InvalidString, err, "%s is not valid UTF-16BE", n.specTypeStr)
		}
		target.SetString(s)
		return nil
	case 4:
		s, err := decodeUTF32BE(content)
		if err != nil {
			return ctx.fail(InvalidString, err, "%s is not valid UTF-32BE", n.specTypeStr)
		}
		target.SetString(s)
		return nil
	}
	panic("schema: unreachable code-unit width")
}

func decodeUTF16BE(content []byte) (string, error) {
	units := make([]uint16, len(content)/2)
	for i := range units {
		units[i] = uint16(content[2*i])<<8 | uint16(content[2*i+1])
	}
	return string(utf16.Decode(units)), nil
}

func decodeUTF32BE(content []byte) (string, error) {
	var b []byte
	buf := make([]byte, utf8.UTFMax)
	for i := 0; i < len(content); i += 4 {
		r := rune(content[i])<<24 | rune(content[i+1])<<16 | rune(content[i+2])<<8 | rune(content[i+3])
		if r < 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
			return "", errInvalidString
		}
		n := utf8.EncodeRune(buf, r)
		b = append(b, buf[:n]...)
	}
	return string(b), nil
}

func (n *stringNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *stringNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}
