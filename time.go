package schema

/*
time.go implements UTCTime and GeneralizedTime. Both are fixed-format
ASCII encodings validated field-by-field rather than parsed through
time.Parse, because DER's calendar rules (mandatory trailing Z, no
timezone offsets, GeneralizedTime's no-trailing-zero fraction rule)
don't line up with any stdlib layout string. Grounded on the teacher
corpus's UTCTime reader in prim.go; the zero_year pivot and the
GeneralizedTime fractional-seconds handling are new, modeled on the
same octet-by-octet validation style.
*/

import "reflect"

// UTCTime is the decoded target shape for an ASN.1 UTCTime. Year is
// the raw two-digit value as encoded; callers that supplied ZeroYear
// get leap-year validation against the pivoted century but still see
// the original two-digit year here.
type UTCTime struct {
	Year, Month, Day, Hour, Minute, Second int
}

// GeneralizedTime is the decoded target shape for an ASN.1
// GeneralizedTime. Fraction holds the digits after the decimal point
// verbatim (without the '.'), or the empty string if none were present.
type GeneralizedTime struct {
	Year, Month, Day, Hour, Minute, Second int
	Fraction                               string
}

var utcTimeType = reflect.TypeOf(UTCTime{})
var generalizedTimeType = reflect.TypeOf(GeneralizedTime{})

type utcTimeNode struct {
	base
}

// UTCTimeSchema decodes an ASN.1 UTCTime. With ZeroYear(y) set, the
// two-digit year is pivoted to y+yy (yy<=50) or y+yy-100 (yy>50) solely
// to validate February 29; without it, day 29 of February is accepted
// for any two-digit year.
func UTCTimeSchema(opts ...Option) Schema {
	return &utcTimeNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *utcTimeNode) specName() string { return n.displayName("UTCTime") }
func (n *utcTimeNode) specType() string { return "UTCTime" }
func (n *utcTimeNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagUTCTime, Constructed: false}
}
func (n *utcTimeNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *utcTimeNode) isConstructed() bool  { return false }

func (n *utcTimeNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if length != 13 {
		return ctx.fail(InvalidDateTime, nil, "UTCTime content must be exactly 13 octets, got %d", length)
	}
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading UTCTime content")
	}
	if content[12] != 'Z' {
		return ctx.fail(InvalidDateTime, nil, "UTCTime must end in 'Z'")
	}
	digits := content[:12]
	if !allDigits(digits) {
		return ctx.fail(InvalidDateTime, nil, "UTCTime must be 12 decimal digits followed by 'Z'")
	}
	yy := twoDigit(digits, 0)
	month := twoDigit(digits, 2)
	day := twoDigit(digits, 4)
	hour := twoDigit(digits, 6)
	minute := twoDigit(digits, 8)
	second := twoDigit(digits, 10)

	fullYear := yy
	if n.hasZeroYear {
		if yy <= 50 {
			fullYear = n.zeroYear + yy
		} else {
			fullYear = n.zeroYear + yy - 100
		}
	}
	if err := validateCalendar(fullYear, month, day, hour, minute, second, n.hasZeroYear); err != nil {
		return ctx.fail(InvalidDateTime, err, "UTCTime has invalid calendar fields")
	}

	if target.Type() != utcTimeType {
		panic(sprintf("schema: UTCTime cannot bind to target type %s", target.Type()))
	}
	target.Set(reflect.ValueOf(UTCTime{Year: yy, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}))
	return nil
}

func (n *utcTimeNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *utcTimeNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}

type generalizedTimeNode struct {
	base
}

// GeneralizedTimeSchema decodes an ASN.1 GeneralizedTime.
func GeneralizedTimeSchema(opts ...Option) Schema {
	return &generalizedTimeNode{base: base{nodeOptions: applyOptions(opts)}}
}

func (n *generalizedTimeNode) specName() string { return n.displayName("GeneralizedTime") }
func (n *generalizedTimeNode) specType() string { return "GeneralizedTime" }
func (n *generalizedTimeNode) ownTag() tag {
	return tag{Class: ClassUniversal, Number: tagGeneralizedTime, Constructed: false}
}
func (n *generalizedTimeNode) canDecode(t tag) bool { return canDecodeOwnTag(n)(t) }
func (n *generalizedTimeNode) isConstructed() bool  { return false }

func (n *generalizedTimeNode) decodeBody(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	if length < 15 || length > 35 {
		return ctx.fail(InvalidDateTime, nil, "GeneralizedTime content length %d is out of range [15,35]", length)
	}
	content, err := cur.take(length)
	if err != nil {
		return ctx.fail(Truncated, err, "reading GeneralizedTime content")
	}
	if content[len(content)-1] != 'Z' {
		return ctx.fail(InvalidDateTime, nil, "GeneralizedTime must end in 'Z'")
	}
	body := content[:len(content)-1]
	if len(body) < 14 || !allDigits(body[:14]) {
		return ctx.fail(InvalidDateTime, nil, "GeneralizedTime must start with 14 decimal digits")
	}
	year := fourDigit(body, 0)
	month := twoDigit(body, 4)
	day := twoDigit(body, 6)
	hour := twoDigit(body, 8)
	minute := twoDigit(body, 10)
	second := twoDigit(body, 12)

	fraction := ""
	rest := body[14:]
	if len(rest) > 0 {
		if rest[0] != '.' {
			return ctx.fail(InvalidDateTime, nil, "GeneralizedTime fractional part must start with '.'")
		}
		digits := rest[1:]
		if len(digits) == 0 || !allDigits(digits) {
			return ctx.fail(InvalidDateTime, nil, "GeneralizedTime fraction must have at least one digit")
		}
		if digits[len(digits)-1] == '0' {
			return ctx.fail(InvalidDateTime, nil, "GeneralizedTime fraction must not end in a trailing zero")
		}
		fraction = string(digits)
	}

	if err := validateCalendar(year, month, day, hour, minute, second, true); err != nil {
		return ctx.fail(InvalidDateTime, err, "GeneralizedTime has invalid calendar fields")
	}

	if target.Type() != generalizedTimeType {
		panic(sprintf("schema: GeneralizedTime cannot bind to target type %s", target.Type()))
	}
	target.Set(reflect.ValueOf(GeneralizedTime{
		Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second, Fraction: fraction,
	}))
	return nil
}

func (n *generalizedTimeNode) decodeExplicit(cur *cursor, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardExplicit(n, n.ownTag(), cur, ctx, target, opts, n.nodeOptions)
}

func (n *generalizedTimeNode) decodeImplicit(cur *cursor, length int, ctx *errCtx, target reflect.Value, opts *decodeOptions) error {
	return standardImplicit(n, cur, length, ctx, target, opts, n.nodeOptions)
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func twoDigit(b []byte, offset int) int { return int(b[offset]-'0')*10 + int(b[offset+1]-'0') }

func fourDigit(b []byte, offset int) int {
	return twoDigit(b, offset)*100 + twoDigit(b, offset+2)
}

func validateCalendar(year, month, day, hour, minute, second int, knowsFullYear bool) error {
	if month < 1 || month > 12 {
		return errInvalidCalendar
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return errInvalidCalendar
	}
	maxDay := daysInMonth(year, month, knowsFullYear)
	if day < 1 || day > maxDay {
		return errInvalidCalendar
	}
	return nil
}

var daysInMonthTable = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the number of days in the given month. When the
// full year isn't known (plain UTCTime without ZeroYear), February 29
// is always accepted, matching the spec's unconditional-acceptance rule.
func daysInMonth(year, month int, knowsFullYear bool) int {
	if month != 2 || !knowsFullYear {
		return daysInMonthTable[month-1]
	}
	if isLeapYear(year) {
		return 29
	}
	return 28
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
