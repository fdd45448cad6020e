package schema

/*
span.go implements the three offset-decorated wrapper target shapes:
with-iterators (byte offsets), with-pointers (raw pointers into the
input buffer) and with-raw-data (a copied snapshot). All three are
transparent to schema matching — they only bracket the inner decode
call with cursor-position snapshots, mirroring the teacher corpus's
pattern of recording a packet's start/end offsets around a read in
pkt.go, generalized here into a reusable generic wrapper instead of a
one-off field pair.
*/

import (
	"reflect"
	"unsafe"
)

// spanner is implemented by pointer receivers of the three wrapper
// types below; bind.go type-asserts against it to find and bracket
// wrapped fields without knowing their type parameter.
type spanner interface {
	spanInnerAddr() reflect.Value
	setSpan(begin, end int, data []byte)
}

// Spanned records the byte offsets, within the input a decode call was
// given, of the TLV that produced Value.
type Spanned[T any] struct {
	Begin, End int
	Value      T
}

func (s *Spanned[T]) spanInnerAddr() reflect.Value      { return reflect.ValueOf(&s.Value).Elem() }
func (s *Spanned[T]) setSpan(begin, end int, data []byte) { s.Begin, s.End = begin, end }

// PointerSpanned records the same range as Spanned but as raw pointers
// into the input buffer rather than offsets. The pointers alias the
// slice passed to the decode call and must not outlive it.
type PointerSpanned[T any] struct {
	BeginPtr, EndPtr unsafe.Pointer
	Value            T
}

func (s *PointerSpanned[T]) spanInnerAddr() reflect.Value { return reflect.ValueOf(&s.Value).Elem() }

func (s *PointerSpanned[T]) setSpan(begin, end int, data []byte) {
	if len(data) == 0 {
		s.BeginPtr, s.EndPtr = nil, nil
		return
	}
	base := unsafe.Pointer(unsafe.SliceData(data))
	s.BeginPtr = unsafe.Add(base, begin)
	s.EndPtr = unsafe.Add(base, end)
}

// RawSpanned records a copy of the exact TLV bytes that produced Value,
// rather than an offset or pointer range.
type RawSpanned[T any] struct {
	Raw   []byte
	Value T
}

func (s *RawSpanned[T]) spanInnerAddr() reflect.Value { return reflect.ValueOf(&s.Value).Elem() }

func (s *RawSpanned[T]) setSpan(begin, end int, data []byte) {
	cp := make([]byte, end-begin)
	copy(cp, data[begin:end])
	s.Raw = cp
}
