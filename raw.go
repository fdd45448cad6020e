package schema

/*
raw.go defines the raw-byte carrier target shapes shared by INTEGER,
OCTET STRING, OBJECT IDENTIFIER, ANY and the character-string family: a plain []byte target receives an owned copy, while a View
target aliases the input buffer directly. Grounded on the teacher
corpus's distinction between a borrowed packet slice and a copied
return buffer in pkt.go.
*/

import "reflect"

// View is a zero-copy window into the bytes a decode call was given.
// It must not be retained past the lifetime of the slice passed to the
// decode call, since it aliases that memory rather than copying it.
type View []byte

var viewType = reflect.TypeOf(View(nil))
var byteSliceType = reflect.TypeOf([]byte(nil))

// bindRawBytes writes data into target, which must be either []byte
// (owned copy) or View (zero-copy alias), per the raw-byte carrier
// target category. An unsupported target type is a schema/target
// mismatch the caller is responsible for avoiding, not a data error.
func bindRawBytes(target reflect.Value, data []byte) {
	switch target.Type() {
	case viewType:
		target.Set(reflect.ValueOf(View(data)))
	case byteSliceType:
		cp := make([]byte, len(data))
		copy(cp, data)
		target.Set(reflect.ValueOf(cp))
	default:
		panic(sprintf("schema: cannot bind raw bytes into unsupported target type %s", target.Type()))
	}
}

func isRawByteCarrier(t reflect.Type) bool {
	return t == viewType || t == byteSliceType
}
