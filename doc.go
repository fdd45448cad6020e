/*
Package schema implements a declarative, schema-driven decoder for
ASN.1 values encoded under the Distinguished Encoding Rules (DER) of
ITU-T X.690.

A caller builds a compile-time [Schema] describing the shape of an
ASN.1 type, then calls [DecodeInto] or [DecodeTo] against a byte slice
and a Go value (the "target") that the schema knows how to populate.
The package implements decoding only; BER/CER relaxations and the
opposite (encoding) direction are out of scope, as is any catalog of
concrete ASN.1 modules (X.509, PKCS#7, and similar) — those are built
on top of this package, not inside it.
*/
package schema
