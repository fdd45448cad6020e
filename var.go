package schema

/*
var.go contains the ASN.1 tag and class constants recognized by this
package, plus the lookup tables used for diagnostics.
*/

//go:generate stringer -type=TagClass -trimprefix=Class -output=tagclass_string.go

// TagClass identifies one of the four ASN.1 tag classes packed into the
// top two bits of a DER tag octet.
type TagClass int

const (
	ClassUniversal TagClass = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Universal tag numbers supported by this package. Real (9), External/
// EmbeddedPDV (8, 11) and CharacterString (29) are deliberately absent;
// decoding those types is a non-goal.
const (
	tagBoolean          = 0x01
	tagInteger          = 0x02
	tagBitString        = 0x03
	tagOctetString      = 0x04
	tagNull             = 0x05
	tagOID              = 0x06
	tagObjectDescriptor = 0x07
	tagEnumerated       = 0x0A
	tagUTF8String       = 0x0C
	tagRelativeOID      = 0x0D
	tagSequence         = 0x10
	tagSet              = 0x11
	tagNumericString    = 0x12
	tagPrintableString  = 0x13
	tagTeletexString    = 0x14
	tagVideotexString   = 0x15
	tagIA5String        = 0x16
	tagUTCTime          = 0x17
	tagGeneralizedTime  = 0x18
	tagGraphicString    = 0x19
	tagVisibleString    = 0x1A
	tagGeneralString    = 0x1B
	tagUniversalString  = 0x1C
	tagBMPString        = 0x1E
)

// tagNames backs diagnostic rendering of a bare universal tag number,
// mirroring the teacher corpus's TagNames convenience map.
var tagNames = map[int]string{
	tagBoolean:          "BOOLEAN",
	tagInteger:          "INTEGER",
	tagBitString:        "BIT STRING",
	tagOctetString:      "OCTET STRING",
	tagNull:             "NULL",
	tagOID:              "OBJECT IDENTIFIER",
	tagObjectDescriptor: "OBJECT DESCRIPTOR",
	tagEnumerated:       "ENUMERATED",
	tagUTF8String:       "UTF8String",
	tagRelativeOID:      "RELATIVE-OID",
	tagSequence:         "SEQUENCE",
	tagSet:              "SET",
	tagNumericString:    "NumericString",
	tagPrintableString:  "PrintableString",
	tagTeletexString:    "TeletexString",
	tagVideotexString:   "VideotexString",
	tagIA5String:        "IA5String",
	tagUTCTime:          "UTCTime",
	tagGeneralizedTime:  "GeneralizedTime",
	tagGraphicString:    "GraphicString",
	tagVisibleString:    "VisibleString",
	tagGeneralString:    "GeneralString",
	tagUniversalString:  "UniversalString",
	tagBMPString:        "BMPString",
}
