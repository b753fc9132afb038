// Package wire implements the low-level CBOR varint header codec and
// primitive append/read operations used by the ccbor value model. It
// knows nothing about Go structs or reflection; it only knows how to
// turn numbers, byte strings, text strings, floats, and tags into
// canonical CBOR bytes and back.
package wire

// RecursionLimit bounds recursive descent through nested
// arrays/maps/tags during decode and diagnostic rendering. It only
// matters for adversarial input; well-formed documents never come
// close to it.
const RecursionLimit = 10000

// CBOR major types (3 bits, RFC 8949 §3).
const (
	MajorUint    = 0 // unsigned integer
	MajorNegInt  = 1 // negative integer
	MajorBytes   = 2 // byte string
	MajorText    = 3 // text string (UTF-8)
	MajorArray   = 4 // array
	MajorMap     = 5 // map
	MajorTag     = 6 // semantic tag
	MajorSimple  = 7 // simple value / float
)

// Additional-info values (5 bits).
const (
	addInfoDirect     = 23 // maximum value encoded directly in the header byte
	addInfoUint8      = 24
	addInfoUint16     = 25
	addInfoUint32     = 26
	addInfoUint64     = 27
	addInfoIndefinite = 31 // reserved: never valid in this deterministic profile
)

// Simple values under major type 7.
const (
	SimpleFalse   = 20
	SimpleTrue    = 21
	SimpleNull    = 22
	simpleFloat16 = 25
	simpleFloat32 = 26
	simpleFloat64 = 27
)

// Well-known CBOR tags this package gives meaning to or names for
// diagnostic/dump output. The value model treats every other tag
// number as an opaque uint64.
const (
	TagDateTimeString = 0
	TagEpochDateTime  = 1
	TagPosBignum      = 2
	TagNegBignum      = 3
	TagDecimalFrac    = 4
	TagBigfloat       = 5
	TagBase64URL      = 21
	TagBase64         = 22
	TagBase16         = 23
	TagEmbeddedCBOR   = 24
	TagURI            = 32
	TagBase64URLStr   = 33
	TagBase64Str      = 34
	TagRegexp         = 35
	TagMIME           = 36
	TagSelfDescribe   = 55799
)

// KnownTagNames is the default known-tag table for the dump renderer
// (spec component H). Callers may supply their own.
var KnownTagNames = map[uint64]string{
	TagDateTimeString: "datetime",
	TagEpochDateTime:  "epoch",
	TagPosBignum:      "bignum",
	TagNegBignum:      "bignum",
	TagDecimalFrac:    "decimal-fraction",
	TagBigfloat:       "bigfloat",
	TagBase64URL:      "expected-base64url",
	TagBase64:         "expected-base64",
	TagBase16:         "expected-base16",
	TagEmbeddedCBOR:   "embedded-cbor",
	TagURI:            "uri",
	TagBase64URLStr:   "base64url",
	TagBase64Str:      "base64",
	TagRegexp:         "regexp",
	TagMIME:           "mime",
	TagSelfDescribe:   "self-describe-cbor",
}

// makeByte packs a major type and additional-info value into a header byte.
func makeByte(major, addInfo uint8) byte { return byte((major << 5) | addInfo) }

// majorOf extracts the major type from a header byte.
func majorOf(b byte) uint8 { return (b >> 5) & 0x07 }

// addInfoOf extracts the additional-info value from a header byte.
func addInfoOf(b byte) uint8 { return b & 0x1f }
