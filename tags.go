package ccbor

import (
	"math/big"

	"github.com/detcbor/ccbor/internal/wire"
)

var bigOne = big.NewInt(1)

// Well-known tag numbers re-exported for callers building tagged
// values (spec 4.E, 4.C bignum accessors). Any other uint64 is a
// legal, opaque tag number.
const (
	TagDateTimeString = wire.TagDateTimeString
	TagEpochDateTime  = wire.TagEpochDateTime
	TagPosBignum      = wire.TagPosBignum
	TagNegBignum      = wire.TagNegBignum
	TagDecimalFrac    = wire.TagDecimalFrac
	TagBigfloat       = wire.TagBigfloat
	TagBase64URL      = wire.TagBase64URL
	TagBase64         = wire.TagBase64
	TagBase16         = wire.TagBase16
	TagEmbeddedCBOR   = wire.TagEmbeddedCBOR
	TagURI            = wire.TagURI
	TagBase64URLStr   = wire.TagBase64URLStr
	TagBase64Str      = wire.TagBase64Str
	TagRegexp         = wire.TagRegexp
	TagMIME           = wire.TagMIME
	TagSelfDescribe   = wire.TagSelfDescribe
)

const (
	tagPosBignum = wire.TagPosBignum
	tagNegBignum = wire.TagNegBignum
)

// BigInt constructs the canonical value for an arbitrary-precision
// integer (spec 4.C): a value that fits the native major-type 0/1
// integer range encodes as Unsigned/Negative directly, exactly like
// the plain integer form those majors already produce; only a value
// outside that range falls back to the tagged bignum form (tag 2 for
// non-negative, tag 3 for negative) wrapping the minimal big-endian
// magnitude.
func BigInt(z *big.Int) Value {
	if z.Sign() >= 0 {
		if z.IsUint64() {
			return Unsigned(z.Uint64())
		}
		return Tagged(TagPosBignum, Bytes(z.Bytes()))
	}
	n := new(big.Int).Neg(z)
	n.Sub(n, bigOne)
	if n.IsUint64() {
		return Negative(n.Uint64())
	}
	return Tagged(TagNegBignum, Bytes(n.Bytes()))
}

// bigIntFitsNativeRange reports whether z's mathematical value falls
// within the range major-type 0/1 already cover directly (spec 4.C:
// "if in signed-64-bit range, encodes as above"). Decode uses this to
// reject a tag-2/3 bignum wrapping such a value as non-canonical: the
// only canonical encoding for it is the plain integer form, the same
// way an in-range float must be a plain integer and never a float.
func bigIntFitsNativeRange(z *big.Int) bool {
	if z.Sign() >= 0 {
		return z.IsUint64()
	}
	n := new(big.Int).Neg(z)
	n.Sub(n, bigOne)
	return n.IsUint64()
}
