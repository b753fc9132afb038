// Package ccbor implements a deterministic CBOR codec (RFC 8949 §4.2):
// every logically equal value has exactly one valid byte encoding, and
// the decoder rejects any byte sequence that deviates from that
// canonical form. The low-level varint header codec and primitive
// append/read operations live in internal/wire; this package builds
// the value model, ordered map, and encode/decode entry points on top
// of it.
package ccbor

import (
	"math"
	"math/big"
)

// ValueKind identifies which variant of the CBOR value model a Value holds.
type ValueKind uint8

const (
	KindUnsigned ValueKind = iota
	KindNegative
	KindBytes
	KindText
	KindArray
	KindMap
	KindTagged
	KindBool
	KindNull
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindNegative:
		return "negative"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTagged:
		return "tagged"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Value is the tagged union described by spec §3. Values are
// immutable once constructed: every constructor returns a fresh Value,
// and the only mutable state reachable from a Value is a Map's
// internal storage, which follows its own copy-on-write discipline
// (see map.go).
type Value struct {
	kind ValueKind

	// n holds: the unsigned argument for KindUnsigned, the negative
	// argument (value = -1-n) for KindNegative, and 0/1 for KindBool.
	n uint64
	// f holds the float64 value for KindFloat.
	f float64
	// text holds the NFC-normalized string for KindText.
	text string
	// data holds the byte payload for KindBytes.
	data []byte
	// arr holds the elements for KindArray.
	arr []Value
	// m holds the ordered map storage for KindMap.
	m *Map
	// tag and inner hold the tag number and wrapped value for KindTagged.
	tag   uint64
	inner *Value
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Unsigned constructs an unsigned-integer value (spec 3: unsigned(u)).
func Unsigned(u uint64) Value { return Value{kind: KindUnsigned, n: u} }

// Negative constructs a negative-integer value from its encoded
// argument n, representing the mathematical value -1-n (spec 3:
// negative(n)).
func Negative(n uint64) Value { return Value{kind: KindNegative, n: n} }

// FromInt64 constructs the unsigned or negative value corresponding to
// a signed 64-bit host integer.
func FromInt64(i int64) Value {
	if i >= 0 {
		return Unsigned(uint64(i))
	}
	return Negative(uint64(-1 - i))
}

// Bytes constructs a byte-string value (spec 3: bytes(b)). The input
// is copied so later mutation of b does not affect the Value.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, data: cp}
}

// Array constructs an array value from its elements (spec 3: array(v)).
func Array(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindArray, arr: cp}
}

// MapValue wraps an ordered Map as a value (spec 3: map(m)).
func MapValue(m *Map) Value { return Value{kind: KindMap, m: m} }

// Tagged constructs a tagged value (spec 3: tagged(t, v); spec 4.E).
func Tagged(tag uint64, v Value) Value {
	inner := v
	return Value{kind: KindTagged, tag: tag, inner: &inner}
}

// Bool constructs a simple false/true value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, n: 1}
	}
	return Value{kind: KindBool, n: 0}
}

// Null constructs the simple null value.
func Null() Value { return Value{kind: KindNull} }

// Float constructs a simple floating-point value, applying the
// canonicalization spec 4.B requires at construction time: a float
// whose mathematical value is an integer representable as
// unsigned/negative is reclassified to that variant, so that two
// constructions of the same mathematical value always produce
// structurally equal Values (and therefore identical encodings).
func Float(f float64) Value {
	if f == 0 {
		f = 0 // normalize -0 to +0
	}
	if !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f) {
		if f >= 0 && f <= maxUint64Float {
			if u := uint64(f); float64(u) == f {
				return Unsigned(u)
			}
		}
		if f < 0 && f >= minInt64LikeFloat {
			// value = -1-n  =>  n = -1-value
			n := -1 - f
			if n >= 0 && n <= maxUint64Float {
				if u := uint64(n); float64(u) == n && -1-float64(u) == f {
					return Negative(u)
				}
			}
		}
	}
	return Value{kind: KindFloat, f: f}
}

// isReclassifiableInteger reports whether f's mathematical value falls
// in the range Float's construction-time canonicalization reclassifies
// to KindUnsigned/KindNegative. Decode uses this to reject a float
// major-type encoding of such a value as non-canonical: the only
// canonical encoding for an integral value in this range is the
// integer form, regardless of how narrow the float encoding is.
func isReclassifiableInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}
	if f >= 0 && f <= maxUint64Float {
		if u := uint64(f); float64(u) == f {
			return true
		}
	}
	if f < 0 && f >= minInt64LikeFloat {
		n := -1 - f
		if n >= 0 && n <= maxUint64Float {
			if u := uint64(n); float64(u) == n && -1-float64(u) == f {
				return true
			}
		}
	}
	return false
}

// maxUint64Float is 2^64-1 written as a float64 constant. It rounds to
// 2^64, one past the largest uint64, so the bound alone admits 2^64;
// callers also compare a uint64 round-trip of the value, and this
// constant only keeps the common-case check cheap.
const maxUint64Float = 18446744073709551615.0 // 2^64-1, rounds to 2^64 in float64; round-trip check above is authoritative
const minInt64LikeFloat = -18446744073709551616.0 // -2^64

// Equal reports whether v and other are the same CBOR value per the
// spec's structural-equality rule. Map equality compares encoded
// entries (key bytes and values) in order, which is exactly the
// comparison a deterministic encoder would make byte-for-byte.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindUnsigned, KindNegative, KindBool:
		return v.n == other.n
	case KindNull:
		return true
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case KindText:
		return v.text == other.text
	case KindBytes:
		return bytesEqual(v.data, other.data)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.equal(other.m)
	case KindTagged:
		return v.tag == other.tag && v.inner.Equal(*other.inner)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Accessors ---
// Each accessor projects v to a host type or fails with wrongType
// (variant mismatch) or outOfRange (the value doesn't fit the target).

// AsUint64 returns v's value as a uint64. Only KindUnsigned succeeds.
func (v Value) AsUint64() (uint64, error) {
	if v.kind != KindUnsigned {
		return 0, newErr(WrongType, "value is "+v.kind.String()+", not unsigned")
	}
	return v.n, nil
}

// AsInt64 returns v's value as an int64. KindUnsigned values above
// math.MaxInt64 and KindNegative values representing less than
// math.MinInt64 fail with OutOfRange; use AsBigInt for those.
func (v Value) AsInt64() (int64, error) {
	switch v.kind {
	case KindUnsigned:
		if v.n > math.MaxInt64 {
			return 0, newErr(OutOfRange, "unsigned value exceeds int64 range")
		}
		return int64(v.n), nil
	case KindNegative:
		if v.n > math.MaxInt64 {
			return 0, newErr(OutOfRange, "negative value exceeds int64 range")
		}
		return -1 - int64(v.n), nil
	default:
		return 0, newErr(WrongType, "value is "+v.kind.String()+", not an integer")
	}
}

// AsBigInt returns v's mathematical value as an arbitrary-precision
// integer. It succeeds for KindUnsigned, KindNegative, and for a
// KindTagged value wrapping tag 2 (positive bignum) or tag 3 (negative
// bignum) over a KindBytes inner value.
func (v Value) AsBigInt() (*big.Int, error) {
	switch v.kind {
	case KindUnsigned:
		return new(big.Int).SetUint64(v.n), nil
	case KindNegative:
		z := new(big.Int).SetUint64(v.n)
		z.Add(z, big.NewInt(1))
		z.Neg(z)
		return z, nil
	case KindTagged:
		if v.inner.kind != KindBytes {
			return nil, newErr(WrongType, "tagged bignum body is not bytes")
		}
		switch v.tag {
		case tagPosBignum:
			return new(big.Int).SetBytes(v.inner.data), nil
		case tagNegBignum:
			z := new(big.Int).SetBytes(v.inner.data)
			z.Add(z, big.NewInt(1))
			z.Neg(z)
			return z, nil
		default:
			return nil, errWrongTag(tagPosBignum, v.tag)
		}
	default:
		return nil, newErr(WrongType, "value is "+v.kind.String()+", not an integer")
	}
}

// AsFloat64 returns v's floating-point value. Only KindFloat succeeds;
// integral values are KindUnsigned/KindNegative per construction-time
// canonicalization (use AsInt64/AsBigInt for those).
func (v Value) AsFloat64() (float64, error) {
	if v.kind != KindFloat {
		return 0, newErr(WrongType, "value is "+v.kind.String()+", not float")
	}
	return v.f, nil
}

// AsBool returns v's boolean value. Only KindBool succeeds.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, newErr(WrongType, "value is "+v.kind.String()+", not bool")
	}
	return v.n != 0, nil
}

// IsNull reports whether v is the simple null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsText returns v's NFC-normalized text. Only KindText succeeds.
func (v Value) AsText() (string, error) {
	if v.kind != KindText {
		return "", newErr(WrongType, "value is "+v.kind.String()+", not text")
	}
	return v.text, nil
}

// AsBytes returns v's byte payload. Only KindBytes succeeds. The
// returned slice is a copy; mutating it does not affect v.
func (v Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, newErr(WrongType, "value is "+v.kind.String()+", not bytes")
	}
	cp := make([]byte, len(v.data))
	copy(cp, v.data)
	return cp, nil
}

// AsArray returns v's elements. Only KindArray succeeds. The returned
// slice is a copy; mutating it does not affect v.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, newErr(WrongType, "value is "+v.kind.String()+", not array")
	}
	cp := make([]Value, len(v.arr))
	copy(cp, v.arr)
	return cp, nil
}

// AsMap returns v's underlying ordered map. Only KindMap succeeds.
func (v Value) AsMap() (*Map, error) {
	if v.kind != KindMap {
		return nil, newErr(WrongType, "value is "+v.kind.String()+", not map")
	}
	return v.m, nil
}

// Tag returns v's tag number. Only KindTagged succeeds.
func (v Value) Tag() (uint64, error) {
	if v.kind != KindTagged {
		return 0, newErr(WrongType, "value is "+v.kind.String()+", not tagged")
	}
	return v.tag, nil
}

// Extract returns the inner value of a tagged value, requiring the
// tag to equal expected (spec 6: extract(value, expected_tag)).
func Extract(v Value, expected uint64) (Value, error) {
	if v.kind != KindTagged {
		return Value{}, newErr(WrongType, "value is "+v.kind.String()+", not tagged")
	}
	if v.tag != expected {
		return Value{}, errWrongTag(expected, v.tag)
	}
	return *v.inner, nil
}
