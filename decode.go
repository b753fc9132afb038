package ccbor

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/detcbor/ccbor/internal/wire"
)

// maxDepth bounds recursive descent through nested arrays/maps/tags,
// matching internal/wire's own limit so a decode of adversarial input
// fails cleanly instead of exhausting the goroutine stack.
const maxDepth = wire.RecursionLimit

// Decode parses b as a single canonical, deterministic CBOR value
// (spec component F). It rejects any deviation from the canonical
// form internal/wire and this package enforce: non-minimal integer or
// float widths, indefinite lengths, non-UTF-8 or non-NFC text,
// misordered or duplicate map keys, and trailing bytes after the
// top-level value.
func Decode(b []byte) (Value, error) {
	v, rest, err := decodeValue(b, 0)
	if err != nil {
		return Value{}, err
	}
	if len(rest) > 0 {
		return Value{}, errUnusedData(len(rest))
	}
	return v, nil
}

func decodeValue(b []byte, depth int) (Value, []byte, error) {
	if depth > maxDepth {
		return Value{}, b, wrapErr(InvalidFormat, wire.ErrMaxDepthExceeded)
	}
	h, err := wire.PeekHeader(b)
	if err != nil {
		return Value{}, b, classifyWireError(err)
	}
	switch h.Major {
	case wire.MajorUint:
		u, rest, err := wire.ReadUint64Bytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		return Unsigned(u), rest, nil
	case wire.MajorNegInt:
		n, rest, err := wire.NegativeArg(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		return Negative(n), rest, nil
	case wire.MajorBytes:
		data, rest, err := wire.ReadBytesBytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		return Value{kind: KindBytes, data: data}, rest, nil
	case wire.MajorText:
		raw, rest, err := wire.ReadStringBytesRaw(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		if !utf8.Valid(raw) {
			return Value{}, b, newErr(InvalidString, "text is not valid UTF-8")
		}
		s := string(raw)
		if !norm.NFC.IsNormalString(s) {
			return Value{}, b, newErr(NonCanonicalString, "text is not NFC-normalized")
		}
		return Value{kind: KindText, text: s}, rest, nil
	case wire.MajorArray:
		return decodeArray(b, depth)
	case wire.MajorMap:
		return decodeMap(b, depth)
	case wire.MajorTag:
		return decodeTagged(b, depth)
	case wire.MajorSimple:
		return decodeSimple(b, h)
	default:
		return Value{}, b, newErr(BadHeaderValue, "unknown major type")
	}
}

func decodeArray(b []byte, depth int) (Value, []byte, error) {
	n, rest, err := wire.ReadArrayHeaderBytes(b)
	if err != nil {
		return Value{}, b, classifyWireError(err)
	}
	items := make([]Value, 0, n)
	for i := uint64(0); i < n; i++ {
		var v Value
		v, rest, err = decodeValue(rest, depth+1)
		if err != nil {
			return Value{}, b, err
		}
		items = append(items, v)
	}
	return Value{kind: KindArray, arr: items}, rest, nil
}

func decodeMap(b []byte, depth int) (Value, []byte, error) {
	n, rest, err := wire.ReadMapHeaderBytes(b)
	if err != nil {
		return Value{}, b, classifyWireError(err)
	}
	m := NewMap()
	for i := uint64(0); i < n; i++ {
		keyStart := rest
		var key Value
		key, rest, err = decodeValue(rest, depth+1)
		if err != nil {
			return Value{}, b, err
		}
		encKey := keyStart[:len(keyStart)-len(rest)]
		var val Value
		val, rest, err = decodeValue(rest, depth+1)
		if err != nil {
			return Value{}, b, err
		}
		if err := m.insertNext(encKey, key, val); err != nil {
			return Value{}, b, err
		}
	}
	return MapValue(m), rest, nil
}

func decodeTagged(b []byte, depth int) (Value, []byte, error) {
	tag, rest, err := wire.ReadTagBytes(b)
	if err != nil {
		return Value{}, b, classifyWireError(err)
	}
	switch tag {
	case wire.TagPosBignum, wire.TagNegBignum:
		z, after, err := wire.ReadBigIntTagged(tag, rest)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		if bigIntFitsNativeRange(z) {
			return Value{}, b, newErr(NonCanonicalNumeric, "bignum tag wraps a value that fits the native integer encoding")
		}
		return BigInt(z), after, nil
	}
	inner, after, err := decodeValue(rest, depth+1)
	if err != nil {
		return Value{}, b, err
	}
	return Tagged(tag, inner), after, nil
}

func decodeSimple(b []byte, h wire.Header) (Value, []byte, error) {
	// Dispatch on the lead byte's additional-info bits, not h.Arg: for
	// major type 7, Arg holds the trailing bytes read as a plain
	// integer, which for a float is its bit pattern, not 25/26/27.
	switch h.AddInfo {
	case wire.SimpleFalse, wire.SimpleTrue:
		bv, rest, err := wire.ReadBoolBytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		return Bool(bv), rest, nil
	case wire.SimpleNull:
		rest, err := wire.ReadNullBytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		return Null(), rest, nil
	case 25:
		f, rest, err := wire.ReadFloat16Bytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		if isReclassifiableInteger(f) {
			return Value{}, b, newErr(NonCanonicalNumeric, "integral float value must be encoded as an integer")
		}
		return checkedCanonicalFloat(f, b, rest)
	case 26:
		f32, rest, err := wire.ReadFloat32Bytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		f := float64(f32)
		if isReclassifiableInteger(f) {
			return Value{}, b, newErr(NonCanonicalNumeric, "integral float value must be encoded as an integer")
		}
		if !isCanonicalFloatWidth(f, 5) {
			return Value{}, b, newErr(NonCanonicalNumeric, "float32 value has a shorter canonical encoding")
		}
		return checkedCanonicalFloat(f, b, rest)
	case 27:
		f, rest, err := wire.ReadFloat64Bytes(b)
		if err != nil {
			return Value{}, b, classifyWireError(err)
		}
		if isReclassifiableInteger(f) {
			return Value{}, b, newErr(NonCanonicalNumeric, "integral float value must be encoded as an integer")
		}
		if !isCanonicalFloatWidth(f, 9) {
			return Value{}, b, newErr(NonCanonicalNumeric, "float64 value has a shorter canonical encoding")
		}
		return checkedCanonicalFloat(f, b, rest)
	default:
		return Value{}, b, newErr(InvalidSimple, "unsupported simple value")
	}
}

// checkedCanonicalFloat wraps f as a Value, trusting that the caller
// has already verified the encoded width was the narrowest one that
// round-trips f (spec 4.B/4.C canonical float width rule) and has
// already rejected integral values that Float would reclassify to
// KindUnsigned/KindNegative, so the result is always KindFloat.
func checkedCanonicalFloat(f float64, orig, rest []byte) (Value, []byte, error) {
	return Float(f), rest, nil
}

// isCanonicalFloatWidth reports whether wantSize is the narrowest
// header+body size (3 for float16, 5 for float32, 9 for float64) that
// round-trips f exactly, i.e. whether encoding f today would have
// chosen this same width.
func isCanonicalFloatWidth(f float64, wantSize int) bool {
	return len(wire.AppendFloatCanonical(nil, f)) == wantSize
}
