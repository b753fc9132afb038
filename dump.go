package ccbor

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/detcbor/ccbor/internal/wire"
)

// String renders v in RFC 8949 §8 diagnostic notation. This is a
// non-normative convenience for humans; it never affects the wire
// encoding. Float's construction-time canonicalization makes 1.0 the
// unsigned integer 1, so it renders as "1".
func (v Value) String() string {
	var sb strings.Builder
	v.writeDiag(&sb)
	return sb.String()
}

func (v Value) writeDiag(sb *strings.Builder) {
	switch v.kind {
	case KindUnsigned:
		sb.WriteString(strconv.FormatUint(v.n, 10))
	case KindNegative:
		z, _ := v.AsBigInt()
		sb.WriteString(z.String())
	case KindBytes:
		sb.WriteString("h'")
		sb.WriteString(hex.EncodeToString(v.data))
		sb.WriteString("'")
	case KindText:
		sb.WriteString(strconv.Quote(v.text))
	case KindBool:
		if v.n != 0 {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNull:
		sb.WriteString("null")
	case KindFloat:
		sb.WriteString(formatFloatDiag(v.f))
	case KindArray:
		sb.WriteString("[")
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.writeDiag(sb)
		}
		sb.WriteString("]")
	case KindMap:
		sb.WriteString("{")
		first := true
		if v.m != nil {
			v.m.Range(func(k, val Value) bool {
				if !first {
					sb.WriteString(", ")
				}
				first = false
				k.writeDiag(sb)
				sb.WriteString(": ")
				val.writeDiag(sb)
				return true
			})
		}
		sb.WriteString("}")
	case KindTagged:
		sb.WriteString(strconv.FormatUint(v.tag, 10))
		sb.WriteString("(")
		v.inner.writeDiag(sb)
		sb.WriteString(")")
	default:
		sb.WriteString("<invalid>")
	}
}

func formatFloatDiag(f float64) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	af := math.Abs(f)
	if af == 0 || af < 1e15 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		return trimTrailingZerosDot(s)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func trimTrailingZerosDot(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// Dump renders data as an annotated hex dump (spec component H): each
// CBOR item's header and body bytes on their own line, hex-encoded,
// followed by a comment describing what was parsed, indented to show
// nesting. knownTags overrides the tag names used for annotating
// major-type-6 items; a nil map falls back to wire.KnownTagNames.
// Dump applies Decode's header, float-width and map-key-order checks
// and reports their failures with Decode's error kinds, annotated with
// the offset of the item at which parsing failed; trailing bytes after
// the top-level item yield UnusedData. It does not check text for
// valid UTF-8 or NFC form, and it does not check the contents of
// tag-2/3 bignums, so it accepts some input that Decode rejects.
func Dump(data []byte, knownTags map[uint64]string) (string, error) {
	if knownTags == nil {
		knownTags = wire.KnownTagNames
	}
	d := &dumper{sb: &strings.Builder{}, tags: knownTags, orig: data}
	rest, err := d.dumpOne(data, 0)
	if err != nil {
		return d.sb.String(), fmt.Errorf("at offset %d: %w", len(data)-len(rest), err)
	}
	if len(rest) > 0 {
		return d.sb.String(), errUnusedData(len(rest))
	}
	return d.sb.String(), nil
}

type dumper struct {
	sb   *strings.Builder
	tags map[uint64]string
	orig []byte
}

func (d *dumper) emit(depth int, consumed, rest []byte, note string) {
	fmt.Fprintf(d.sb, "%s%-32s # %s\n", strings.Repeat("  ", depth), hex.EncodeToString(consumed), note)
	_ = rest
}

func (d *dumper) dumpOne(b []byte, depth int) ([]byte, error) {
	if depth > maxDepth {
		return b, wrapErr(InvalidFormat, wire.ErrMaxDepthExceeded)
	}
	start := b
	h, err := wire.PeekHeader(b)
	if err != nil {
		return b, classifyWireError(err)
	}
	switch h.Major {
	case wire.MajorUint:
		u, rest, err := wire.ReadUint64Bytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("unsigned(%d)", u))
		return rest, nil
	case wire.MajorNegInt:
		n, rest, err := wire.NegativeArg(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		z, _ := Negative(n).AsBigInt()
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("negative(%d) = %s", n, z))
		return rest, nil
	case wire.MajorBytes:
		data, rest, err := wire.ReadBytesBytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("bytes(%d)", len(data)))
		return rest, nil
	case wire.MajorText:
		raw, rest, err := wire.ReadStringBytesRaw(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("text(%q)", string(raw)))
		return rest, nil
	case wire.MajorArray:
		n, rest, err := wire.ReadArrayHeaderBytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("array(%d)", n))
		for i := uint64(0); i < n; i++ {
			rest, err = d.dumpOne(rest, depth+1)
			if err != nil {
				return rest, err
			}
		}
		return rest, nil
	case wire.MajorMap:
		n, rest, err := wire.ReadMapHeaderBytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("map(%d)", n))
		var lastKey []byte
		for i := uint64(0); i < n; i++ {
			keyStart := rest
			rest, err = d.dumpOne(rest, depth+1)
			if err != nil {
				return rest, err
			}
			encKey := keyStart[:len(keyStart)-len(rest)]
			if lastKey != nil {
				switch cmp := bytes.Compare(lastKey, encKey); {
				case cmp == 0:
					return keyStart, newErr(DuplicateMapKey, "")
				case cmp > 0:
					return keyStart, newErr(MisorderedMapKey, "")
				}
			}
			lastKey = encKey
			rest, err = d.dumpOne(rest, depth+1)
			if err != nil {
				return rest, err
			}
		}
		return rest, nil
	case wire.MajorTag:
		tag, rest, err := wire.ReadTagBytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		name := d.tags[tag]
		if name == "" {
			name = "tag"
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("%s(%d)", name, tag))
		return d.dumpOne(rest, depth+1)
	case wire.MajorSimple:
		return d.dumpSimple(b, start, depth, h)
	default:
		return b, newErr(BadHeaderValue, "unknown major type")
	}
}

func (d *dumper) dumpSimple(b, start []byte, depth int, h wire.Header) ([]byte, error) {
	// Dispatch on the lead byte's additional-info bits, not h.Arg: for
	// major type 7, Arg holds the trailing bytes read as a plain
	// integer, which for a float is its bit pattern, not 25/26/27.
	switch h.AddInfo {
	case wire.SimpleFalse, wire.SimpleTrue:
		bv, rest, err := wire.ReadBoolBytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("bool(%v)", bv))
		return rest, nil
	case wire.SimpleNull:
		rest, err := wire.ReadNullBytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, "null")
		return rest, nil
	case 25:
		f, rest, err := wire.ReadFloat16Bytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		if isReclassifiableInteger(f) {
			return b, newErr(NonCanonicalNumeric, "integral float value must be encoded as an integer")
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("float16(%s)", formatFloatDiag(f)))
		return rest, nil
	case 26:
		f32, rest, err := wire.ReadFloat32Bytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		f := float64(f32)
		if isReclassifiableInteger(f) {
			return b, newErr(NonCanonicalNumeric, "integral float value must be encoded as an integer")
		}
		if !isCanonicalFloatWidth(f, 5) {
			return b, newErr(NonCanonicalNumeric, "float32 value has a shorter canonical encoding")
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("float32(%s)", formatFloatDiag(f)))
		return rest, nil
	case 27:
		f, rest, err := wire.ReadFloat64Bytes(b)
		if err != nil {
			return b, classifyWireError(err)
		}
		if isReclassifiableInteger(f) {
			return b, newErr(NonCanonicalNumeric, "integral float value must be encoded as an integer")
		}
		if !isCanonicalFloatWidth(f, 9) {
			return b, newErr(NonCanonicalNumeric, "float64 value has a shorter canonical encoding")
		}
		d.emit(depth, start[:len(start)-len(rest)], rest, fmt.Sprintf("float64(%s)", formatFloatDiag(f)))
		return rest, nil
	default:
		return b, newErr(InvalidSimple, "unsupported simple value")
	}
}
