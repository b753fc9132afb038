package ccbor

import "github.com/detcbor/ccbor/internal/wire"

// Encode renders v as canonical, deterministic CBOR bytes (spec
// component C/E). Encode never fails on a Value built through this
// package's constructors and accessors; it returns an error only for a
// Value whose kind is none of the defined variants, which those
// constructors never produce, so in practice Encode always succeeds. The
// signature still returns an error to leave room for future
// user-constructed Value graphs that violate an invariant Encode
// cannot check at lower cost than attempting the encode.
func Encode(v Value) ([]byte, error) {
	buf := wire.GetBuffer()
	defer wire.PutBuffer(buf)
	out, err := appendValue(*buf, v)
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(out))
	copy(result, out)
	return result, nil
}

func appendValue(b []byte, v Value) ([]byte, error) {
	switch v.kind {
	case KindUnsigned:
		return wire.AppendUint64(b, v.n), nil
	case KindNegative:
		return wire.AppendNegativeArg(b, v.n), nil
	case KindBytes:
		return wire.AppendBytes(b, v.data), nil
	case KindText:
		return wire.AppendString(b, v.text), nil
	case KindBool:
		return wire.AppendBool(b, v.n != 0), nil
	case KindNull:
		return wire.AppendNull(b), nil
	case KindFloat:
		return wire.AppendFloatCanonical(b, v.f), nil
	case KindArray:
		b = wire.AppendArrayHeader(b, uint64(len(v.arr)))
		var err error
		for _, elem := range v.arr {
			b, err = appendValue(b, elem)
			if err != nil {
				return nil, err
			}
		}
		return b, nil
	case KindMap:
		m := v.m
		if m == nil {
			return wire.AppendMapHeader(b, 0), nil
		}
		b = wire.AppendMapHeader(b, uint64(m.Count()))
		var err error
		for _, e := range m.s.entries {
			b = append(b, e.encKey...)
			b, err = appendValue(b, e.val)
			if err != nil {
				return nil, err
			}
		}
		return b, nil
	case KindTagged:
		b = wire.AppendTag(b, v.tag)
		return appendValue(b, *v.inner)
	default:
		return nil, newErr(InvalidFormat, "unknown value kind")
	}
}
