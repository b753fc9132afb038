package wire

import "encoding/binary"

var be = binary.BigEndian

// Header is a decoded CBOR initial byte plus its argument (spec 4.A).
type Header struct {
	Major uint8
	Arg   uint64
	// AddInfo is the raw 5-bit additional-info field of the lead byte.
	// For major type 7 (simple/float), this is what callers must
	// dispatch on (20/21/22/25/26/27/...) — Arg instead holds the
	// trailing bytes read as a plain big-endian integer, which for a
	// float is the float's bit pattern, not a numeric argument.
	AddInfo uint8
	// Size is the number of bytes the header occupies, including the
	// leading byte and any trailing argument bytes.
	Size int
}

// headerSize returns the canonical header width (in bytes, including
// the leading byte) needed to encode arg.
func headerSize(arg uint64) int {
	switch {
	case arg <= addInfoDirect:
		return 1
	case arg <= 0xff:
		return 2
	case arg <= 0xffff:
		return 3
	case arg <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// appendHeader appends a canonical (minimal-width) header byte for the
// given major type and argument.
func appendHeader(b []byte, major uint8, arg uint64) []byte {
	switch {
	case arg <= addInfoDirect:
		return append(b, makeByte(major, uint8(arg)))
	case arg <= 0xff:
		return append(b, makeByte(major, addInfoUint8), uint8(arg))
	case arg <= 0xffff:
		o := append(b, makeByte(major, addInfoUint16), 0, 0)
		be.PutUint16(o[len(o)-2:], uint16(arg))
		return o
	case arg <= 0xffffffff:
		o := append(b, makeByte(major, addInfoUint32), 0, 0, 0, 0)
		be.PutUint32(o[len(o)-4:], uint32(arg))
		return o
	default:
		o := append(b, makeByte(major, addInfoUint64), 0, 0, 0, 0, 0, 0, 0, 0)
		be.PutUint64(o[len(o)-8:], arg)
		return o
	}
}

// readHeader reads one CBOR header from b, enforcing this profile's
// canonical form: additional-info 28-30 is rejected as reserved,
// additional-info 31 (indefinite length) is always rejected, and any
// multi-byte argument that could have fit a narrower width is rejected
// as non-canonical. The narrower-width check does not apply to major
// type 7's 16/32/64-bit forms: there the trailing bytes are a float's
// bit pattern, not an integer argument, and canonical float width is a
// round-trip property (see isCanonicalFloatWidth), not a magnitude
// comparison.
func readHeader(b []byte) (Header, error) {
	if len(b) < 1 {
		return Header{}, ErrShortBytes
	}
	lead := b[0]
	major := majorOf(lead)
	add := addInfoOf(lead)
	isFloatWidth := major == MajorSimple && (add == addInfoUint16 || add == addInfoUint32 || add == addInfoUint64)

	switch {
	case add <= addInfoDirect:
		return Header{Major: major, Arg: uint64(add), AddInfo: add, Size: 1}, nil
	case add == addInfoUint8:
		if len(b) < 2 {
			return Header{}, ErrShortBytes
		}
		v := uint64(b[1])
		if v <= addInfoDirect {
			return Header{}, ErrNonCanonicalWidth
		}
		return Header{Major: major, Arg: v, AddInfo: add, Size: 2}, nil
	case add == addInfoUint16:
		if len(b) < 3 {
			return Header{}, ErrShortBytes
		}
		v := uint64(be.Uint16(b[1:]))
		if !isFloatWidth && v <= 0xff {
			return Header{}, ErrNonCanonicalWidth
		}
		return Header{Major: major, Arg: v, AddInfo: add, Size: 3}, nil
	case add == addInfoUint32:
		if len(b) < 5 {
			return Header{}, ErrShortBytes
		}
		v := uint64(be.Uint32(b[1:]))
		if !isFloatWidth && v <= 0xffff {
			return Header{}, ErrNonCanonicalWidth
		}
		return Header{Major: major, Arg: v, AddInfo: add, Size: 5}, nil
	case add == addInfoUint64:
		if len(b) < 9 {
			return Header{}, ErrShortBytes
		}
		v := be.Uint64(b[1:])
		if !isFloatWidth && v <= 0xffffffff {
			return Header{}, ErrNonCanonicalWidth
		}
		return Header{Major: major, Arg: v, AddInfo: add, Size: 9}, nil
	case add == addInfoIndefinite:
		return Header{}, ErrIndefiniteLength
	default: // 28, 29, 30
		return Header{}, ErrReservedAdditionalInfo
	}
}

// PeekHeader reads the next header from b without requiring any
// particular major type, for callers that need to dispatch on major
// type before consuming an item (the value-model decoder).
func PeekHeader(b []byte) (Header, error) { return readHeader(b) }

// readHeaderExpect reads a header and requires it to carry the given
// major type.
func readHeaderExpect(b []byte, want uint8) (Header, error) {
	h, err := readHeader(b)
	if err != nil {
		return Header{}, err
	}
	if h.Major != want {
		return Header{}, InvalidPrefixError{Want: want, Got: h.Major}
	}
	return h, nil
}
