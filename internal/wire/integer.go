package wire

import "math"

// AppendUint64 appends u as a canonical unsigned integer (major type 0).
func AppendUint64(b []byte, u uint64) []byte {
	return appendHeader(b, MajorUint, u)
}

// AppendInt64 appends i as a canonical signed integer: major type 0
// for i >= 0, major type 1 (argument -1-i) for i < 0.
func AppendInt64(b []byte, i int64) []byte {
	if i >= 0 {
		return appendHeader(b, MajorUint, uint64(i))
	}
	return appendHeader(b, MajorNegInt, uint64(-1-i))
}

// AppendNegativeArg appends a major-type-1 negative integer from its
// raw argument n (representing the mathematical value -1-n), without
// requiring the value to fit in an int64.
func AppendNegativeArg(b []byte, n uint64) []byte {
	return appendHeader(b, MajorNegInt, n)
}

// ReadUint64Bytes reads a major-type-0 unsigned integer.
func ReadUint64Bytes(b []byte) (uint64, []byte, error) {
	h, err := readHeaderExpect(b, MajorUint)
	if err != nil {
		return 0, b, err
	}
	return h.Arg, b[h.Size:], nil
}

// ReadInt64Bytes reads a major-type-0 or major-type-1 integer as an
// int64, failing with IntOverflow if the mathematical value does not
// fit (i.e. a negative argument > 2^63-1, meaning the value is below
// math.MinInt64, or an unsigned argument > math.MaxInt64).
func ReadInt64Bytes(b []byte) (int64, []byte, error) {
	h, err := readHeader(b)
	if err != nil {
		return 0, b, err
	}
	switch h.Major {
	case MajorUint:
		if h.Arg > math.MaxInt64 {
			return 0, b, IntOverflow{Value: int64(h.Arg), FailedBitsize: 64}
		}
		return int64(h.Arg), b[h.Size:], nil
	case MajorNegInt:
		if h.Arg > math.MaxInt64 {
			return 0, b, IntOverflow{Value: -1, FailedBitsize: 64}
		}
		return -1 - int64(h.Arg), b[h.Size:], nil
	default:
		return 0, b, InvalidPrefixError{Want: MajorUint, Got: h.Major}
	}
}

// NegativeArg reads the raw argument of a major-type-1 item (the value
// n such that the represented integer is -1-n), without converting it
// to a signed host type. Used when the magnitude may exceed int64.
func NegativeArg(b []byte) (uint64, []byte, error) {
	h, err := readHeaderExpect(b, MajorNegInt)
	if err != nil {
		return 0, b, err
	}
	return h.Arg, b[h.Size:], nil
}
