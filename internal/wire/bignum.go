package wire

import "math/big"

// AppendBigIntTagged appends z as a tagged bignum (tag 2 for
// non-negative, tag 3 for negative, per spec 4.C) with the minimal
// big-endian byte representation of its magnitude.
func AppendBigIntTagged(b []byte, z *big.Int) []byte {
	if z.Sign() >= 0 {
		b = AppendTag(b, TagPosBignum)
		return AppendBytes(b, z.Bytes())
	}
	// value = -1 - n  =>  n = -1 - value = -(value) - 1
	n := new(big.Int).Neg(z)
	n.Sub(n, big.NewInt(1))
	b = AppendTag(b, TagNegBignum)
	return AppendBytes(b, n.Bytes())
}

// ReadBigIntTagged reads the body of a tag-2/tag-3 bignum: bytes must
// already have been consumed up through the tag header; body is the
// remaining bytes starting at the byte-string item. It rejects
// non-minimal magnitude encodings (a leading zero byte), except for
// the literal zero value, which is a zero-length byte string.
func ReadBigIntTagged(tag uint64, body []byte) (*big.Int, []byte, error) {
	bs, rest, err := ReadBytesBytes(body)
	if err != nil {
		return nil, body, err
	}
	if len(bs) > 0 && bs[0] == 0 {
		return nil, body, ErrNonCanonicalWidth
	}
	mag := new(big.Int).SetBytes(bs)
	switch tag {
	case TagPosBignum:
		return mag, rest, nil
	case TagNegBignum:
		mag.Add(mag, big.NewInt(1))
		mag.Neg(mag)
		return mag, rest, nil
	default:
		return nil, body, ErrInvalidSimple
	}
}
