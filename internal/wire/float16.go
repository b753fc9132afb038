package wire

import (
	"math"

	"github.com/x448/float16"
)

// AppendFloatCanonical appends the shortest-width float encoding
// (half, single, or double precision) that round-trips f exactly,
// per spec 4.B/4.C. NaN is always canonicalized to the single
// well-known half-precision NaN bit pattern (0xf9 7e 00).
func AppendFloatCanonical(b []byte, f float64) []byte {
	if f == 0 {
		f = 0 // normalize -0 to +0
	}
	if math.IsNaN(f) {
		return appendFloat16Bits(b, float16.NaN().Bits())
	}

	f32 := float32(f)
	if h := float16.Fromfloat32(f32); float64(h.Float32()) == f {
		return appendFloat16Bits(b, h.Bits())
	}
	if float64(f32) == f {
		return AppendFloat32(b, f32)
	}
	return AppendFloat64(b, f)
}

func appendFloat16Bits(b []byte, bits uint16) []byte {
	o := append(b, makeByte(MajorSimple, simpleFloat16), 0, 0)
	be.PutUint16(o[len(o)-2:], bits)
	return o
}

// AppendFloat32 appends f as an IEEE 754 single-precision value.
func AppendFloat32(b []byte, f float32) []byte {
	o := append(b, makeByte(MajorSimple, simpleFloat32), 0, 0, 0, 0)
	be.PutUint32(o[len(o)-4:], math.Float32bits(f))
	return o
}

// AppendFloat64 appends f as an IEEE 754 double-precision value.
func AppendFloat64(b []byte, f float64) []byte {
	o := append(b, makeByte(MajorSimple, simpleFloat64), 0, 0, 0, 0, 0, 0, 0, 0)
	be.PutUint64(o[len(o)-8:], math.Float64bits(f))
	return o
}

// ReadFloat16Bytes reads an IEEE 754 half-precision float, widened to
// float64, and rejects any payload other than the canonical NaN.
func ReadFloat16Bytes(b []byte) (float64, []byte, error) {
	if len(b) < 3 || b[0] != makeByte(MajorSimple, simpleFloat16) {
		return 0, b, ErrShortBytes
	}
	bits := be.Uint16(b[1:3])
	h := float16.Frombits(bits)
	if h.IsNaN() && bits != float16.NaN().Bits() {
		return 0, b, ErrNonCanonicalWidth
	}
	return float64(h.Float32()), b[3:], nil
}

// ReadFloat32Bytes reads an IEEE 754 single-precision float.
func ReadFloat32Bytes(b []byte) (float32, []byte, error) {
	if len(b) < 5 || b[0] != makeByte(MajorSimple, simpleFloat32) {
		return 0, b, ErrShortBytes
	}
	return math.Float32frombits(be.Uint32(b[1:5])), b[5:], nil
}

// ReadFloat64Bytes reads an IEEE 754 double-precision float.
func ReadFloat64Bytes(b []byte) (float64, []byte, error) {
	if len(b) < 9 || b[0] != makeByte(MajorSimple, simpleFloat64) {
		return 0, b, ErrShortBytes
	}
	return math.Float64frombits(be.Uint64(b[1:9])), b[9:], nil
}
