package ccbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/detcbor/ccbor"
)

func TestEncodeMinimalWidthIntegers(t *testing.T) {
	cases := []struct {
		v   ccbor.Value
		hex string
	}{
		{ccbor.Unsigned(0), "00"},
		{ccbor.Unsigned(23), "17"},
		{ccbor.Unsigned(24), "1818"},
		{ccbor.Unsigned(255), "18ff"},
		{ccbor.Unsigned(256), "190100"},
		{ccbor.Unsigned(65536), "1a00010000"},
		{ccbor.Unsigned(4294967296), "1b0000000100000000"},
		{ccbor.Negative(0), "20"},
		{ccbor.FromInt64(-1), "20"},
		{ccbor.FromInt64(-100), "3863"},
	}
	for _, c := range cases {
		got, err := ccbor.Encode(c.v)
		if err != nil {
			t.Fatalf("Encode(%v): %v", c.v, err)
		}
		if hex.EncodeToString(got) != c.hex {
			t.Errorf("Encode(%v) = %x, want %s", c.v, got, c.hex)
		}
	}
}

func TestEncodeArrayAndMap(t *testing.T) {
	v := ccbor.Array(ccbor.Unsigned(1), ccbor.Unsigned(2), ccbor.Unsigned(3))
	got, err := ccbor.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != "83010203" {
		t.Fatalf("array encode = %x", got)
	}

	m := ccbor.NewMap()
	_ = m.Insert(ccbor.Text("a"), ccbor.Unsigned(1))
	_ = m.Insert(ccbor.Text("b"), ccbor.Unsigned(2))
	got, err = ccbor.Encode(ccbor.MapValue(m))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != "a2616101616202" {
		t.Fatalf("map encode = %x", got)
	}
}

func TestEncodeFloatChoosesNarrowestWidth(t *testing.T) {
	cases := []struct {
		f    float64
		hex  string
		name string
	}{
		{1.5, "f93e00", "half-precision-exact"},
		{100000.5, "fa47c35040", "single-precision-exact"},
		{1.1, "fb3ff199999999999a", "double-precision-needed"},
	}
	for _, c := range cases {
		got, err := ccbor.Encode(ccbor.Float(c.f))
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(got) != c.hex {
			t.Errorf("%s: Encode(Float(%v)) = %x, want %s", c.name, c.f, got, c.hex)
		}
	}
}

func TestEncodeTaggedBignum(t *testing.T) {
	// 2^64 does not fit uint64; must encode as tag 2 bignum.
	data, err := hex.DecodeString("c249010000000000000000")
	if err != nil {
		t.Fatal(err)
	}
	v, err := ccbor.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	z, err := v.AsBigInt()
	if err != nil {
		t.Fatalf("AsBigInt: %v", err)
	}
	reenc, err := ccbor.Encode(ccbor.BigInt(z))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(reenc) != "c249010000000000000000" {
		t.Fatalf("bignum re-encode = %x", reenc)
	}
}
