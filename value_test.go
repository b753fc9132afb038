package ccbor_test

import (
	"encoding/hex"
	"math"
	"math/big"
	"testing"

	"github.com/detcbor/ccbor"
)

func TestFloatCanonicalizesIntegralValues(t *testing.T) {
	cases := []struct {
		f    float64
		kind ccbor.ValueKind
	}{
		{2.0, ccbor.KindUnsigned},
		{0.0, ccbor.KindUnsigned},
		{-1.0, ccbor.KindNegative},
		{-5.0, ccbor.KindNegative},
		{2.5, ccbor.KindFloat},
		{math.NaN(), ccbor.KindFloat},
		{math.Inf(1), ccbor.KindFloat},
	}
	for _, c := range cases {
		got := ccbor.Float(c.f).Kind()
		if got != c.kind {
			t.Errorf("Float(%v).Kind() = %v, want %v", c.f, got, c.kind)
		}
	}
}

func TestFloatNegativeZeroEqualsPositiveZero(t *testing.T) {
	if !ccbor.Float(0).Equal(ccbor.Float(math.Copysign(0, -1))) {
		t.Fatal("+0.0 and -0.0 should canonicalize to equal values")
	}
}

func TestValueEqualNaN(t *testing.T) {
	a := ccbor.Float(math.NaN())
	b := ccbor.Float(math.NaN())
	if !a.Equal(b) {
		t.Fatal("two NaN float Values should compare Equal")
	}
}

func TestAccessorsRejectWrongKind(t *testing.T) {
	v := ccbor.Text("hi")
	if _, err := v.AsUint64(); err == nil {
		t.Fatal("expected error reading unsigned from a text value")
	}
	var cerr *ccbor.Error
	if _, err := v.AsUint64(); err != nil {
		if e, ok := err.(*ccbor.Error); ok {
			cerr = e
		}
	}
	if cerr == nil || cerr.Kind != ccbor.WrongType {
		t.Fatalf("expected WrongType error, got %v", cerr)
	}
}

func TestTaggedExtractRoundTrip(t *testing.T) {
	v := ccbor.Tagged(100, ccbor.Unsigned(7))
	inner, err := ccbor.Extract(v, 100)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	u, err := inner.AsUint64()
	if err != nil || u != 7 {
		t.Fatalf("Extract inner = %v, %v; want 7, nil", u, err)
	}
	if _, err := ccbor.Extract(v, 101); err == nil {
		t.Fatal("expected wrong-tag error")
	}
}

func TestTextNormalizesToNFC(t *testing.T) {
	// "é" as NFD (e + combining acute) vs NFC (precomposed) must
	// construct to the same Value.
	nfd := "é"
	nfc := "é"
	if !ccbor.Text(nfd).Equal(ccbor.Text(nfc)) {
		t.Fatal("Text should NFC-normalize so NFD and NFC inputs compare equal")
	}
}

func TestBigIntReclassifiesNativeRangeValues(t *testing.T) {
	// A magnitude that fits the plain major-type 0/1 integer encoding
	// must use that form, not a tag-2/3 bignum wrapper (spec 4.C: "if
	// in signed-64-bit range, encodes as above").
	cases := []struct {
		z    *big.Int
		kind ccbor.ValueKind
	}{
		{big.NewInt(5), ccbor.KindUnsigned},
		{big.NewInt(0), ccbor.KindUnsigned},
		{big.NewInt(-5), ccbor.KindNegative},
	}
	for _, c := range cases {
		got := ccbor.BigInt(c.z).Kind()
		if got != c.kind {
			t.Errorf("BigInt(%v).Kind() = %v, want %v", c.z, got, c.kind)
		}
	}

	enc, err := ccbor.Encode(ccbor.BigInt(big.NewInt(5)))
	if err != nil {
		t.Fatal(err)
	}
	if hexStr := hex.EncodeToString(enc); hexStr != "05" {
		t.Fatalf("Encode(BigInt(5)) = %s, want 05", hexStr)
	}
}

func TestBigIntRoundTrip(t *testing.T) {
	huge, ok := new(big.Int).SetString("18446744073709551616", 10) // 2^64
	if !ok {
		t.Fatal("bad literal")
	}
	v := ccbor.BigInt(huge)
	got, err := v.AsBigInt()
	if err != nil {
		t.Fatalf("AsBigInt: %v", err)
	}
	if got.Cmp(huge) != 0 {
		t.Fatalf("AsBigInt roundtrip mismatch: got %v want %v", got, huge)
	}

	neg, _ := new(big.Int).SetString("-18446744073709551617", 10) // -(2^64+1)
	vn := ccbor.BigInt(neg)
	gotn, err := vn.AsBigInt()
	if err != nil {
		t.Fatalf("AsBigInt: %v", err)
	}
	if gotn.Cmp(neg) != 0 {
		t.Fatalf("AsBigInt negative roundtrip mismatch: got %v want %v", gotn, neg)
	}
}
