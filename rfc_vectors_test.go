package ccbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/detcbor/ccbor"
)

// rfcVectors are canonical deterministic encodings drawn from RFC
// 8949's worked examples (§3.4, §8), restricted to the subset this
// profile accepts: the indefinite-length array example is intentionally
// excluded, since this package's deterministic profile always rejects
// indefinite lengths.
type rfcVector struct {
	name string
	diag string
	hex  string
}

var rfcVectors = []rfcVector{
	{name: "text-a", diag: `"a"`, hex: "6161"},
	{name: "zero", diag: "0", hex: "00"},
	{name: "minus-one", diag: "-1", hex: "20"},
	{name: "bytes-010203", diag: "h'010203'", hex: "43010203"},
	{name: "array-1-2-3", diag: "[1, 2, 3]", hex: "83010203"},
	{name: "map-a1-b2", diag: `{"a": 1, "b": 2}`, hex: "a2616101616202"},
	{name: "tag-epoch-datetime", diag: "1(1363896240)", hex: "c11a514b67b0"},
}

func TestRFCVectorsDecodeAndDiag(t *testing.T) {
	for _, ex := range rfcVectors {
		ex := ex
		t.Run(ex.name, func(t *testing.T) {
			msg, err := hex.DecodeString(ex.hex)
			if err != nil {
				t.Fatalf("bad hex %q: %v", ex.hex, err)
			}
			v, err := ccbor.Decode(msg)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got := v.String(); got != ex.diag {
				t.Fatalf("diag mismatch: got %q want %q", got, ex.diag)
			}
			reenc, err := ccbor.Encode(v)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if hex.EncodeToString(reenc) != ex.hex {
				t.Fatalf("re-encode mismatch: got %x want %s", reenc, ex.hex)
			}
		})
	}
}

func TestRFCVectorsRejectIndefiniteLength(t *testing.T) {
	// [_ 1, 2] from RFC 8949 §3.4.2 is well-formed CBOR but not
	// deterministic; this profile must reject it.
	msg, err := hex.DecodeString("9f0102ff")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ccbor.Decode(msg); err == nil {
		t.Fatal("expected indefinite-length array to be rejected")
	}
}
