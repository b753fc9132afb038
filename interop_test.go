package ccbor_test

import (
	"bytes"
	"testing"

	cbor2 "github.com/fxamacker/cbor/v2"

	"github.com/detcbor/ccbor"
)

// TestInteropWithFxamackerCanonicalMode cross-checks this package's
// canonical encoding against fxamacker/cbor/v2's independent
// implementation running in its own canonical mode, for values whose
// canonical form is unambiguous between the two codecs' type systems
// (integers, text, byte strings, and arrays).
func TestInteropWithFxamackerCanonicalMode(t *testing.T) {
	em, err := cbor2.CanonicalEncOptions().EncMode()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		v    ccbor.Value
		host any
	}{
		{"uint", ccbor.Unsigned(1000), uint64(1000)},
		{"negint", ccbor.FromInt64(-1000), int64(-1000)},
		{"text", ccbor.Text("hello"), "hello"},
		{"bytes", ccbor.Bytes([]byte{1, 2, 3}), []byte{1, 2, 3}},
		{"array", ccbor.Array(ccbor.Unsigned(1), ccbor.Unsigned(2), ccbor.Unsigned(3)), []uint64{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ours, err := ccbor.Encode(c.v)
			if err != nil {
				t.Fatalf("ccbor.Encode: %v", err)
			}
			theirs, err := em.Marshal(c.host)
			if err != nil {
				t.Fatalf("fxamacker Marshal: %v", err)
			}
			if !bytes.Equal(ours, theirs) {
				t.Errorf("canonical encodings differ:\n  ccbor:      %x\n  fxamacker:  %x", ours, theirs)
			}
		})
	}
}

// TestInteropDecodeFxamackerOutput verifies that bytes produced by
// fxamacker/cbor/v2's canonical mode are accepted by this package's
// strict canonical decoder, i.e. the two implementations agree on
// what "canonical" means for this subset of the data model.
func TestInteropDecodeFxamackerOutput(t *testing.T) {
	em, err := cbor2.CanonicalEncOptions().EncMode()
	if err != nil {
		t.Fatal(err)
	}
	theirs, err := em.Marshal(map[string]uint64{"a": 1, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	v, err := ccbor.Decode(theirs)
	if err != nil {
		t.Fatalf("ccbor.Decode rejected fxamacker canonical output: %v", err)
	}
	m, err := v.AsMap()
	if err != nil {
		t.Fatal(err)
	}
	if m.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Count())
	}
}
