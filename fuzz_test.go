package ccbor_test

import (
	"testing"

	"github.com/detcbor/ccbor"
)

// FuzzDecodeNeverPanics exercises Decode and Dump against arbitrary
// byte sequences to confirm the strict canonical-form checks reject
// malformed or non-canonical input cleanly (an error, never a panic),
// mirroring the teacher's FuzzRuntimeReaderBasic harness.
func FuzzDecodeNeverPanics(f *testing.F) {
	f.Add([]byte{0xa1, 0x61, 0x61, 0x01})       // map {"a":1}
	f.Add([]byte{0x83, 0x01, 0x02, 0x03})       // array [1,2,3]
	f.Add([]byte{0x9f, 0x01, 0x02, 0xff})       // indefinite-length array
	f.Add([]byte{0x18, 0x00})                   // non-canonical width
	f.Add([]byte{0x61, 0xff})                   // invalid UTF-8
	f.Add([]byte{0xfb, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) // float encoding of integral 2.0

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic in Decode fuzz: %v", r)
			}
		}()

		v, err := ccbor.Decode(data)
		if err == nil {
			// Any value Decode accepts must be canonical: re-encoding it
			// must reproduce the exact input bytes (spec §8 property 1).
			reenc, encErr := ccbor.Encode(v)
			if encErr != nil {
				t.Fatalf("Encode of a Decode-accepted value failed: %v", encErr)
			}
			if string(reenc) != string(data) {
				t.Fatalf("Decode accepted non-canonical bytes: decode(%x) re-encodes as %x", data, reenc)
			}
		}

		_, _ = ccbor.Dump(data, nil)
	})
}
