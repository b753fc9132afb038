package ccbor

import "golang.org/x/text/unicode/norm"

// Text constructs a text-string value (spec 3: text(s)). s is
// NFC-normalized at construction time, per spec 4.B: canonical CBOR
// text is always NFC, so two constructions of the same logical string
// (regardless of input normalization form) produce the same Value and
// therefore the same bytes on the wire.
func Text(s string) Value {
	return Value{kind: KindText, text: norm.NFC.String(s)}
}
