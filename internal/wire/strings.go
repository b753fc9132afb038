package wire

// AppendBytes appends a byte string (major type 2) with a canonical
// length header.
func AppendBytes(b []byte, data []byte) []byte {
	b = appendHeader(b, MajorBytes, uint64(len(data)))
	return append(b, data...)
}

// AppendString appends the raw bytes of s as a text string (major
// type 3). Callers are responsible for NFC-normalizing s first; this
// function only handles the wire-level framing.
func AppendString(b []byte, s string) []byte {
	b = appendHeader(b, MajorText, uint64(len(s)))
	return append(b, s...)
}

// ReadBytesBytes reads a byte string (major type 2).
func ReadBytesBytes(b []byte) ([]byte, []byte, error) {
	h, err := readHeaderExpect(b, MajorBytes)
	if err != nil {
		return nil, b, err
	}
	rest := b[h.Size:]
	if uint64(len(rest)) < h.Arg {
		return nil, b, ErrShortBytes
	}
	out := make([]byte, h.Arg)
	copy(out, rest[:h.Arg])
	return out, rest[h.Arg:], nil
}

// ReadStringBytesRaw reads a text string (major type 3) and returns its
// raw UTF-8 bytes without validating or normalizing them; callers
// perform UTF-8 validation and NFC normalization at the value-model
// layer where the appropriate errors (invalidString/nonCanonicalString)
// are surfaced.
func ReadStringBytesRaw(b []byte) ([]byte, []byte, error) {
	h, err := readHeaderExpect(b, MajorText)
	if err != nil {
		return nil, b, err
	}
	rest := b[h.Size:]
	if uint64(len(rest)) < h.Arg {
		return nil, b, ErrShortBytes
	}
	return rest[:h.Arg], rest[h.Arg:], nil
}
