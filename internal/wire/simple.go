package wire

// AppendBool appends the CBOR simple value for a bool.
func AppendBool(b []byte, v bool) []byte {
	if v {
		return append(b, makeByte(MajorSimple, SimpleTrue))
	}
	return append(b, makeByte(MajorSimple, SimpleFalse))
}

// AppendNull appends the CBOR null simple value.
func AppendNull(b []byte) []byte {
	return append(b, makeByte(MajorSimple, SimpleNull))
}

// ReadBoolBytes reads a bool simple value.
func ReadBoolBytes(b []byte) (bool, []byte, error) {
	if len(b) < 1 {
		return false, b, ErrShortBytes
	}
	switch b[0] {
	case makeByte(MajorSimple, SimpleTrue):
		return true, b[1:], nil
	case makeByte(MajorSimple, SimpleFalse):
		return false, b[1:], nil
	default:
		return false, b, InvalidPrefixError{Want: MajorSimple, Got: majorOf(b[0])}
	}
}

// ReadNullBytes reads the null simple value.
func ReadNullBytes(b []byte) ([]byte, error) {
	if len(b) < 1 || b[0] != makeByte(MajorSimple, SimpleNull) {
		return b, InvalidPrefixError{Want: MajorSimple, Got: majorOf(b[0])}
	}
	return b[1:], nil
}

// AppendTag appends a semantic tag header (major type 6).
func AppendTag(b []byte, tag uint64) []byte {
	return appendHeader(b, MajorTag, tag)
}

// ReadTagBytes reads a semantic tag header and returns the tag number.
func ReadTagBytes(b []byte) (uint64, []byte, error) {
	h, err := readHeaderExpect(b, MajorTag)
	if err != nil {
		return 0, b, err
	}
	return h.Arg, b[h.Size:], nil
}

// AppendArrayHeader appends an array header (major type 4) with sz elements.
func AppendArrayHeader(b []byte, sz uint64) []byte {
	return appendHeader(b, MajorArray, sz)
}

// ReadArrayHeaderBytes reads an array header.
func ReadArrayHeaderBytes(b []byte) (uint64, []byte, error) {
	h, err := readHeaderExpect(b, MajorArray)
	if err != nil {
		return 0, b, err
	}
	return h.Arg, b[h.Size:], nil
}

// AppendMapHeader appends a map header (major type 5) with sz entries.
func AppendMapHeader(b []byte, sz uint64) []byte {
	return appendHeader(b, MajorMap, sz)
}

// ReadMapHeaderBytes reads a map header.
func ReadMapHeaderBytes(b []byte) (uint64, []byte, error) {
	h, err := readHeaderExpect(b, MajorMap)
	if err != nil {
		return 0, b, err
	}
	return h.Arg, b[h.Size:], nil
}
