package wire

import (
	"errors"
	"strconv"
)

// ErrShortBytes is returned when the slice being decoded is too short
// to contain the item it claims to hold.
var ErrShortBytes error = errShort{}

// ErrMaxDepthExceeded is returned when recursive descent exceeds
// RecursionLimit. Only adversarial input reaches this.
var ErrMaxDepthExceeded = errors.New("cbor: max depth exceeded")

// ErrReservedAdditionalInfo is returned for header additional-info
// values 28-30, which RFC 8949 reserves and never assigns meaning to.
var ErrReservedAdditionalInfo = errors.New("cbor: reserved additional information value")

// ErrIndefiniteLength is returned for additional-info value 31
// (indefinite length). This deterministic profile has no encoding for
// indefinite-length items; decoding one is always an error.
var ErrIndefiniteLength = errors.New("cbor: indefinite-length items are not permitted")

// ErrNonCanonicalWidth is returned when a header's argument is encoded
// in a wider-than-necessary integer width.
var ErrNonCanonicalWidth = errors.New("cbor: argument not encoded in minimal width")

// ErrInvalidSimple is returned when a major-type-7 additional-info
// value does not correspond to false/true/null or a float width.
// ReadBigIntTagged also returns it when called with a tag other than 2
// or 3.
var ErrInvalidSimple = errors.New("cbor: invalid simple value")

type errShort struct{}

func (errShort) Error() string { return "cbor: too few bytes remain to decode this item" }

// InvalidPrefixError is returned when a header's major type does not
// match what the caller expected to decode.
type InvalidPrefixError struct {
	Want uint8
	Got  uint8
}

func (e InvalidPrefixError) Error() string {
	return "cbor: expected major type " + strconv.Itoa(int(e.Want)) + " but found " + strconv.Itoa(int(e.Got))
}

// IntOverflow is returned when a decoded integer does not fit the
// requested signed host type.
type IntOverflow struct {
	Value         int64
	FailedBitsize int
}

func (e IntOverflow) Error() string {
	return "cbor: " + strconv.FormatInt(e.Value, 10) + " overflows int" + strconv.Itoa(e.FailedBitsize)
}
