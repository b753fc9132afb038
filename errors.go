package ccbor

import (
	"errors"
	"fmt"

	"github.com/detcbor/ccbor/internal/wire"
)

// Kind identifies one of the decoder's structured failure kinds
// (spec §4.G). The encoder never fails on well-formed in-memory
// values, so Kind only appears on decode and accessor errors.
type Kind uint8

const (
	// Underrun: the buffer ended mid-item.
	Underrun Kind = iota + 1
	// BadHeaderValue: a header byte used a reserved or indefinite-length
	// additional-info value.
	BadHeaderValue
	// NonCanonicalNumeric: an integer or float used a wider-than-minimum
	// encoding width.
	NonCanonicalNumeric
	// InvalidSimple: a major-type-7 argument was not in the allowed set.
	InvalidSimple
	// InvalidString: text bytes were not valid UTF-8.
	InvalidString
	// NonCanonicalString: text was valid UTF-8 but not NFC-normalized.
	NonCanonicalString
	// UnusedData: trailing bytes remained after a complete top-level value.
	UnusedData
	// MisorderedMapKey: map keys were not strictly ascending.
	MisorderedMapKey
	// DuplicateMapKey: the same encoded key appeared twice in a map.
	DuplicateMapKey
	// OutOfRange: a decoded integer did not fit the requested host type.
	OutOfRange
	// WrongType: the decoded variant did not match the requested type.
	WrongType
	// WrongTag: a tagged value's tag did not match the expected tag.
	WrongTag
	// InvalidFormat: a recognized tag's body was malformed (for higher
	// layers built on this package). This package itself uses it only
	// for nesting deeper than the recursion limit and for a Value of
	// unknown kind passed to Encode.
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case Underrun:
		return "underrun"
	case BadHeaderValue:
		return "badHeaderValue"
	case NonCanonicalNumeric:
		return "nonCanonicalNumeric"
	case InvalidSimple:
		return "invalidSimple"
	case InvalidString:
		return "invalidString"
	case NonCanonicalString:
		return "nonCanonicalString"
	case UnusedData:
		return "unusedData"
	case MisorderedMapKey:
		return "misorderedMapKey"
	case DuplicateMapKey:
		return "duplicateMapKey"
	case OutOfRange:
		return "outOfRange"
	case WrongType:
		return "wrongType"
	case WrongTag:
		return "wrongTag"
	case InvalidFormat:
		return "invalidFormat"
	default:
		return "unknown"
	}
}

// Error is the structured error type returned by Decode and by Value
// accessors. Detail carries kind-specific context (a byte count for
// UnusedData, expected/encountered tags for WrongTag, ...).
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return "ccbor: " + e.Kind.String() + ": " + e.Detail
	}
	return "ccbor: " + e.Kind.String()
}

// Unwrap exposes the underlying low-level wire error, if any, so
// callers can use errors.Is against wire sentinels when they need to.
func (e *Error) Unwrap() error { return e.cause }

func newErr(k Kind, detail string) *Error { return &Error{Kind: k, Detail: detail} }

func wrapErr(k Kind, cause error) *Error {
	return &Error{Kind: k, Detail: cause.Error(), cause: cause}
}

// errUnusedData builds the UnusedData error, carrying the count of
// leftover bytes (spec: unusedData(k)).
func errUnusedData(k int) *Error {
	return newErr(UnusedData, fmt.Sprintf("%d trailing byte(s)", k))
}

// errWrongTag builds the WrongTag error.
func errWrongTag(expected, encountered uint64) *Error {
	return &Error{Kind: WrongTag, Detail: fmt.Sprintf("expected tag %d, found tag %d", expected, encountered)}
}

// classifyWireError maps a low-level internal/wire error onto this
// package's Kind taxonomy. Unrecognized errors fall back to Underrun,
// which is the only kind that can legitimately arise from a short
// buffer at any nesting depth.
func classifyWireError(err error) *Error {
	switch {
	case errors.Is(err, wire.ErrShortBytes):
		return wrapErr(Underrun, err)
	case errors.Is(err, wire.ErrReservedAdditionalInfo), errors.Is(err, wire.ErrIndefiniteLength):
		return wrapErr(BadHeaderValue, err)
	case errors.Is(err, wire.ErrNonCanonicalWidth):
		return wrapErr(NonCanonicalNumeric, err)
	case errors.Is(err, wire.ErrInvalidSimple):
		return wrapErr(InvalidSimple, err)
	case errors.Is(err, wire.ErrMaxDepthExceeded):
		return wrapErr(InvalidFormat, err)
	default:
		switch err.(type) {
		case wire.InvalidPrefixError:
			return wrapErr(WrongType, err)
		case wire.IntOverflow:
			return wrapErr(OutOfRange, err)
		}
		return wrapErr(Underrun, err)
	}
}
