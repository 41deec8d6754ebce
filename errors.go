package der

import (
	"errors"
	"strconv"
)

// Errors wrapped in [SyntaxError] values by the per-type codecs.
var (
	errHighTagNumber = errors.New("high-tag-number form is not supported")
	errLengthTooLong = errors.New("length does not fit into 6 octets")
	errInvalidBool   = errors.New("invalid BOOLEAN encoding")
	errEmptyInteger  = errors.New("empty INTEGER")
	errIntegerRange  = errors.New("integer does not fit into 6 octets")
	errInvalidBits   = errors.New("invalid padding bits in BIT STRING")
	errEmptyBits     = errors.New("zero length BIT STRING")
	errInvalidNull   = errors.New("invalid NULL encoding")
	errInvalidOID    = errors.New("invalid OBJECT IDENTIFIER")
	errNotNumeric    = errors.New("NumericString contains invalid characters")
	errNotIA5        = errors.New("IA5String contains invalid characters")
	errInvalidTime   = errors.New("invalid time encoding")
)

// Errors reported as the cause of a [ValidationError]. They can be matched
// using [errors.Is].
var (
	ErrClassMismatch  = errors.New("element class does not match")
	ErrTagMismatch    = errors.New("element tag does not match")
	ErrElementMissing = errors.New("required element is not present")
	ErrNotConstructed = errors.New("element is not constructed")
)

// LengthError reports that a decode operation required more bytes than the
// input buffer provides.
type LengthError struct {
	Available int // total number of bytes in the buffer
	Requested int // number of bytes required to continue parsing
}

func (e *LengthError) Error() string {
	return "der: too few bytes to parse: have " + strconv.Itoa(e.Available) +
		", need " + strconv.Itoa(e.Requested)
}

// SyntaxError reports malformed content octets of a value. If the universal
// tag of the value is known it is recorded in Tag.
type SyntaxError struct {
	Tag Tag   // universal tag of the malformed value, if known
	Err error // underlying error
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	return "der: syntax error: " + e.Err.Error()
}

// ValidationError reports the first mismatch encountered when a node tree is
// matched against a [Template]. Err is one of the sentinel errors above or an
// error from re-parsing embedded DER. The top-level entry points record the
// offending node for diagnostics.
type ValidationError struct {
	Template string // Name of the template that failed to match
	Node     *Node  // offending node, set at the top level
	Err      error
}

func (e *ValidationError) Unwrap() error { return e.Err }
func (e *ValidationError) Error() string {
	b := []byte("der: validation failed")
	if e.Template != "" {
		b = append(b, " at "...)
		b = strconv.AppendQuote(b, e.Template)
	}
	if e.Node != nil {
		b = append(b, " on "...)
		b = append(b, e.Node.String()...)
	}
	b = append(b, ": "...)
	b = append(b, e.Err.Error()...)
	return string(b)
}
