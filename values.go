// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"codello.dev/der/internal/vlq"
)

// The functions in this file convert between the content octets of a single
// primitive value and its Go representation. They operate on content octets
// only; identifier and length octets are handled by [Parse] and [Node.DER].

//region [UNIVERSAL 1] BOOLEAN

// EncodeBoolean returns the content octets of a BOOLEAN value: a single 0xFF
// octet for true and 0x00 for false.
func EncodeBoolean(v bool) []byte {
	if v {
		return []byte{0xFF}
	}
	return []byte{0x00}
}

// ParseBoolean decodes the content octets of a BOOLEAN value. DER permits
// exactly the octets 0x00 and 0xFF; anything else is a syntax error.
func ParseBoolean(b []byte) (bool, error) {
	if len(b) != 1 || (b[0] != 0x00 && b[0] != 0xFF) {
		return false, &SyntaxError{Tag: TagBoolean, Err: errInvalidBool}
	}
	return b[0] == 0xFF, nil
}

//endregion

//region [UNIVERSAL 2] INTEGER

// EncodeInteger and ParseInteger handle integers of up to six content
// octets, i.e. the range [-2^47, 2^47).
const (
	minInteger = -1 << 47
	maxInteger = 1<<47 - 1
)

// EncodeInteger returns the content octets of an INTEGER value: big-endian
// two's complement of minimal width. Values outside [-2^47, 2^47) do not fit
// into six octets and are rejected.
func EncodeInteger(v int64) ([]byte, error) {
	if v < minInteger || v > maxInteger {
		return nil, &SyntaxError{Tag: TagInteger, Err: errIntegerRange}
	}
	n := 1
	for v < -1<<(8*n-1) || v > 1<<(8*n-1)-1 {
		n++
	}
	bs := make([]byte, n)
	for i := range bs {
		bs[n-1-i] = byte(v >> (8 * i))
	}
	return bs, nil
}

// ParseInteger decodes the content octets of an INTEGER value. Values of up
// to six octets decode to an int64. Longer values, such as certificate
// serial numbers, are not interpreted numerically and decode to their
// lowercase hexadecimal representation instead.
func ParseInteger(b []byte) (any, error) {
	if len(b) == 0 {
		return nil, &SyntaxError{Tag: TagInteger, Err: errEmptyInteger}
	}
	if len(b) > 6 {
		return hex.EncodeToString(b), nil
	}
	v := int64(int8(b[0])) // sign extend
	for _, c := range b[1:] {
		v = v<<8 | int64(c)
	}
	return v, nil
}

//endregion

//region [UNIVERSAL 3] BIT STRING

// EncodeBitString returns the content octets of a BIT STRING value: a
// leading octet holding the count of unused low-order bits of the final
// octet, followed by the bit buffer with its padding bits zeroed.
func EncodeBitString(s BitString) []byte {
	padding := byte((8 - s.BitLength%8) % 8)
	out := make([]byte, len(s.Bytes)+1)
	out[0] = padding
	copy(out[1:], s.Bytes)
	if len(s.Bytes) > 0 {
		out[len(out)-1] &= ^byte(1<<padding - 1)
	}
	return out
}

// ParseBitString decodes the content octets of a BIT STRING value. The
// padding count must be at most 7, must be 0 for an empty bit buffer, and
// the padding bits of the final octet must all be zero.
func ParseBitString(b []byte) (BitString, error) {
	if len(b) == 0 {
		return BitString{}, &SyntaxError{Tag: TagBitString, Err: errEmptyBits}
	}
	padding := b[0]
	if padding > 7 || (len(b) == 1 && padding > 0) {
		return BitString{}, &SyntaxError{Tag: TagBitString, Err: errInvalidBits}
	}
	if len(b) > 1 && b[len(b)-1]&(1<<padding-1) != 0 {
		return BitString{}, &SyntaxError{Tag: TagBitString, Err: errInvalidBits}
	}
	return BitString{
		Bytes:     b[1:],
		BitLength: (len(b)-1)*8 - int(padding),
	}, nil
}

//endregion

//region [UNIVERSAL 5] NULL

// EncodeNull returns the content octets of a NULL value, which are empty.
func EncodeNull() []byte {
	return []byte{}
}

// ParseNull checks that the content octets of a NULL value are empty.
func ParseNull(b []byte) error {
	if len(b) != 0 {
		return &SyntaxError{Tag: TagNull, Err: errInvalidNull}
	}
	return nil
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// EncodeOID returns the content octets of an OBJECT IDENTIFIER value given
// in dotted-decimal notation. At least two arcs are required. The first two
// arcs are packed into a single leading value 40*arc1+arc2, which restricts
// arc1 to 0, 1 or 2 and, below 2, arc2 to at most 39. Every value is written
// as a big-endian base-128 quantity with the high bit set on all octets but
// the last.
//
// See Rec. ITU-T X.690, Section 8.19.
func EncodeOID(s string) ([]byte, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, &SyntaxError{Tag: TagOID, Err: errInvalidOID}
	}
	arcs := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Tag: TagOID, Err: errInvalidOID}
		}
		arcs[i] = v
	}
	if arcs[0] > 2 || (arcs[0] < 2 && arcs[1] > 39) {
		return nil, &SyntaxError{Tag: TagOID, Err: errInvalidOID}
	}
	out := vlq.Append(nil, arcs[0]*40+arcs[1])
	for _, arc := range arcs[2:] {
		out = vlq.Append(out, arc)
	}
	return out, nil
}

// ParseOID decodes the content octets of an OBJECT IDENTIFIER value into
// dotted-decimal notation. The first encoded value packs the first two arcs:
// below 80 it splits into value/40 and value%40, otherwise the first arc is
// 2 and the second arc is value-80.
func ParseOID(b []byte) (string, error) {
	if len(b) == 0 {
		return "", &SyntaxError{Tag: TagOID, Err: errInvalidOID}
	}
	v, n, err := vlq.Parse(b)
	if err != nil {
		return "", &SyntaxError{Tag: TagOID, Err: err}
	}
	var sb strings.Builder
	sb.Grow(32)
	if v < 80 {
		sb.WriteString(strconv.FormatUint(v/40, 10))
		sb.WriteByte('.')
		sb.WriteString(strconv.FormatUint(v%40, 10))
	} else {
		sb.WriteString("2.")
		sb.WriteString(strconv.FormatUint(v-80, 10))
	}
	for b = b[n:]; len(b) > 0; b = b[n:] {
		if v, n, err = vlq.Parse(b); err != nil {
			return "", &SyntaxError{Tag: TagOID, Err: err}
		}
		sb.WriteByte('.')
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	return sb.String(), nil
}

//endregion

//region Character string types

// EncodeString returns the content octets of a character string value of the
// given tag. UTF8String values are written as their raw UTF-8 bytes.
// NumericString and IA5String values are validated against their character
// sets. T61String values are transcoded to ISO 8859-1 with unmappable runes
// substituted. PrintableString and GeneralString values are written as-is on
// a best-effort basis without validation or normalization.
func EncodeString(tag Tag, s string) ([]byte, error) {
	switch tag {
	case TagNumericString:
		for i := 0; i < len(s); i++ {
			if !isNumeric(s[i]) {
				return nil, &SyntaxError{Tag: tag, Err: errNotNumeric}
			}
		}
	case TagIA5String:
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 {
				return nil, &SyntaxError{Tag: tag, Err: errNotIA5}
			}
		}
	case TagT61String:
		enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
		return enc.Bytes([]byte(s))
	}
	return []byte(s), nil
}

// ParseString decodes the content octets of a character string value of the
// given tag. NumericString content may only contain digits and space;
// IA5String content may only contain octets below 0x80. T61String predates
// Unicode and is decoded as ISO 8859-1, which maps every octet to the code
// point of the same value. UTF8String, PrintableString and GeneralString
// content passes through without charset validation.
func ParseString(tag Tag, b []byte) (string, error) {
	switch tag {
	case TagNumericString:
		for _, c := range b {
			if !isNumeric(c) {
				return "", &SyntaxError{Tag: tag, Err: errNotNumeric}
			}
		}
	case TagIA5String:
		for _, c := range b {
			if c >= 0x80 {
				return "", &SyntaxError{Tag: tag, Err: errNotIA5}
			}
		}
	case TagT61String:
		s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", &SyntaxError{Tag: tag, Err: err}
		}
		return string(s), nil
	}
	return string(b), nil
}

// isNumeric reports whether b can appear in an ASN.1 NumericString.
func isNumeric(b byte) bool {
	return '0' <= b && b <= '9' || b == ' '
}

//endregion
