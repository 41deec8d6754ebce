// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements the Distinguished Encoding Rules (DER) subset of
// ASN.1 as defined in [Rec. ITU-T X.690]. It is the parsing and encoding
// engine underlying certificate and key processing such as X.509 and PKCS#8.
//
// # Decoding
//
// [Parse] decodes a byte buffer into a tree of [Node] values. Each Node
// carries its tag class, tag number and content octets; the content octets of
// constructed nodes are further decoded into child nodes. [ParseShallow]
// defers decoding of children until they are first accessed. The typed Go
// value of a node (an int64 for INTEGER, a string for OBJECT IDENTIFIER and
// the character string types, and so on) is computed lazily by [Node.Value].
//
// Decoded substructures can be validated and extracted in one step using
// [ParseWithTemplate]: a [Template] describes the expected shape of the tree
// and names the nodes to capture.
//
// # Encoding
//
// Nodes constructed with [NewValue] and [NewConstructed] (or obtained from a
// previous decode) are encoded with [Node.DER]. The per-type functions such
// as [EncodeInteger] and [EncodeOID] produce the content octets for a single
// value.
//
// # Supported Subset
//
// Only the DER-relevant subset of BER is implemented: low-tag-number
// identifier octets (tags 0 through 30) and definite lengths of at most six
// length octets. The indefinite-length form and high-tag-number identifiers
// are not supported.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package der

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. The constant values correspond to bits 7 and 6 of the
// identifier octet, so an identifier can be split into its parts using
// bitwise operations alone.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the class values that can occur
// in an identifier octet.
const (
	ClassUniversal       Class = 0x00
	ClassApplication     Class = 0x40
	ClassContextSpecific Class = 0x80
	ClassPrivate         Class = 0xC0
)

// IsValid reports whether c is one of the four defined class values.
func (c Class) IsValid() bool {
	return c&0x3F == 0
}

// Tag is an ASN.1 tag number. Only the low-tag-number form is supported, so
// valid tag numbers range from 0 to 30.
//
//go:generate stringer -type=Tag -trimprefix=Tag
type Tag uint8

// Tag numbers of the [ClassUniversal] namespace supported by this package.
// These assignments are defined in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean         Tag = 1
	TagInteger         Tag = 2
	TagBitString       Tag = 3
	TagOctetString     Tag = 4
	TagNull            Tag = 5
	TagOID             Tag = 6
	TagEnumerated      Tag = 10
	TagUTF8String      Tag = 12
	TagSequence        Tag = 16
	TagSet             Tag = 17
	TagNumericString   Tag = 18
	TagPrintableString Tag = 19
	TagT61String       Tag = 20
	TagIA5String       Tag = 22
	TagUTCTime         Tag = 23
	TagGeneralizedTime Tag = 24
	TagGeneralString   Tag = 27
)

// Null represents the ASN.1 NULL type. [Node.Value] returns a Null value for
// decoded NULL elements.
//
// See also section 24 of Rec. ITU-T X.680.
type Null struct{}
