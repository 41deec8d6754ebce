// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"strconv"
	"strings"
)

// A Node is one decoded ASN.1 element. A Node either comes out of [Parse] and
// its variants or is built programmatically via [NewValue] and
// [NewConstructed]. In both cases the node and its content octets must be
// treated as immutable once constructed. A constructed Node exclusively owns
// its children; node trees are never shared and contain no cycles.
//
// The decoded Go value and the canonical DER encoding of a Node are computed
// on first access and memoized for the lifetime of the node. The caches are
// written at most once but without synchronization: a single goroutine must
// own the node until the first access of each has completed before the node
// may be read concurrently.
type Node struct {
	Class Class
	Tag   Tag

	// Constructed reports whether the content octets are themselves a
	// concatenation of encoded elements. It is determined once during
	// construction: the constructed bit of the identifier octet, forced to
	// true for the SEQUENCE and SET tag numbers.
	Constructed bool

	contents []byte  // content octets exactly as encoded; nil until computed for built constructed nodes
	children []*Node // child nodes; nil until decoded for shallow-parsed nodes

	value   any    // memoized result of Value
	valueOK bool   // value has been computed
	enc     []byte // memoized result of DER
}

// NewValue returns a primitive Node with the given content octets. Nodes
// carrying the SEQUENCE or SET tag number are constructed regardless; use
// [NewConstructed] to give them children.
func NewValue(class Class, tag Tag, contents []byte) *Node {
	return &Node{
		Class:       class,
		Tag:         tag,
		Constructed: tag == TagSequence || tag == TagSet,
		contents:    contents,
	}
}

// NewConstructed returns a constructed Node owning the given children.
func NewConstructed(class Class, tag Tag, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		Class:       class,
		Tag:         tag,
		Constructed: true,
		children:    children,
	}
}

// Contents returns the content octets of n exactly as encoded. For nodes
// built from children via [NewConstructed] the contents are computed on first
// use. The returned slice must not be modified.
func (n *Node) Contents() []byte {
	if n.contents == nil && n.children != nil {
		buf := []byte{}
		for _, c := range n.children {
			enc, err := c.DER()
			if err != nil {
				return nil
			}
			buf = append(buf, enc...)
		}
		n.contents = buf
	}
	return n.contents
}

// Children returns the child nodes of a constructed n. For nodes produced by
// [ParseShallow] the children are decoded from the content octets on first
// use and an error is returned if the contents are not a valid concatenation
// of DER elements. Children returns nil for primitive nodes.
func (n *Node) Children() ([]*Node, error) {
	if !n.Constructed {
		return nil, nil
	}
	if n.children == nil {
		children, err := parseSiblings(n.contents)
		if err != nil {
			return nil, err
		}
		n.children = children
	}
	return n.children, nil
}

// Value returns the decoded Go value of n. The result is memoized on first
// access; see the concurrency note on [Node].
//
// Constructed nodes decode to their []*Node children. Nodes outside
// [ClassUniversal] and universal nodes with an unsupported tag decode to
// their raw content octets. Otherwise the result depends on the tag:
//
//	BOOLEAN                   bool
//	INTEGER                   int64, or a hex string beyond six octets
//	BIT STRING                BitString
//	NULL                      Null
//	OBJECT IDENTIFIER         string in dotted-decimal notation
//	character string types    string
//	UTCTime, GeneralizedTime  time.Time
func (n *Node) Value() (any, error) {
	if n.valueOK {
		return n.value, nil
	}
	v, err := n.decodeValue()
	if err != nil {
		return nil, err
	}
	n.value, n.valueOK = v, true
	return v, nil
}

// decodeValue dispatches on the tag number to the per-type codec functions.
func (n *Node) decodeValue() (any, error) {
	if n.Constructed {
		return n.Children()
	}
	if n.Class != ClassUniversal {
		return n.contents, nil
	}
	switch n.Tag {
	case TagBoolean:
		return ParseBoolean(n.contents)
	case TagInteger, TagEnumerated:
		return ParseInteger(n.contents)
	case TagBitString:
		return ParseBitString(n.contents)
	case TagNull:
		if err := ParseNull(n.contents); err != nil {
			return nil, err
		}
		return Null{}, nil
	case TagOID:
		return ParseOID(n.contents)
	case TagUTF8String, TagNumericString, TagPrintableString,
		TagT61String, TagIA5String, TagGeneralString:
		return ParseString(n.Tag, n.contents)
	case TagUTCTime:
		return ParseUTCTime(n.contents)
	case TagGeneralizedTime:
		return ParseGeneralizedTime(n.contents)
	default:
		return n.contents, nil
	}
}

// Equal reports whether n and other decode to identical DER encodings, that
// is whether class, tag, constructedness and content octets all match.
func (n *Node) Equal(other *Node) bool {
	if n.Class != other.Class || n.Tag != other.Tag || n.Constructed != other.Constructed {
		return false
	}
	return bytes.Equal(n.Contents(), other.Contents())
}

// String returns a representation of n in a format similar to ASN.1
// notation, for example "[UNIVERSAL 16]/c:42". The tag number is enclosed in
// square brackets and prefixed with the class, followed by a
// constructed/primitive marker and the content length.
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if n.Class != ClassContextSpecific {
		sb.WriteString(strings.ToUpper(n.Class.String()))
		sb.WriteByte(' ')
	}
	sb.WriteString(strconv.Itoa(int(n.Tag)))
	sb.WriteByte(']')
	if n.Constructed {
		sb.WriteString("/c")
	} else {
		sb.WriteString("/p")
	}
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(len(n.contents)))
	return sb.String()
}
