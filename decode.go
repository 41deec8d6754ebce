// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// Parts of the identifier octet. See Rec. ITU-T X.690, Section 8.1.2.
const (
	classMask       = 0xC0 // bits 8 and 7
	constructedMask = 0x20 // bit 6
	tagMask         = 0x1F // bits 5 to 1
)

// Parse decodes exactly one DER element from the beginning of b, recursively
// decoding the children of constructed elements. Trailing bytes after the
// element are ignored. The returned node borrows from b; the buffer must not
// be modified afterwards.
func Parse(b []byte) (*Node, error) {
	return parseNode(newCursor(b), true)
}

// ParseShallow decodes one DER element like [Parse] but defers decoding the
// children of constructed elements until they are first accessed through
// [Node.Children] or [Node.Value].
func ParseShallow(b []byte) (*Node, error) {
	return parseNode(newCursor(b), false)
}

// ParseExpect decodes one DER element like [Parse] and additionally requires
// it to carry the given class and tag. On a mismatch a [ValidationError]
// carrying the decoded node is returned.
func ParseExpect(b []byte, class Class, tag Tag) (*Node, error) {
	n, err := Parse(b)
	if err != nil {
		return nil, err
	}
	if n.Class != class {
		return nil, &ValidationError{Node: n, Err: ErrClassMismatch}
	}
	if n.Tag != tag {
		return nil, &ValidationError{Node: n, Err: ErrTagMismatch}
	}
	return n, nil
}

// parseNode decodes a single element at the cursor position. If deep is true
// the children of constructed elements are decoded recursively, otherwise
// only the content octets are recorded.
func parseNode(cur *byteCursor, deep bool) (*Node, error) {
	if err := cur.advance(1); err != nil {
		return nil, err
	}
	ident := cur.window()[0]
	class := Class(ident & classMask)
	tag := Tag(ident & tagMask)
	if tag == tagMask {
		// All five tag bits set indicates the high-tag-number form.
		return nil, &SyntaxError{Err: errHighTagNumber}
	}
	constructed := ident&constructedMask != 0 || tag == TagSequence || tag == TagSet

	length, err := parseLength(cur)
	if err != nil {
		return nil, err
	}
	if tag == TagNull && length != 0 {
		return nil, &SyntaxError{Tag: TagNull, Err: errInvalidNull}
	}
	if err := cur.need(length); err != nil {
		return nil, err
	}
	cur.walk(length)

	n := &Node{
		Class:       class,
		Tag:         tag,
		Constructed: constructed,
		contents:    cur.window(),
	}
	if constructed && deep {
		if n.children, err = parseSiblings(n.contents); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// parseLength decodes the length octets at the cursor position. Short-form
// lengths are encoded directly in the first octet; in the long form the low
// seven bits give the number of big-endian length octets that follow,
// supporting lengths up to 2^48-1.
//
// A long-form count of zero is the formal BER marker for the
// indefinite-length encoding, which DER forbids. It is not treated specially
// here: the loop below runs zero times and yields a zero-length value.
func parseLength(cur *byteCursor) (int, error) {
	if err := cur.advance(1); err != nil {
		return 0, err
	}
	b := cur.window()[0]
	if b&0x80 == 0 {
		return int(b), nil
	}
	count := int(b & 0x7F)
	if count > 6 {
		return 0, &SyntaxError{Err: errLengthTooLong}
	}
	if err := cur.advance(count); err != nil {
		return 0, err
	}
	length := 0
	for _, lb := range cur.window() {
		length = length<<8 | int(lb)
	}
	return length, nil
}

// parseSiblings decodes the concatenation of elements that makes up the
// content octets of a constructed value. Every byte must belong to exactly
// one child: a child whose declared length reaches beyond the remaining bytes
// fails with a [LengthError].
func parseSiblings(contents []byte) ([]*Node, error) {
	children := []*Node{}
	cur := newCursor(contents)
	for cur.end < len(contents) {
		child, err := parseNode(cur, true)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
