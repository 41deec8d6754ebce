// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// DER returns the canonical DER encoding of n, including identifier and
// length octets. The encoding is computed on first access and memoized; see
// the concurrency note on [Node]. Content lengths requiring more than six
// length octets are rejected.
func (n *Node) DER() ([]byte, error) {
	if n.enc != nil {
		return n.enc, nil
	}
	enc, err := appendNode(nil, n)
	if err != nil {
		return nil, err
	}
	n.enc = enc
	return enc, nil
}

// appendNode appends the encoding of n to dst.
func appendNode(dst []byte, n *Node) ([]byte, error) {
	ident := byte(n.Class) | byte(n.Tag)
	if n.Constructed {
		ident |= constructedMask
	}
	dst = append(dst, ident)

	contents := n.contents
	if contents == nil && n.children != nil {
		contents = []byte{}
		var err error
		for _, c := range n.children {
			if contents, err = appendNode(contents, c); err != nil {
				return nil, err
			}
		}
	}
	dst, err := appendLength(dst, len(contents))
	if err != nil {
		return nil, err
	}
	return append(dst, contents...), nil
}

// appendLength appends the minimal definite-length encoding of length to
// dst: the short form for lengths up to 127, otherwise the smallest number
// of big-endian length octets prefixed with that count. Lengths of 2^48 and
// beyond are invalid.
func appendLength(dst []byte, length int) ([]byte, error) {
	if length < 0x80 {
		return append(dst, byte(length)), nil
	}
	count := 0
	for l := length; l > 0; l >>= 8 {
		count++
	}
	if count > 6 {
		return nil, &SyntaxError{Err: errLengthTooLong}
	}
	dst = append(dst, 0x80|byte(count))
	for i := count - 1; i >= 0; i-- {
		dst = append(dst, byte(length>>(8*i)))
	}
	return dst, nil
}
