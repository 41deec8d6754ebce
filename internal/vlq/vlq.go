// Package vlq implements [Variable-length quantity] encoding as used by the
// arcs of BER object identifiers. A VLQ is essentially a base-128
// representation of an unsigned integer with the addition of the eighth bit
// to mark continuation of bytes. VLQ is identical to [LEB128] except in
// endianness.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"math"
)

var (
	errTruncated = errors.New("vlq ends prematurely")
	errOverflow  = errors.New("vlq too large for uint64")
)

// Len returns the number of bytes needed to encode v as a VLQ.
func Len(v uint64) int {
	if v == 0 {
		return 1
	}
	l := 0
	for i := v; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append appends the minimal encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	for i := Len(v) - 1; i >= 0; i-- {
		b := byte(v>>(i*7)) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// Parse decodes a single VLQ from the beginning of b. It returns the decoded
// value and the number of bytes consumed. An error is returned if b ends in
// the middle of a value or if the value exceeds the uint64 range.
func Parse(b []byte) (v uint64, n int, err error) {
	for n < len(b) {
		c := b[n]
		n++
		if v > math.MaxUint64>>7 {
			return 0, n, errOverflow
		}
		v = v<<7 | uint64(c&0x7F)
		if c&0x80 == 0 {
			return v, n, nil
		}
	}
	return 0, n, errTruncated
}
