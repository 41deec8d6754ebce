// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

// BitString is the structure used for a BIT STRING. A bit string is padded up
// to the nearest byte in memory and records the number of valid bits. The
// zero value is an empty bit string.
type BitString struct {
	Bytes     []byte // bits packed into bytes
	BitLength int    // number of valid bits
}

// IsValid reports whether s is a valid bit string, that is whether the
// BitLength matches the size of Bytes.
func (s BitString) IsValid() bool {
	return s.BitLength >= 0 && (len(s.Bytes)-1)*8 < s.BitLength && s.BitLength <= len(s.Bytes)*8
}

// Len returns the number of valid bits in s.
func (s BitString) Len() int {
	return s.BitLength
}

// At returns the bit at index i. Bits are indexed from the most significant
// bit of the first byte. Indices outside [0, BitLength) yield 0.
func (s BitString) At(i int) int {
	if i < 0 || i >= s.BitLength {
		return 0
	}
	x := i / 8
	y := 7 - uint(i%8)
	return int(s.Bytes[x]>>y) & 1
}

// RightAlign returns a slice where the padding bits are at the beginning. The
// slice may share memory with the BitString.
func (s BitString) RightAlign() []byte {
	shift := uint(8 - s.BitLength%8)
	if shift == 8 || len(s.Bytes) == 0 {
		return s.Bytes
	}

	a := make([]byte, len(s.Bytes))
	a[0] = s.Bytes[0] >> shift
	for i := 1; i < len(s.Bytes); i++ {
		a[i] = s.Bytes[i-1] << (8 - shift)
		a[i] |= s.Bytes[i] >> shift
	}
	return a
}
