// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"reflect"
	"testing"
	"time"
)

func TestNodeValue(t *testing.T) {
	tests := map[string]struct {
		data     []byte
		expected any
	}{
		"boolean":     {data: []byte{0x01, 0x01, 0xFF}, expected: true},
		"integer":     {data: []byte{0x02, 0x01, 0x2A}, expected: int64(42)},
		"enumerated":  {data: []byte{0x0A, 0x01, 0x03}, expected: int64(3)},
		"bit string":  {data: []byte{0x03, 0x02, 0x06, 0x40}, expected: BitString{Bytes: []byte{0x40}, BitLength: 2}},
		"null":        {data: []byte{0x05, 0x00}, expected: Null{}},
		"oid":         {data: []byte{0x06, 0x03, 0x2A, 0x03, 0x04}, expected: "1.2.3.4"},
		"utf8 string": {data: []byte{0x0C, 0x02, 0x68, 0x69}, expected: "hi"},
		"utc time": {
			data:     append([]byte{0x17, 0x0D}, "260831120000Z"...),
			expected: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC),
		},
		"octet string passthrough": {data: []byte{0x04, 0x02, 0xAB, 0xCD}, expected: []byte{0xAB, 0xCD}},
		"non universal":            {data: []byte{0x80, 0x02, 0x01, 0x02}, expected: []byte{0x01, 0x02}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(test.data)
			if err != nil {
				t.Fatalf("Parse() returned an unexpected error: %s", err)
			}
			v, err := n.Value()
			if err != nil {
				t.Fatalf("Value() returned an unexpected error: %s", err)
			}
			if e, ok := test.expected.(time.Time); ok {
				if !v.(time.Time).Equal(e) {
					t.Errorf("Value() = %v, expected %v", v, e)
				}
				return
			}
			if !reflect.DeepEqual(v, test.expected) {
				t.Errorf("Value() = %v, expected %v", v, test.expected)
			}
		})
	}
}

func TestNodeValue_Constructed(t *testing.T) {
	n, err := Parse([]byte{0x30, 0x06, 0x02, 0x01, 0x2A, 0x01, 0x01, 0xFF})
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %s", err)
	}
	v, err := n.Value()
	if err != nil {
		t.Fatalf("Value() returned an unexpected error: %s", err)
	}
	children, ok := v.([]*Node)
	if !ok {
		t.Fatalf("Value() = %T, expected []*Node", v)
	}
	if len(children) != 2 {
		t.Errorf("Value() returned %d children, expected 2", len(children))
	}
}

func TestNodeValue_Memoized(t *testing.T) {
	n, err := Parse([]byte{0x06, 0x03, 0x2A, 0x03, 0x04})
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %s", err)
	}
	first, err := n.Value()
	if err != nil {
		t.Fatalf("Value() returned an unexpected error: %s", err)
	}
	second, err := n.Value()
	if err != nil {
		t.Fatalf("Value() returned an unexpected error: %s", err)
	}
	if first != second {
		t.Error("Value() did not memoize the result")
	}
}

func TestNodeContents_FromChildren(t *testing.T) {
	n := NewConstructed(ClassUniversal, TagSequence,
		NewValue(ClassUniversal, TagInteger, []byte{0x2A}),
	)
	if !bytes.Equal(n.Contents(), []byte{0x02, 0x01, 0x2A}) {
		t.Errorf("Contents() = %X, expected %X", n.Contents(), []byte{0x02, 0x01, 0x2A})
	}
}

func TestNodeEqual(t *testing.T) {
	a := NewConstructed(ClassUniversal, TagSequence,
		NewValue(ClassUniversal, TagInteger, []byte{0x2A}),
	)
	b, err := Parse([]byte{0x30, 0x03, 0x02, 0x01, 0x2A})
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %s", err)
	}
	if !a.Equal(b) {
		t.Errorf("Equal() = false for %s and %s", a, b)
	}
	c := NewValue(ClassUniversal, TagInteger, []byte{0x2B})
	if a.Equal(c) {
		t.Errorf("Equal() = true for %s and %s", a, c)
	}
}

func TestNodeString(t *testing.T) {
	tests := map[string]struct {
		node     *Node
		expected string
	}{
		"universal": {
			node:     NewValue(ClassUniversal, TagInteger, []byte{0x2A}),
			expected: "[UNIVERSAL 2]/p:1",
		},
		"sequence": {
			node:     NewValue(ClassUniversal, TagSequence, []byte{0x01, 0x01, 0xFF}),
			expected: "[UNIVERSAL 16]/c:3",
		},
		"context specific": {
			node:     NewValue(ClassContextSpecific, 0, []byte{0xAB}),
			expected: "[0]/p:1",
		},
		"application": {
			node:     NewValue(ClassApplication, 1, nil),
			expected: "[APPLICATION 1]/p:0",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.node.String(); got != test.expected {
				t.Errorf("String() = %q, expected %q", got, test.expected)
			}
		})
	}
}
