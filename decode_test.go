// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"bytes"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		data        []byte
		class       Class
		tag         Tag
		constructed bool
		contents    []byte
		children    int
	}{
		"boolean": {
			data:     []byte{0x01, 0x01, 0xFF},
			tag:      TagBoolean,
			contents: []byte{0xFF},
		},
		"sequence": {
			data:        []byte{0x30, 0x06, 0x02, 0x01, 0x2A, 0x01, 0x01, 0xFF},
			tag:         TagSequence,
			constructed: true,
			contents:    []byte{0x02, 0x01, 0x2A, 0x01, 0x01, 0xFF},
			children:    2,
		},
		"sequence without constructed bit": {
			// The SEQUENCE tag number forces constructedness.
			data:        []byte{0x10, 0x03, 0x02, 0x01, 0x2A},
			tag:         TagSequence,
			constructed: true,
			contents:    []byte{0x02, 0x01, 0x2A},
			children:    1,
		},
		"context specific": {
			data:     []byte{0x80, 0x02, 0xAB, 0xCD},
			class:    ClassContextSpecific,
			tag:      0,
			contents: []byte{0xAB, 0xCD},
		},
		"long form length": {
			data:     append([]byte{0x04, 0x81, 0x80}, make([]byte, 128)...),
			tag:      TagOctetString,
			contents: make([]byte, 128),
		},
		"indefinite length marker": {
			// A long-form count of zero decodes as length zero.
			data:        []byte{0x30, 0x80},
			tag:         TagSequence,
			constructed: true,
			contents:    []byte{},
		},
		"trailing bytes ignored": {
			data:     []byte{0x05, 0x00, 0xDE, 0xAD},
			tag:      TagNull,
			contents: []byte{},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(test.data)
			if err != nil {
				t.Fatalf("Parse() returned an unexpected error: %s", err)
			}
			if n.Class != test.class || n.Tag != test.tag || n.Constructed != test.constructed {
				t.Errorf("Parse() = %s, expected class %d, tag %d, constructed %t", n, test.class, test.tag, test.constructed)
			}
			if !bytes.Equal(n.Contents(), test.contents) {
				t.Errorf("Parse() contents = %X, expected %X", n.Contents(), test.contents)
			}
			children, err := n.Children()
			if err != nil {
				t.Fatalf("Children() returned an unexpected error: %s", err)
			}
			if len(children) != test.children {
				t.Errorf("Children() returned %d nodes, expected %d", len(children), test.children)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		data []byte
		err  error
	}{
		"empty input":            {data: []byte{}, err: &LengthError{Available: 0, Requested: 1}},
		"missing length":         {data: []byte{0x30}, err: &LengthError{Available: 1, Requested: 2}},
		"content overrun":        {data: []byte{0x02, 0x05, 0x01}, err: &LengthError{Available: 3, Requested: 7}},
		"high tag number":        {data: []byte{0x1F, 0x85, 0x2A, 0x01, 0x00}, err: errHighTagNumber},
		"too many length octets": {data: []byte{0x04, 0x87, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, err: errLengthTooLong},
		"null with content":      {data: []byte{0x05, 0x01, 0x00}, err: errInvalidNull},
		"child overrun":          {data: []byte{0x30, 0x03, 0x02, 0x05, 0x01}, err: &LengthError{Available: 3, Requested: 7}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(test.data)
			if err == nil {
				t.Fatal("Parse() did not return an error")
			}
			var lerr *LengthError
			if errors.As(test.err, &lerr) {
				var got *LengthError
				if !errors.As(err, &got) {
					t.Fatalf("Parse() returned %T, expected *LengthError", err)
				}
				if got.Available != lerr.Available || got.Requested != lerr.Requested {
					t.Errorf("Parse() error = %s, expected %s", got, lerr)
				}
				return
			}
			if !errors.Is(err, test.err) {
				t.Errorf("Parse() error = %s, expected %s", err, test.err)
			}
		})
	}
}

func TestParseShallow(t *testing.T) {
	data := []byte{0x30, 0x06, 0x02, 0x01, 0x2A, 0x01, 0x01, 0xFF}
	n, err := ParseShallow(data)
	if err != nil {
		t.Fatalf("ParseShallow() returned an unexpected error: %s", err)
	}
	if n.children != nil {
		t.Error("ParseShallow() decoded children eagerly")
	}
	children, err := n.Children()
	if err != nil {
		t.Fatalf("Children() returned an unexpected error: %s", err)
	}
	if len(children) != 2 {
		t.Fatalf("Children() returned %d nodes, expected 2", len(children))
	}
	if children[0].Tag != TagInteger || children[1].Tag != TagBoolean {
		t.Errorf("Children() = [%s, %s], expected an INTEGER and a BOOLEAN", children[0], children[1])
	}
}

func TestParseShallow_InvalidChildren(t *testing.T) {
	// The contents declare a child longer than the available bytes. A shallow
	// parse succeeds; the error surfaces on first child access.
	data := []byte{0x30, 0x03, 0x02, 0x05, 0x01}
	n, err := ParseShallow(data)
	if err != nil {
		t.Fatalf("ParseShallow() returned an unexpected error: %s", err)
	}
	if _, err = n.Children(); err == nil {
		t.Error("Children() did not return an error")
	}
}

func TestParseExpect(t *testing.T) {
	data := []byte{0x30, 0x03, 0x02, 0x01, 0x2A}
	tests := map[string]struct {
		class Class
		tag   Tag
		err   error
	}{
		"match":          {class: ClassUniversal, tag: TagSequence},
		"class mismatch": {class: ClassApplication, tag: TagSequence, err: ErrClassMismatch},
		"tag mismatch":   {class: ClassUniversal, tag: TagSet, err: ErrTagMismatch},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := ParseExpect(data, test.class, test.tag)
			if test.err == nil {
				if err != nil {
					t.Fatalf("ParseExpect() returned an unexpected error: %s", err)
				}
				return
			}
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseExpect() error = %v, expected %s", err, test.err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Node == nil {
				t.Error("ParseExpect() error does not carry the decoded node")
			}
			if n != nil {
				t.Error("ParseExpect() returned a node alongside an error")
			}
		})
	}
}
