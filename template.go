// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "errors"

// A Template describes the expected shape of a DER structure. Validating a
// node tree against a template checks classes and tags recursively and
// collects the nodes marked for capture. Templates are plain data and may be
// shared between concurrent validations.
type Template struct {
	// Name identifies this position in the structure in error messages, for
	// example "PrivateKeyInfo.version".
	Name string

	// Class is the expected class of the node.
	Class Class

	// Tag is the expected tag number. If Tags is non-empty it takes
	// precedence and the node may carry any of the listed tags. This
	// accommodates CHOICE types such as the character string alternatives of
	// a DirectoryString.
	Tag  Tag
	Tags []Tag

	// Optional marks a field of a constructed parent that may be absent. A
	// node that does not match an optional field is matched against the next
	// field instead.
	Optional bool

	// Capture names the matched node in the Captures of a successful
	// validation.
	Capture string

	// Fields describes the children of a constructed node in order.
	Fields []*Template

	// Content describes a complete DER structure embedded in the content
	// octets of this node, as in the PrivateKeyInfo of a PKCS#8 key. For a
	// BIT STRING node the leading padding count octet is skipped before the
	// embedded structure is decoded.
	Content *Template
}

// Captures maps the capture names of a [Template] to the nodes they matched
// during validation.
type Captures map[string]*Node

// Validate checks n against the template t. On success it returns the
// captured nodes. On failure it returns a [ValidationError] describing the
// first mismatch in depth-first order.
func Validate(n *Node, t *Template) (Captures, error) {
	caps := Captures{}
	if err := t.validate(n, caps); err != nil {
		return nil, err
	}
	return caps, nil
}

// ParseWithTemplate decodes one DER element from b like [Parse] and validates
// it against t in a single step.
func ParseWithTemplate(b []byte, t *Template) (Captures, error) {
	n, err := Parse(b)
	if err != nil {
		return nil, err
	}
	caps, err := Validate(n, t)
	var verr *ValidationError
	if errors.As(err, &verr) && verr.Node == nil {
		verr.Node = n
	}
	return caps, err
}

// validate implements [Validate] recursively. Captured nodes are added to
// caps as they match; on failure caps may hold a partial result.
func (t *Template) validate(n *Node, caps Captures) error {
	if n.Class != t.Class {
		return &ValidationError{Template: t.Name, Node: n, Err: ErrClassMismatch}
	}
	if !t.matchTag(n.Tag) {
		return &ValidationError{Template: t.Name, Node: n, Err: ErrTagMismatch}
	}
	if t.Capture != "" {
		caps[t.Capture] = n
	}

	if len(t.Fields) > 0 {
		if !n.Constructed {
			return &ValidationError{Template: t.Name, Node: n, Err: ErrNotConstructed}
		}
		children, err := n.Children()
		if err != nil {
			return &ValidationError{Template: t.Name, Node: n, Err: err}
		}
		i := 0
		for _, ft := range t.Fields {
			if i >= len(children) {
				if ft.Optional {
					continue
				}
				return &ValidationError{Template: ft.Name, Node: n, Err: ErrElementMissing}
			}
			if err := ft.validate(children[i], caps); err != nil {
				// An optional field that does not match is skipped and the
				// child is offered to the next field.
				if ft.Optional {
					continue
				}
				return err
			}
			i++
		}
	}

	if t.Content != nil {
		contents := n.Contents()
		if n.Class == ClassUniversal && n.Tag == TagBitString && len(contents) > 0 {
			contents = contents[1:]
		}
		embedded, err := Parse(contents)
		if err != nil {
			return &ValidationError{Template: t.Name, Node: n, Err: err}
		}
		if err := t.Content.validate(embedded, caps); err != nil {
			return err
		}
	}
	return nil
}

// matchTag reports whether tag satisfies the tag expectation of t.
func (t *Template) matchTag(tag Tag) bool {
	if len(t.Tags) == 0 {
		return tag == t.Tag
	}
	for _, alt := range t.Tags {
		if tag == alt {
			return true
		}
	}
	return false
}
