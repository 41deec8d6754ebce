// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pem implements the PEM textual armor of [RFC 7468] that usually
// wraps DER structures such as certificates and private keys. Unlike the
// standard library it preserves the order of encapsulated headers and decodes
// all blocks of a multi-block input at once.
//
// [RFC 7468]: https://www.rfc-editor.org/rfc/rfc7468
package pem

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
)

const (
	beginMarker = "-----BEGIN "
	endMarker   = "-----END "
	tailMarker  = "-----"

	// procType must be the first header of a block that carries it.
	procType = "Proc-Type"

	lineLength = 64
)

// ErrNoBlock is returned by [Decode] if the input contains no PEM block at
// all.
var ErrNoBlock = errors.New("pem: no block found")

// A Header is a single encapsulated header of a PEM block. Headers are kept
// as an ordered list because their order is significant, most notably for
// the Proc-Type header of encrypted keys.
type Header struct {
	Key   string
	Value string
}

// A Block is one decoded PEM block.
type Block struct {
	Type    string   // type from the BEGIN and END lines, e.g. "CERTIFICATE"
	Headers []Header // encapsulated headers in input order
	Bytes   []byte   // decoded body
}

// Decode parses all PEM blocks of in, in input order. Text outside of blocks
// is ignored. A malformed block, such as mismatched BEGIN and END types, an
// empty body or invalid base64, fails the whole decode. If in contains no
// block at all, [ErrNoBlock] is returned.
func Decode(in []byte) ([]*Block, error) {
	var blocks []*Block
	lines := strings.Split(string(in), "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if !strings.HasPrefix(line, beginMarker) || !strings.HasSuffix(line, tailMarker) {
			continue
		}
		block, next, err := decodeBlock(lines, i, strings.TrimSuffix(strings.TrimPrefix(line, beginMarker), tailMarker))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		i = next
	}
	if len(blocks) == 0 {
		return nil, ErrNoBlock
	}
	return blocks, nil
}

// decodeBlock parses one block whose BEGIN line sits at lines[start]. It
// returns the block and the index of its END line.
func decodeBlock(lines []string, start int, typ string) (*Block, int, error) {
	block := &Block{Type: typ}
	var body strings.Builder
	inHeaders := true
	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if strings.HasPrefix(line, endMarker) {
			endType := strings.TrimSuffix(strings.TrimPrefix(line, endMarker), tailMarker)
			if endType != typ {
				return nil, 0, errors.New("pem: mismatched type in END line: " + endType)
			}
			if err := finishBlock(block, body.String()); err != nil {
				return nil, 0, err
			}
			return block, i, nil
		}
		if line == "" {
			continue
		}
		if inHeaders {
			if key, value, found := strings.Cut(line, ":"); found {
				block.Headers = append(block.Headers, Header{
					Key:   strings.TrimSpace(key),
					Value: strings.TrimSpace(value),
				})
				continue
			}
			inHeaders = false
		}
		body.WriteString(line)
	}
	return nil, 0, errors.New("pem: missing END line for type " + typ)
}

// finishBlock decodes the collected base64 body into block. The body must be
// non-empty and must survive a base64 round trip unchanged, which rejects
// non-canonical encodings.
func finishBlock(block *Block, body string) error {
	if body == "" {
		return errors.New("pem: block of type " + block.Type + " has no content")
	}
	decoded, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return errors.New("pem: invalid base64 in block of type " + block.Type)
	}
	if base64.StdEncoding.EncodeToString(decoded) != body {
		return errors.New("pem: non-canonical base64 in block of type " + block.Type)
	}
	block.Bytes = decoded
	return nil
}

// Encode returns the textual encoding of block: the BEGIN line, the headers
// followed by a blank line if there are any, the base64 body wrapped at 64
// columns and the END line. A Proc-Type header is emitted before all other
// headers regardless of its position in block.Headers. Lines end in "\n".
func Encode(block *Block) []byte {
	var buf bytes.Buffer
	buf.WriteString(beginMarker)
	buf.WriteString(block.Type)
	buf.WriteString(tailMarker)
	buf.WriteByte('\n')

	if len(block.Headers) > 0 {
		for _, h := range block.Headers {
			if h.Key == procType {
				writeHeader(&buf, h)
			}
		}
		for _, h := range block.Headers {
			if h.Key != procType {
				writeHeader(&buf, h)
			}
		}
		buf.WriteByte('\n')
	}

	body := base64.StdEncoding.EncodeToString(block.Bytes)
	for len(body) > lineLength {
		buf.WriteString(body[:lineLength])
		buf.WriteByte('\n')
		body = body[lineLength:]
	}
	if len(body) > 0 {
		buf.WriteString(body)
		buf.WriteByte('\n')
	}

	buf.WriteString(endMarker)
	buf.WriteString(block.Type)
	buf.WriteString(tailMarker)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// EncodeToString returns the textual encoding of block as a string.
func EncodeToString(block *Block) string {
	return string(Encode(block))
}

func writeHeader(buf *bytes.Buffer, h Header) {
	buf.WriteString(h.Key)
	buf.WriteString(": ")
	buf.WriteString(h.Value)
	buf.WriteByte('\n')
}
