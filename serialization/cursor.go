// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package serialization

import (
	"github.com/orbs-network/membuffers/go"
	"github.com/pkg/errors"
	"unicode/utf8"
)

// ErrParse is the cause of every decoding failure. Check with errors.Cause.
var ErrParse = errors.New("parse error")

// Cursor reads little-endian values from an untrusted byte slice. It never reads past the end.
type Cursor struct {
	data   []byte
	offset int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) take(n int, what string) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, errors.Wrapf(ErrParse, "%s needs %d bytes at offset %d but only %d remain", what, n, c.offset, c.Remaining())
	}
	res := c.data[c.offset : c.offset+n]
	c.offset += n
	return res, nil
}

func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4, "u32")
	if err != nil {
		return 0, err
	}
	return membuffers.GetUint32(b), nil
}

func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take(8, "u64")
	if err != nil {
		return 0, err
	}
	return membuffers.GetUint64(b), nil
}

// ReadBytes returns a copy so callers may keep it after the cursor's buffer is reused.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.take(n, "bytes")
	if err != nil {
		return nil, err
	}
	res := make([]byte, n)
	copy(res, b)
	return res, nil
}

// ReadString reads a u32 length followed by that many bytes of UTF-8.
func (c *Cursor) ReadString() (string, error) {
	length, err := c.ReadUint32()
	if err != nil {
		return "", errors.Wrap(err, "string length")
	}
	if uint64(length) > uint64(c.Remaining()) {
		return "", errors.Wrapf(ErrParse, "string of length %d at offset %d but only %d bytes remain", length, c.offset, c.Remaining())
	}
	b, err := c.take(int(length), "string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrParse, "string at offset %d is not valid utf-8", c.offset-int(length))
	}
	return string(b), nil
}

// ReadByteSlice reads a u32 length followed by that many raw bytes.
func (c *Cursor) ReadByteSlice() ([]byte, error) {
	length, err := c.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "byte slice length")
	}
	if uint64(length) > uint64(c.Remaining()) {
		return nil, errors.Wrapf(ErrParse, "byte slice of length %d at offset %d but only %d bytes remain", length, c.offset, c.Remaining())
	}
	return c.ReadBytes(int(length))
}
