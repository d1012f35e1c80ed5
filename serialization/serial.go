// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package serialization

import "github.com/pkg/errors"

type Serial interface {
	Serial(w *Writer)
}

type Deserial interface {
	Deserial(c *Cursor) error
}

func ToBytes(v Serial) []byte {
	w := NewWriter()
	v.Serial(w)
	return w.Bytes()
}

// Decode reads v from the cursor and fails if the cursor is not fully consumed afterwards.
func Decode(c *Cursor, v Deserial) error {
	if err := v.Deserial(c); err != nil {
		return err
	}
	if c.Remaining() != 0 {
		return errors.Wrapf(ErrParse, "%d unexpected trailing bytes at offset %d", c.Remaining(), c.Offset())
	}
	return nil
}

func FromBytes(data []byte, v Deserial) error {
	return Decode(NewCursor(data), v)
}

func IsParseError(err error) bool {
	return err != nil && errors.Cause(err) == ErrParse
}

// String is a bare length-prefixed string value.
type String string

func (s String) Serial(w *Writer) {
	w.WriteString(string(s))
}

func (s *String) Deserial(c *Cursor) error {
	v, err := c.ReadString()
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}
