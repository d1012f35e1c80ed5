// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package serialization

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestReadIntegersAreLittleEndian(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x00, 0x00, 0x00, 0x02, 0, 0, 0, 0, 0, 0, 0})

	u32, err := c.ReadUint32()
	require.NoError(t, err)
	require.EqualValues(t, 1, u32)

	u64, err := c.ReadUint64()
	require.NoError(t, err)
	require.EqualValues(t, 2, u64)

	require.Zero(t, c.Remaining())
}

func TestReadStringOfEncodedValue(t *testing.T) {
	data := ToBytes(String("Hello World!"))
	require.Equal(t, []byte{12, 0, 0, 0}, data[:4])

	s, err := NewCursor(data).ReadString()
	require.NoError(t, err)
	require.Equal(t, "Hello World!", s)
}

func TestReadStringEmpty(t *testing.T) {
	s, err := NewCursor([]byte{0, 0, 0, 0}).ReadString()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestReadFailsOnTruncatedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"partial length prefix", []byte{5, 0}},
		{"body shorter than length", []byte{5, 0, 0, 0, 'a', 'b'}},
		{"huge length", []byte{0xff, 0xff, 0xff, 0xff, 'a'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCursor(tt.data).ReadString()
			require.Error(t, err)
			require.True(t, IsParseError(err), "error should be a parse error: %v", err)
		})
	}
}

func TestReadStringRejectsInvalidUtf8(t *testing.T) {
	_, err := NewCursor([]byte{2, 0, 0, 0, 0xc3, 0x28}).ReadString()
	require.True(t, IsParseError(err), "invalid utf-8 should be a parse error")
}

func TestCursorDoesNotAdvanceOnFailure(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	_, err := c.ReadUint32()
	require.Error(t, err)
	require.Equal(t, 0, c.Offset())
}

func TestReadBytesReturnsCopy(t *testing.T) {
	data := []byte{1, 2, 3}
	b, err := NewCursor(data).ReadBytes(3)
	require.NoError(t, err)
	data[0] = 9
	require.Equal(t, []byte{1, 2, 3}, b)
}

func TestByteSliceRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteByteSlice([]byte{0xde, 0xad})
	w.WriteUint64(1 << 40)

	c := NewCursor(w.Bytes())
	b, err := c.ReadByteSlice()
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad}, b)
	v, err := c.ReadUint64()
	require.NoError(t, err)
	require.EqualValues(t, uint64(1<<40), v)
}
