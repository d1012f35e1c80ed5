// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package serialization

import "github.com/orbs-network/membuffers/go"

type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) WriteUint32(v uint32) {
	b := make([]byte, 4)
	membuffers.WriteUint32(b, v)
	w.buf = append(w.buf, b...)
}

func (w *Writer) WriteUint64(v uint64) {
	b := make([]byte, 8)
	membuffers.WriteUint64(b, v)
	w.buf = append(w.buf, b...)
}

func (w *Writer) WriteBytes(v []byte) {
	w.buf = append(w.buf, v...)
}

func (w *Writer) WriteString(v string) {
	w.WriteUint32(uint32(len(v)))
	w.buf = append(w.buf, v...)
}

func (w *Writer) WriteByteSlice(v []byte) {
	w.WriteUint32(uint32(len(v)))
	w.buf = append(w.buf, v...)
}
