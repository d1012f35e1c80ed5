// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package adapter

import (
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/pkg/errors"
)

// InstanceRecord is everything the host keeps about a deployed instance.
type InstanceRecord struct {
	ContractName primitives.ContractName
	Owner        primitives.AccountAddress
	State        []byte
}

type StatePersistence interface {
	Read(address primitives.ContractAddress) (*InstanceRecord, bool, error)
	Write(address primitives.ContractAddress, record *InstanceRecord) error
	// NextIndex is the lowest contract index not yet written.
	NextIndex() (uint64, error)
}

func (r *InstanceRecord) Serial(w *serialization.Writer) {
	w.WriteString(string(r.ContractName))
	w.WriteBytes(r.Owner[:])
	w.WriteByteSlice(r.State)
}

func (r *InstanceRecord) Deserial(c *serialization.Cursor) error {
	name, err := c.ReadString()
	if err != nil {
		return errors.Wrap(err, "instance record contract name")
	}
	owner, err := c.ReadBytes(primitives.ACCOUNT_ADDRESS_SIZE_BYTES)
	if err != nil {
		return errors.Wrap(err, "instance record owner")
	}
	state, err := c.ReadByteSlice()
	if err != nil {
		return errors.Wrap(err, "instance record state")
	}

	r.ContractName = primitives.ContractName(name)
	copy(r.Owner[:], owner)
	r.State = state
	return nil
}

func (r *InstanceRecord) Clone() *InstanceRecord {
	state := make([]byte, len(r.State))
	copy(state, r.State)
	return &InstanceRecord{
		ContractName: r.ContractName,
		Owner:        r.Owner,
		State:        state,
	}
}
