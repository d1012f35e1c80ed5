// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	ACCOUNT_ADDRESS_SIZE_BYTES = 32

	accountAddressVersion = 1
	checksumSizeBytes     = 4
)

// Address identifies the sender of a call. It is either an AccountAddress or a ContractAddress.
type Address interface {
	fmt.Stringer
	isAddress()
}

type AccountAddress [ACCOUNT_ADDRESS_SIZE_BYTES]byte

type ContractAddress struct {
	Index    uint64
	Subindex uint64
}

func (AccountAddress) isAddress()  {}
func (ContractAddress) isAddress() {}

// String returns the base58check form (version byte 1) used by wallets and explorers.
func (a AccountAddress) String() string {
	payload := make([]byte, 0, 1+ACCOUNT_ADDRESS_SIZE_BYTES+checksumSizeBytes)
	payload = append(payload, accountAddressVersion)
	payload = append(payload, a[:]...)
	payload = append(payload, checksum(payload)...)
	return base58.Encode(payload)
}

func ParseAccountAddress(s string) (AccountAddress, error) {
	var res AccountAddress
	decoded, err := base58.Decode(s)
	if err != nil {
		return res, errors.Wrapf(err, "account address %q is not base58", s)
	}
	if len(decoded) != 1+ACCOUNT_ADDRESS_SIZE_BYTES+checksumSizeBytes {
		return res, errors.Errorf("account address %q has length %d", s, len(decoded))
	}
	if decoded[0] != accountAddressVersion {
		return res, errors.Errorf("account address %q has unknown version %d", s, decoded[0])
	}
	body, sum := decoded[:len(decoded)-checksumSizeBytes], decoded[len(decoded)-checksumSizeBytes:]
	if !bytes.Equal(checksum(body), sum) {
		return res, errors.Errorf("account address %q has bad checksum", s)
	}
	copy(res[:], body[1:])
	return res, nil
}

func (c ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", c.Index, c.Subindex)
}

func ParseContractAddress(s string) (ContractAddress, error) {
	var res ContractAddress
	if _, err := fmt.Sscanf(s, "<%d,%d>", &res.Index, &res.Subindex); err != nil {
		return res, errors.Wrapf(err, "contract address %q is not of the form <index,subindex>", s)
	}
	if res.String() != s {
		return ContractAddress{}, errors.Errorf("contract address %q has trailing characters", s)
	}
	return res, nil
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumSizeBytes]
}
