// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAccountAddressTextRoundTrip(t *testing.T) {
	var acc AccountAddress
	for i := range acc {
		acc[i] = byte(i)
	}

	parsed, err := ParseAccountAddress(acc.String())
	require.NoError(t, err)
	require.Equal(t, acc, parsed)
}

func TestParseAccountAddressRejectsBadChecksum(t *testing.T) {
	s := AccountAddress{7}.String()
	last := s[len(s)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	_, err := ParseAccountAddress(s[:len(s)-1] + string(replacement))
	require.Error(t, err)
}

func TestParseAccountAddressRejectsGarbage(t *testing.T) {
	_, err := ParseAccountAddress("0OIl")
	require.Error(t, err, "characters outside the base58 alphabet")

	_, err = ParseAccountAddress("3yZe7d")
	require.Error(t, err, "too short")
}

func TestContractAddressTextRoundTrip(t *testing.T) {
	addr := ContractAddress{Index: 42, Subindex: 0}
	require.Equal(t, "<42,0>", addr.String())

	parsed, err := ParseContractAddress("<42,0>")
	require.NoError(t, err)
	require.Equal(t, addr, parsed)

	_, err = ParseContractAddress("42,0")
	require.Error(t, err)
}

func TestAddressVariantsAreDistinguishable(t *testing.T) {
	senders := []Address{AccountAddress{}, ContractAddress{Index: 1}}

	var accounts, contracts int
	for _, sender := range senders {
		switch sender.(type) {
		case AccountAddress:
			accounts++
		case ContractAddress:
			contracts++
		}
	}
	require.Equal(t, 1, accounts)
	require.Equal(t, 1, contracts)
}

func TestEntrypointNames(t *testing.T) {
	name := ContractName("my_concordium_project")
	require.Equal(t, "init_my_concordium_project", name.InitName())
	require.Equal(t, "my_concordium_project.view", name.ReceiveName("view"))
}
