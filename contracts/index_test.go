// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package contracts

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAllContractsAreDeclaredCompletely(t *testing.T) {
	for name, contract := range Contracts {
		require.Equal(t, name, contract.Name, "contract %s is registered under the wrong name", name)
		require.NotNil(t, contract.Init, "contract %s has no init", name)
		require.NotNil(t, contract.NewState, "contract %s has no state constructor", name)

		seen := make(map[string]bool)
		for _, entrypoint := range contract.Entrypoints {
			require.NotNil(t, entrypoint.Implementation, "%s has no implementation", name.ReceiveName(entrypoint.Name))
			require.False(t, seen[string(entrypoint.Name)], "%s is declared twice", name.ReceiveName(entrypoint.Name))
			seen[string(entrypoint.Name)] = true
		}
	}
}

func TestGreetingContractIsRegistered(t *testing.T) {
	_, found := Contracts["my_concordium_project"]
	require.True(t, found)
}
