// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"context"
	"github.com/orbs-network/my-concordium-project/config"
	"github.com/orbs-network/my-concordium-project/contracts"
	"github.com/orbs-network/my-concordium-project/contracts/myconcordiumproject"
	"github.com/orbs-network/my-concordium-project/contracts/sdk"
	"github.com/orbs-network/my-concordium-project/instrumentation/metric"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/host"
	"github.com/orbs-network/my-concordium-project/services/statestorage/adapter"
	"github.com/orbs-network/my-concordium-project/services/statestorage/adapter/memory"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

var (
	ACCOUNT       = primitives.AccountAddress{1}
	OTHER_ACCOUNT = primitives.AccountAddress{2}
	CONTRACT      = primitives.ContractAddress{Index: 99, Subindex: 0}
)

type harness struct {
	t           *testing.T
	service     *host.Service
	persistence adapter.StatePersistence
	registry    metric.Registry
}

func newHarness(t *testing.T, overrides ...config.HostConfigKeyValue) *harness {
	registry := metric.NewRegistry()
	persistence := memory.NewStatePersistence(registry)
	return newHarnessWithPersistence(t, persistence, registry, overrides...)
}

func newHarnessWithPersistence(t *testing.T, persistence adapter.StatePersistence, registry metric.Registry, overrides ...config.HostConfigKeyValue) *harness {
	return newHarnessWithContracts(t, log.DefaultTestingLogger(t), contracts.Contracts, persistence, registry, overrides...)
}

func newHarnessWithContracts(t *testing.T, logger log.Logger, deployable map[primitives.ContractName]*sdk.ContractInfo, persistence adapter.StatePersistence, registry metric.Registry, overrides ...config.HostConfigKeyValue) *harness {
	service, err := host.NewHost(config.ForTests(overrides...), deployable, persistence, logger, registry)
	require.NoError(t, err)
	return &harness{
		t:           t,
		service:     service,
		persistence: persistence,
		registry:    registry,
	}
}

func (h *harness) deploy(description string) primitives.ContractAddress {
	out, err := h.service.Deploy(context.Background(), deployInput().WithDescription(description).Build())
	require.NoError(h.t, err, "deploy should succeed")
	require.Equal(h.t, host.EXECUTION_RESULT_SUCCESS, out.Result)
	return out.Address
}

func (h *harness) view(address primitives.ContractAddress) string {
	out, err := h.service.Invoke(context.Background(), updateInput(address).WithView().Build())
	require.NoError(h.t, err, "view should succeed")
	require.Equal(h.t, host.EXECUTION_RESULT_SUCCESS, out.Result)

	var state myconcordiumproject.State
	require.NoError(h.t, serialization.FromBytes(out.ReturnValue, &state))
	return state.Description
}

func (h *harness) setGreeting(address primitives.ContractAddress, sender primitives.Address, greeting string) (*host.UpdateOutput, error) {
	return h.service.Update(context.Background(), updateInput(address).WithGreeting(greeting).WithSender(sender).Build())
}
