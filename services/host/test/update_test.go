// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"context"
	"github.com/orbs-network/my-concordium-project/contracts/myconcordiumproject"
	"github.com/orbs-network/my-concordium-project/instrumentation/metric"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/host"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGreetingScenario(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	out, err := h.setGreeting(address, ACCOUNT, "Hello World!")
	require.NoError(t, err, "account should be allowed to set the greeting")
	require.Equal(t, host.EXECUTION_RESULT_SUCCESS, out.Result)
	require.Empty(t, out.ReturnValue)
	require.Equal(t, "Hello World!", h.view(address))

	out, err = h.setGreeting(address, CONTRACT, "Oops")
	require.Equal(t, myconcordiumproject.ContractSetter, err)
	require.Equal(t, host.EXECUTION_RESULT_REJECTED, out.Result)
	require.EqualValues(t, -2, out.RejectCode)
	require.Equal(t, "Hello World!", h.view(address))
}

func TestSetGreetingWithoutExplicitSenderUsesInvoker(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	_, err := h.service.Update(context.Background(), updateInput(address).WithGreeting("from invoker").Build())
	require.NoError(t, err)
	require.Equal(t, "from invoker", h.view(address))
}

func TestAnyAccountMaySetGreeting(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	_, err := h.setGreeting(address, OTHER_ACCOUNT, "not the owner")
	require.NoError(t, err)
	require.Equal(t, "not the owner", h.view(address))
}

func TestSetGreetingWithMalformedParameterLeavesStateUnchanged(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	for _, parameter := range [][]byte{{}, {1, 0}, {4, 0, 0, 0, 'a'}, append(serialization.ToBytes(serialization.String("x")), 1)} {
		out, err := h.service.Update(context.Background(), updateInput(address).WithRawParameter(parameter).Build())
		require.Equal(t, myconcordiumproject.ParseParamsError, err)
		require.EqualValues(t, -1, out.RejectCode)
		require.Equal(t, "Hi", h.view(address))
	}
}

func TestViewIsAllowedForContractsAndIdempotent(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	out, err := h.service.Invoke(context.Background(), updateInput(address).WithView().WithSender(CONTRACT).Build())
	require.NoError(t, err)
	require.Equal(t, serialization.ToBytes(&myconcordiumproject.State{Description: "Hi"}), out.ReturnValue)

	again, err := h.service.Update(context.Background(), updateInput(address).WithView().Build())
	require.NoError(t, err)
	require.Equal(t, out.ReturnValue, again.ReturnValue)
}

func TestInvokeDoesNotCommitMutations(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	out, err := h.service.Invoke(context.Background(), updateInput(address).WithGreeting("dry run").Build())
	require.NoError(t, err)
	require.Equal(t, host.EXECUTION_RESULT_SUCCESS, out.Result)
	require.Equal(t, "Hi", h.view(address))
}

func TestUpdateUnknownInstanceFails(t *testing.T) {
	h := newHarness(t)

	out, err := h.service.Update(context.Background(), updateInput(primitives.ContractAddress{Index: 5}).Build())
	require.Error(t, err)
	require.Equal(t, host.EXECUTION_RESULT_ERROR_INPUT, out.Result)
}

func TestUpdateUnknownEntrypointFails(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	out, err := h.service.Update(context.Background(), updateInput(address).WithUnknownEntrypoint().Build())
	require.Error(t, err)
	require.Equal(t, host.EXECUTION_RESULT_ERROR_INPUT, out.Result)
}

func TestInstanceStateReturnsCommittedState(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	state, err := h.service.InstanceState(context.Background(), address)
	require.NoError(t, err)
	require.Equal(t, serialization.ToBytes(&myconcordiumproject.State{Description: "Hi"}), state)

	_, err = h.service.InstanceState(context.Background(), primitives.ContractAddress{Index: 42})
	require.Error(t, err)
}

func TestRejectsAreCounted(t *testing.T) {
	h := newHarness(t)
	address := h.deploy("Hi")

	_, err := h.setGreeting(address, CONTRACT, "Oops")
	require.Equal(t, myconcordiumproject.ContractSetter, err)

	rejects := h.registry.ExportAll()["Host.Rejects.Rate"].(metric.RateExport)
	require.EqualValues(t, 1, rejects.Total, "one rejected call")

	calls := h.registry.ExportAll()["Host.Calls.Rate"].(metric.RateExport)
	require.EqualValues(t, 2, calls.Total, "deploy and the rejected update")
}
