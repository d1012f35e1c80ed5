// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package myconcordiumproject

import (
	"github.com/orbs-network/my-concordium-project/contracts/sdk"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var (
	ACC             = primitives.AccountAddress{}
	CONTRACT_SENDER = primitives.ContractAddress{Index: 7, Subindex: 0}
)

func initWith(t *testing.T, description string) *State {
	parameter := serialization.ToBytes(&InitParameter{Description: description})
	state, err := initialize(sdk.NewInitContext(ACC, parameter, time.Now()))
	require.NoError(t, err)
	return state.(*State)
}

func receiveFrom(sender primitives.Address, parameter []byte) sdk.ReceiveContext {
	return sdk.NewReceiveContext(sdk.ReceiveContextParams{
		Sender:    sender,
		Invoker:   ACC,
		Self:      primitives.ContractAddress{Index: 0},
		Parameter: parameter,
	})
}

func greetingBytes(s string) []byte {
	return serialization.ToBytes(serialization.String(s))
}

func viewDescription(t *testing.T, host sdk.Host) string {
	out, err := view(receiveFrom(ACC, nil), host)
	require.NoError(t, err)
	return out.(*State).Description
}

func TestSetGreet(t *testing.T) {
	host := sdk.NewStateHost(&State{Description: "Set New Greeting"})

	_, err := setGreeting(receiveFrom(ACC, greetingBytes("Hello World!")), host)

	require.NoError(t, err)
	require.Equal(t, "Hello World!", host.State().(*State).Description)
}

func TestInitThenViewReturnsInitialDescription(t *testing.T) {
	for _, s := range []string{"", "Hi", "héllo wörld", "🙂"} {
		host := sdk.NewStateHost(initWith(t, s))
		require.Equal(t, s, viewDescription(t, host))
	}
}

func TestInitFailsOnMalformedParameter(t *testing.T) {
	tests := []struct {
		name      string
		parameter []byte
	}{
		{"empty", []byte{}},
		{"truncated length", []byte{2, 0}},
		{"truncated body", []byte{5, 0, 0, 0, 'H'}},
		{"trailing bytes", append(greetingBytes("Hi"), 1)},
		{"invalid utf-8", []byte{1, 0, 0, 0, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := initialize(sdk.NewInitContext(ACC, tt.parameter, time.Now()))
			require.Equal(t, ParseParamsError, err)
			require.Nil(t, state, "no state should be produced")
		})
	}
}

func TestSetGreetingFromContractIsRejectedAndStateUnchanged(t *testing.T) {
	host := sdk.NewStateHost(initWith(t, "Hi"))

	_, err := setGreeting(receiveFrom(CONTRACT_SENDER, greetingBytes("Oops")), host)

	require.Equal(t, ContractSetter, err)
	require.Equal(t, "Hi", viewDescription(t, host))
}

func TestAccessCheckRunsBeforeDecoding(t *testing.T) {
	host := sdk.NewStateHost(initWith(t, "Hi"))

	_, err := setGreeting(receiveFrom(CONTRACT_SENDER, []byte{0xff}), host)

	require.Equal(t, ContractSetter, err, "contract sender should be rejected even with a malformed parameter")
}

func TestSetGreetingWithMalformedParameterLeavesStateUnchanged(t *testing.T) {
	host := sdk.NewStateHost(initWith(t, "Hi"))

	for _, parameter := range [][]byte{{}, {3, 0, 0, 0, 'a'}, append(greetingBytes("x"), 0)} {
		_, err := setGreeting(receiveFrom(ACC, parameter), host)
		require.Equal(t, ParseParamsError, err)
		require.Equal(t, "Hi", viewDescription(t, host))
	}
}

func TestViewIsIdempotentAndReturnsCopy(t *testing.T) {
	host := sdk.NewStateHost(initWith(t, "Hi"))

	first, err := view(receiveFrom(CONTRACT_SENDER, nil), host)
	require.NoError(t, err, "contracts may view")
	first.(*State).Description = "mutated copy"

	require.Equal(t, "Hi", viewDescription(t, host))
	require.Equal(t, viewDescription(t, host), viewDescription(t, host))
}

func TestGreetingScenario(t *testing.T) {
	host := sdk.NewStateHost(initWith(t, "Hi"))

	_, err := setGreeting(receiveFrom(ACC, greetingBytes("Hello World!")), host)
	require.NoError(t, err)
	require.Equal(t, "Hello World!", viewDescription(t, host))

	_, err = setGreeting(receiveFrom(CONTRACT_SENDER, greetingBytes("Oops")), host)
	require.Equal(t, ContractSetter, err)
	require.Equal(t, "Hello World!", viewDescription(t, host))
}

func TestRejectCodes(t *testing.T) {
	require.EqualValues(t, -1, ParseParamsError.RejectCode())
	require.EqualValues(t, -2, ContractSetter.RejectCode())
	require.EqualValues(t, -2, sdk.RejectCodeOf(ContractSetter))
}

func TestContractDeclaration(t *testing.T) {
	setter, found := CONTRACT.Entrypoint("set_greeting")
	require.True(t, found)
	require.True(t, setter.Mutable)

	viewer, found := CONTRACT.Entrypoint("view")
	require.True(t, found)
	require.False(t, viewer.Mutable)

	_, found = CONTRACT.Entrypoint("unknown")
	require.False(t, found)
}

func TestStateSerializationIsLengthPrefixedString(t *testing.T) {
	require.Equal(t, greetingBytes("Hi"), serialization.ToBytes(&State{Description: "Hi"}))

	var decoded State
	require.NoError(t, serialization.FromBytes(greetingBytes("Hi"), &decoded))
	require.Equal(t, "Hi", decoded.Description)
}
