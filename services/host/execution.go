// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package host

import (
	"github.com/orbs-network/my-concordium-project/contracts/sdk"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/pkg/errors"
)

func runInit(contract *sdk.ContractInfo, ctx sdk.InitContext) (state sdk.State, err error) {
	defer func() {
		if r := recover(); r != nil {
			state = nil
			err = errors.Errorf("init of contract '%s' panicked: %v", contract.Name, r)
		}
	}()

	state, err = contract.Init(ctx)
	if err == nil && state == nil {
		err = errors.Errorf("init of contract '%s' returned no state", contract.Name)
	}
	return
}

func runReceive(entrypoint sdk.EntrypointInfo, ctx sdk.ReceiveContext, host sdk.Host) (returnValue serialization.Serial, err error) {
	defer func() {
		if r := recover(); r != nil {
			returnValue = nil
			err = errors.Errorf("entrypoint '%s' panicked: %v", entrypoint.Name, r)
		}
	}()

	return entrypoint.Implementation(ctx, host)
}
