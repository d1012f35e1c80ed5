// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sdk

import (
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
)

type InitFunc func(ctx InitContext) (State, error)

// ReceiveFunc returns the value to hand back to the caller, or nil when there is none.
type ReceiveFunc func(ctx ReceiveContext, host Host) (serialization.Serial, error)

type ContractInfo struct {
	Name        primitives.ContractName
	Init        InitFunc
	NewState    func() State
	Entrypoints []EntrypointInfo
}

type EntrypointInfo struct {
	Name           primitives.EntrypointName
	Mutable        bool
	Implementation ReceiveFunc
}

func (c *ContractInfo) Entrypoint(name primitives.EntrypointName) (EntrypointInfo, bool) {
	for _, e := range c.Entrypoints {
		if e.Name == name {
			return e, true
		}
	}
	return EntrypointInfo{}, false
}
