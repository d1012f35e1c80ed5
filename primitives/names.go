// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

type ContractName string

type EntrypointName string

func (n ContractName) String() string {
	return string(n)
}

// InitName is the exported name of the contract's init function.
func (n ContractName) InitName() string {
	return "init_" + string(n)
}

func (n ContractName) ReceiveName(entrypoint EntrypointName) string {
	return string(n) + "." + string(entrypoint)
}

func (e EntrypointName) String() string {
	return string(e)
}
