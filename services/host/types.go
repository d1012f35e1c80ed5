// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package host

import (
	"github.com/orbs-network/my-concordium-project/primitives"
)

type ExecutionResult uint8

const (
	EXECUTION_RESULT_RESERVED ExecutionResult = iota
	EXECUTION_RESULT_SUCCESS
	EXECUTION_RESULT_REJECTED
	EXECUTION_RESULT_ERROR_INPUT
	EXECUTION_RESULT_ERROR_UNEXPECTED
)

func (r ExecutionResult) String() string {
	switch r {
	case EXECUTION_RESULT_SUCCESS:
		return "SUCCESS"
	case EXECUTION_RESULT_REJECTED:
		return "REJECTED"
	case EXECUTION_RESULT_ERROR_INPUT:
		return "ERROR_INPUT"
	case EXECUTION_RESULT_ERROR_UNEXPECTED:
		return "ERROR_UNEXPECTED"
	default:
		return "RESERVED"
	}
}

type DeployInput struct {
	ContractName primitives.ContractName
	Origin       primitives.AccountAddress
	Parameter    []byte
}

type DeployOutput struct {
	Address    primitives.ContractAddress
	Result     ExecutionResult
	RejectCode int32
}

// UpdateInput describes a call to an entrypoint. A nil Sender means the Invoker calls directly.
type UpdateInput struct {
	Address    primitives.ContractAddress
	Entrypoint primitives.EntrypointName
	Invoker    primitives.AccountAddress
	Sender     primitives.Address
	Parameter  []byte
}

type UpdateOutput struct {
	ReturnValue []byte
	Result      ExecutionResult
	RejectCode  int32
}
