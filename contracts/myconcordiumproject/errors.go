// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package myconcordiumproject

import (
	"fmt"
	"github.com/orbs-network/my-concordium-project/contracts/sdk"
)

// ContractError is the closed set of failures the contract rejects with.
type ContractError int32

const (
	// Failed parsing the parameter.
	ParseParamsError ContractError = iota + 1
	// A contract, not an account, tried to set the greeting.
	ContractSetter
)

func (e ContractError) Error() string {
	switch e {
	case ParseParamsError:
		return "ParseParamsError"
	case ContractSetter:
		return "ContractSetter"
	default:
		return fmt.Sprintf("ContractError(%d)", int32(e))
	}
}

func (e ContractError) RejectCode() int32 {
	return -int32(e)
}

var _ sdk.Reject = ParseParamsError

// contractErrorFrom converts a parameter decoding failure. Every codec failure is a ParseParamsError.
func contractErrorFrom(err error) ContractError {
	return ParseParamsError
}
