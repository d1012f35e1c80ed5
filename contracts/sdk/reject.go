// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sdk

import (
	"github.com/pkg/errors"
	"math"
)

// Reject is implemented by contract error types. Codes are negative; the n-th declared
// variant of a contract error enum maps to -n.
type Reject interface {
	error
	RejectCode() int32
}

// RejectCodeTrap is reported for failures that are not a contract Reject (runtime errors, panics).
const RejectCodeTrap int32 = math.MinInt32

// RejectCodeOf returns 0 for nil, the contract's code for a Reject and RejectCodeTrap otherwise.
func RejectCodeOf(err error) int32 {
	if err == nil {
		return 0
	}
	if r, ok := errors.Cause(err).(Reject); ok {
		return r.RejectCode()
	}
	return RejectCodeTrap
}
