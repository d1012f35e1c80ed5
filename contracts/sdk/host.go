// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sdk

import "github.com/orbs-network/my-concordium-project/serialization"

// State is the contract-defined value an instance owns. The host keeps it serialized between calls.
type State interface {
	serialization.Serial
	serialization.Deserial
}

// Host gives an entrypoint access to the state of the instance it runs on.
// Changes made through State() are committed by the host only if the entrypoint
// is mutable and returns no error.
type Host interface {
	State() State
}

type stateHost struct {
	state State
}

func NewStateHost(state State) Host {
	return &stateHost{state: state}
}

func (h *stateHost) State() State {
	return h.state
}
