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
)

const CONTRACT_NAME = primitives.ContractName("my_concordium_project")

var CONTRACT = sdk.ContractInfo{
	Name:     CONTRACT_NAME,
	Init:     initialize,
	NewState: func() sdk.State { return &State{} },
	Entrypoints: []sdk.EntrypointInfo{
		METHOD_SET_GREETING,
		METHOD_VIEW,
	},
}

type Greeting = string

type State struct {
	Description Greeting
}

func (s *State) Serial(w *serialization.Writer) {
	w.WriteString(s.Description)
}

func (s *State) Deserial(c *serialization.Cursor) error {
	description, err := c.ReadString()
	if err != nil {
		return err
	}
	s.Description = description
	return nil
}

type InitParameter struct {
	Description Greeting
}

func (p *InitParameter) Serial(w *serialization.Writer) {
	w.WriteString(p.Description)
}

func (p *InitParameter) Deserial(c *serialization.Cursor) error {
	description, err := c.ReadString()
	if err != nil {
		return err
	}
	p.Description = description
	return nil
}

///////////////////////////////////////////////////////////////////////////

func initialize(ctx sdk.InitContext) (sdk.State, error) {
	var param InitParameter
	if err := decodeParameter(ctx.Parameter(), &param); err != nil {
		return nil, err
	}

	return &State{Description: param.Description}, nil
}

///////////////////////////////////////////////////////////////////////////

var METHOD_SET_GREETING = sdk.EntrypointInfo{
	Name:           "set_greeting",
	Mutable:        true,
	Implementation: setGreeting,
}

func setGreeting(ctx sdk.ReceiveContext, host sdk.Host) (serialization.Serial, error) {
	if err := ensureSenderIsAccount(ctx.Sender()); err != nil {
		return nil, err
	}

	var greeting serialization.String
	if err := decodeParameter(ctx.Parameter(), &greeting); err != nil {
		return nil, err
	}

	host.State().(*State).Description = Greeting(greeting)
	return nil, nil
}

///////////////////////////////////////////////////////////////////////////

var METHOD_VIEW = sdk.EntrypointInfo{
	Name:           "view",
	Mutable:        false,
	Implementation: view,
}

func view(ctx sdk.ReceiveContext, host sdk.Host) (serialization.Serial, error) {
	state := host.State().(*State)
	return &State{Description: state.Description}, nil
}

///////////////////////////////////////////////////////////////////////////

// only accounts may change the greeting, other contracts may not
func ensureSenderIsAccount(sender primitives.Address) error {
	switch sender.(type) {
	case primitives.AccountAddress:
		return nil
	case primitives.ContractAddress:
		return ContractSetter
	default: // no sender at all is never an account
		return ContractSetter
	}
}

func decodeParameter(cursor *serialization.Cursor, v serialization.Deserial) error {
	if err := serialization.Decode(cursor, v); err != nil {
		return contractErrorFrom(err)
	}
	return nil
}
