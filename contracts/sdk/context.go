// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package sdk

import (
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"time"
)

// InitContext is what the host hands to a contract's init function. It is valid for one call only.
type InitContext interface {
	Origin() primitives.AccountAddress
	Parameter() *serialization.Cursor
	SlotTime() time.Time
}

// ReceiveContext is what the host hands to an entrypoint. Sender is the immediate caller,
// Invoker is the account that signed the transaction.
type ReceiveContext interface {
	Sender() primitives.Address
	Invoker() primitives.AccountAddress
	Self() primitives.ContractAddress
	Owner() primitives.AccountAddress
	Parameter() *serialization.Cursor
	SlotTime() time.Time
}

type initContext struct {
	origin    primitives.AccountAddress
	parameter []byte
	slotTime  time.Time
}

func NewInitContext(origin primitives.AccountAddress, parameter []byte, slotTime time.Time) InitContext {
	return &initContext{
		origin:    origin,
		parameter: parameter,
		slotTime:  slotTime,
	}
}

func (c *initContext) Origin() primitives.AccountAddress {
	return c.origin
}

// Parameter returns a fresh cursor positioned at the start of the parameter.
func (c *initContext) Parameter() *serialization.Cursor {
	return serialization.NewCursor(c.parameter)
}

func (c *initContext) SlotTime() time.Time {
	return c.slotTime
}

type ReceiveContextParams struct {
	Sender    primitives.Address
	Invoker   primitives.AccountAddress
	Self      primitives.ContractAddress
	Owner     primitives.AccountAddress
	Parameter []byte
	SlotTime  time.Time
}

type receiveContext struct {
	params ReceiveContextParams
}

func NewReceiveContext(params ReceiveContextParams) ReceiveContext {
	if params.Sender == nil {
		params.Sender = params.Invoker
	}
	return &receiveContext{params: params}
}

func (c *receiveContext) Sender() primitives.Address {
	return c.params.Sender
}

func (c *receiveContext) Invoker() primitives.AccountAddress {
	return c.params.Invoker
}

func (c *receiveContext) Self() primitives.ContractAddress {
	return c.params.Self
}

func (c *receiveContext) Owner() primitives.AccountAddress {
	return c.params.Owner
}

func (c *receiveContext) Parameter() *serialization.Cursor {
	return serialization.NewCursor(c.params.Parameter)
}

func (c *receiveContext) SlotTime() time.Time {
	return c.params.SlotTime
}
