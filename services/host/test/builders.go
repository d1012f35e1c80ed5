// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package test

import (
	"github.com/orbs-network/my-concordium-project/contracts/myconcordiumproject"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/host"
)

type deployInputBuilder struct {
	input *host.DeployInput
}

func deployInput() *deployInputBuilder {
	return &deployInputBuilder{
		input: &host.DeployInput{
			ContractName: myconcordiumproject.CONTRACT_NAME,
			Origin:       ACCOUNT,
			Parameter:    serialization.ToBytes(&myconcordiumproject.InitParameter{Description: "Hi"}),
		},
	}
}

func (b *deployInputBuilder) WithDescription(description string) *deployInputBuilder {
	b.input.Parameter = serialization.ToBytes(&myconcordiumproject.InitParameter{Description: description})
	return b
}

func (b *deployInputBuilder) WithRawParameter(parameter []byte) *deployInputBuilder {
	b.input.Parameter = parameter
	return b
}

func (b *deployInputBuilder) WithUnknownContract() *deployInputBuilder {
	b.input.ContractName = "UnknownContract"
	return b
}

func (b *deployInputBuilder) Build() *host.DeployInput {
	return b.input
}

type updateInputBuilder struct {
	input *host.UpdateInput
}

func updateInput(address primitives.ContractAddress) *updateInputBuilder {
	return &updateInputBuilder{
		input: &host.UpdateInput{
			Address:    address,
			Entrypoint: myconcordiumproject.METHOD_SET_GREETING.Name,
			Invoker:    ACCOUNT,
			Parameter:  serialization.ToBytes(serialization.String("Hello World!")),
		},
	}
}

func (b *updateInputBuilder) WithGreeting(greeting string) *updateInputBuilder {
	b.input.Parameter = serialization.ToBytes(serialization.String(greeting))
	return b
}

func (b *updateInputBuilder) WithRawParameter(parameter []byte) *updateInputBuilder {
	b.input.Parameter = parameter
	return b
}

func (b *updateInputBuilder) WithSender(sender primitives.Address) *updateInputBuilder {
	b.input.Sender = sender
	return b
}

func (b *updateInputBuilder) WithView() *updateInputBuilder {
	b.input.Entrypoint = myconcordiumproject.METHOD_VIEW.Name
	b.input.Parameter = nil
	return b
}

func (b *updateInputBuilder) WithUnknownEntrypoint() *updateInputBuilder {
	b.input.Entrypoint = "unknown"
	return b
}

func (b *updateInputBuilder) Build() *host.UpdateInput {
	return b.input
}
