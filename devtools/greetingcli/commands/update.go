// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package commands

import (
	"context"
	"flag"
	"github.com/orbs-network/my-concordium-project/contracts/myconcordiumproject"
	"github.com/orbs-network/my-concordium-project/primitives"
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/host"
	"github.com/pkg/errors"
)

func (r *CommandRunner) HandleSetGreetingCommand(args []string) (output string, err error) {
	flagSet := flag.NewFlagSet("set-greeting", flag.ContinueOnError)
	common := registerCommonFlags(flagSet)
	addressPtr := flagSet.String("address", "<0,0>", "instance address <index,subindex>")
	greetingPtr := flagSet.String("greeting", "", "new greeting")
	invokerPtr := flagSet.String("invoker", "", "base58 account address signing the call")
	senderContractPtr := flagSet.String("sender-contract", "", "send the call as if from contract <index,subindex>")

	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	address, err := primitives.ParseContractAddress(*addressPtr)
	if err != nil {
		return "", err
	}
	invoker, err := parseAccount(*invokerPtr)
	if err != nil {
		return "", err
	}
	var sender primitives.Address
	if *senderContractPtr != "" {
		senderContract, err := primitives.ParseContractAddress(*senderContractPtr)
		if err != nil {
			return "", err
		}
		sender = senderContract
	}

	s, err := r.open(common)
	if err != nil {
		return "", err
	}
	defer s.closeInto(&err)

	out, err := s.host.Update(context.Background(), &host.UpdateInput{
		Address:    address,
		Entrypoint: myconcordiumproject.METHOD_SET_GREETING.Name,
		Invoker:    invoker,
		Sender:     sender,
		Parameter:  serialization.ToBytes(serialization.String(*greetingPtr)),
	})
	return toJson(resultOf(out.Result, out.RejectCode, err))
}
