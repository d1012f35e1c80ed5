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

func (r *CommandRunner) HandleViewCommand(args []string) (output string, err error) {
	flagSet := flag.NewFlagSet("view", flag.ContinueOnError)
	common := registerCommonFlags(flagSet)
	addressPtr := flagSet.String("address", "<0,0>", "instance address <index,subindex>")

	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	address, err := primitives.ParseContractAddress(*addressPtr)
	if err != nil {
		return "", err
	}

	s, err := r.open(common)
	if err != nil {
		return "", err
	}
	defer s.closeInto(&err)

	out, err := s.host.Invoke(context.Background(), &host.UpdateInput{
		Address:    address,
		Entrypoint: myconcordiumproject.METHOD_VIEW.Name,
	})
	res := resultOf(out.Result, out.RejectCode, err)
	if err != nil {
		return toJson(res)
	}

	var state myconcordiumproject.State
	if err := serialization.FromBytes(out.ReturnValue, &state); err != nil {
		return "", errors.Wrap(err, "view returned a malformed state")
	}
	res.Description = state.Description
	return toJson(res)
}
