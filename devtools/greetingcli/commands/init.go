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
	"github.com/orbs-network/my-concordium-project/serialization"
	"github.com/orbs-network/my-concordium-project/services/host"
	"github.com/pkg/errors"
)

func (r *CommandRunner) HandleInitCommand(args []string) (output string, err error) {
	flagSet := flag.NewFlagSet("init", flag.ContinueOnError)
	common := registerCommonFlags(flagSet)
	descriptionPtr := flagSet.String("description", "", "initial greeting")
	originPtr := flagSet.String("origin", "", "base58 account address deploying the instance")

	if err := flagSet.Parse(args); err != nil {
		return "", errors.Wrap(err, "flag issues")
	}

	origin, err := parseAccount(*originPtr)
	if err != nil {
		return "", err
	}

	s, err := r.open(common)
	if err != nil {
		return "", err
	}
	defer s.closeInto(&err)

	out, err := s.host.Deploy(context.Background(), &host.DeployInput{
		ContractName: myconcordiumproject.CONTRACT_NAME,
		Origin:       origin,
		Parameter:    serialization.ToBytes(&myconcordiumproject.InitParameter{Description: *descriptionPtr}),
	})

	res := resultOf(out.Result, out.RejectCode, err)
	if err == nil {
		res.Address = out.Address.String()
	}
	return toJson(res)
}
