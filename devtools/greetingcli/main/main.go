// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package main

import (
	"fmt"
	"github.com/orbs-network/my-concordium-project/devtools/greetingcli/commands"
	"github.com/orbs-network/scribe/log"
	"os"
)

// greeting-cli init -description "Hi" [-origin <account>] [-state path/to/db] [-config path/to/config.json]
// greeting-cli set-greeting -address "<0,0>" -greeting "Hello World!" [-invoker <account>] [-sender-contract "<1,0>"]
// greeting-cli view -address "<0,0>"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Welcome to greeting-cli")
		fmt.Println("Example usage:")
		fmt.Println("")
		fmt.Println("$ greeting-cli init -description Hi")
		fmt.Println("  Create a new my_concordium_project instance")
		fmt.Println("")
		fmt.Println("$ greeting-cli set-greeting -address \"<0,0>\" -greeting \"Hello World!\"")
		fmt.Println("  Change the greeting of an instance")
		fmt.Println("")
		fmt.Println("$ greeting-cli view -address \"<0,0>\"")
		fmt.Println("  Read the state of an instance")
		fmt.Println("")
		os.Exit(0)
	}

	logger := log.GetLogger().WithOutput(log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()))
	runner := &commands.CommandRunner{Logger: logger}

	var output string
	var err error

	switch os.Args[1] {
	case "init":
		output, err = runner.HandleInitCommand(os.Args[2:])
	case "set-greeting":
		output, err = runner.HandleSetGreetingCommand(os.Args[2:])
	case "view":
		output, err = runner.HandleViewCommand(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %s\n", os.Args[1])
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(output)
}
