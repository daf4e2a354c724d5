// Copyright the Perlint authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/perlint-tools/perlint/analysis/config"
	"github.com/perlint-tools/perlint/cmd/perlint/checkconfig"
	"github.com/perlint-tools/perlint/cmd/perlint/explain"
	"github.com/perlint-tools/perlint/cmd/perlint/rules"
	"github.com/perlint-tools/perlint/cmd/perlint/tools"
)

const usage = `Perlint: rule-control tooling
Usage:
  perlint [tool] [options]
Tools:
  - rules: print the effective rule set resolved from a configuration
  - check-config: validate a configuration file, optionally dumping the effective options
  - explain: describe rules or group aliases and their resolved state
Examples:
  Print the effective rule set: perlint rules --config=perlintrc
  Validate a configuration: perlint check-config --config=perlintrc --dump`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "error: expected subcommand\n%s\n", usage)
		os.Exit(2)
	}

	// hardcode help flag
	if snd := os.Args[1]; snd == "-help" || snd == "--help" {
		fmt.Println(usage)
		return
	}

	// hardcode version flag
	if snd := os.Args[1]; snd == "-version" || snd == "--version" {
		fmt.Println(config.Version)
		return
	}

	args := os.Args[2:]
	switch cmd := os.Args[1]; cmd {
	case "rules":
		flags, err := tools.NewCommonFlags("rules", args, rules.Usage)
		if err != nil {
			errExit(err)
		}
		if err := rules.Run(flags); err != nil {
			errExit(err)
		}
	case "check-config":
		flags, err := checkconfig.NewFlags(args)
		if err != nil {
			errExit(err)
		}
		if err := checkconfig.Run(flags); err != nil {
			errExit(err)
		}
	case "explain":
		flags, err := tools.NewCommonFlags("explain", args, explain.Usage)
		if err != nil {
			errExit(err)
		}
		if err := explain.Run(flags); err != nil {
			errExit(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "error: unknown subcommand %q\n%s\n", cmd, usage)
		os.Exit(2)
	}
}

func errExit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
