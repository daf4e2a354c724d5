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

// Package tools contains utility types and functions for perlint tool
// frontends.
package tools

import (
	"flag"
	"fmt"
	"os"

	"github.com/perlint-tools/perlint/analysis/config"
)

// CommonFlags represents the flags shared by the perlint sub-commands.
type CommonFlags struct {
	FlagSet    *flag.FlagSet
	ConfigPath string
	Verbose    bool
}

// NewCommonFlags parses the common flags of a sub-command. name is the
// sub-command name, args the arguments after it.
func NewCommonFlags(name string, args []string, usage string) (*CommonFlags, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := flags.String("config", "", "path to the rule-control configuration file")
	verbose := flags.Bool("verbose", false, "verbose output")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("could not parse flags: %w", err)
	}
	return &CommonFlags{FlagSet: flags, ConfigPath: *configPath, Verbose: *verbose}, nil
}

// LoadConfig loads the configuration named by the flags, or the default
// configuration when no -config flag was given.
func (f *CommonFlags) LoadConfig() (*config.Config, error) {
	if f.ConfigPath == "" {
		return config.NewDefault(), nil
	}
	b, err := os.ReadFile(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	return config.Load(f.ConfigPath, b)
}
