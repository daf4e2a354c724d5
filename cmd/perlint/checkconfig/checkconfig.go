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

// Package checkconfig implements the frontend validating a configuration
// file.
package checkconfig

import (
	"flag"
	"fmt"
	"os"

	"github.com/perlint-tools/perlint/analysis/config"
	"github.com/perlint-tools/perlint/internal/formatutil"
)

// Usage for the check-config sub-command.
const Usage = `Validate a rule-control configuration file.

Usage:
  perlint check-config [-dump] -config config.rc
`

// Flags are the check-config sub-command flags.
type Flags struct {
	ConfigPath string
	Dump       bool
}

// NewFlags parses the check-config flags.
func NewFlags(args []string) (*Flags, error) {
	flags := flag.NewFlagSet("check-config", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to the rule-control configuration file")
	dump := flags.Bool("dump", false, "print the effective options as yaml")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", Usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("could not parse flags: %w", err)
	}
	if *configPath == "" {
		return nil, fmt.Errorf("check-config requires a -config file")
	}
	return &Flags{ConfigPath: *configPath, Dump: *dump}, nil
}

// Run loads the configuration, reports whether it is valid, and optionally
// dumps the effective options.
func Run(flags *Flags) error {
	b, err := os.ReadFile(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	cfg, err := config.Load(flags.ConfigPath, b)
	if err != nil {
		return err
	}
	active := len(cfg.Rules().ActiveIDs())
	total := cfg.Rules().Len()
	fmt.Fprintf(os.Stdout, "%s: %d of %d rules enabled, %d ignored classes, %d ignored modules\n",
		formatutil.Green("configuration OK"), active, total,
		cfg.IgnoredClasses().Len(), cfg.IgnoredModules().Len())
	if flags.Dump {
		if err := cfg.Dump(os.Stdout); err != nil {
			return fmt.Errorf("could not dump config: %w", err)
		}
	}
	return nil
}
