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

// Package rules implements the frontend printing the effective rule set of a
// configuration.
package rules

import (
	"fmt"
	"os"

	"github.com/perlint-tools/perlint/cmd/perlint/tools"
	"github.com/perlint-tools/perlint/internal/formatutil"
)

// Usage for the rules sub-command.
const Usage = `Print the effective rule set resolved from a configuration.

Usage:
  perlint rules [-config config.rc]
`

// Run prints every catalog rule with its resolved activation state.
func Run(flags *tools.CommonFlags) error {
	cfg, err := flags.LoadConfig()
	if err != nil {
		return err
	}
	active := 0
	for _, rule := range cfg.Catalog().Rules() {
		state := formatutil.Faint("disabled")
		if cfg.IsActive(rule.ID) {
			state = formatutil.Green("enabled")
			active++
		}
		fmt.Fprintf(os.Stdout, "%s %-34s %-12s %s\n", rule.Code, rule.ID, rule.Category, state)
		if flags.Verbose {
			fmt.Fprintf(os.Stdout, "      %s\n", formatutil.Faint(rule.Doc))
		}
	}
	total := len(cfg.Catalog().Rules())
	fmt.Fprintf(os.Stdout, "\n%d of %d rules enabled\n", active, total)
	return nil
}
