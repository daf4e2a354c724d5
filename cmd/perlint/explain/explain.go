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

// Package explain implements the frontend describing rules and group
// aliases.
package explain

import (
	"fmt"
	"os"
	"strings"

	"github.com/perlint-tools/perlint/cmd/perlint/tools"
	"github.com/perlint-tools/perlint/internal/formatutil"
	"github.com/perlint-tools/perlint/internal/funcutil"
)

// Usage for the explain sub-command.
const Usage = `Describe rules or group aliases and their resolved state.

Usage:
  perlint explain [-config config.rc] <rule-or-group> ...
`

// Run describes every identifier given on the command line.
func Run(flags *tools.CommonFlags) error {
	names := flags.FlagSet.Args()
	if len(names) == 0 {
		return fmt.Errorf("explain requires at least one rule or group name")
	}
	cfg, err := flags.LoadConfig()
	if err != nil {
		return err
	}
	cat := cfg.Catalog()
	for _, name := range names {
		if rule, ok := cat.Rule(name); ok {
			state := formatutil.Faint("disabled")
			if cfg.IsActive(rule.ID) {
				state = formatutil.Green("enabled")
			}
			fmt.Fprintf(os.Stdout, "%s (%s), category %s, %s\n  %s\n",
				rule.ID, rule.Code, rule.Category, state, rule.Doc)
			continue
		}
		if ids, ok := cat.Resolve(name); ok {
			enabled := funcutil.Map(ids, cfg.IsActive)
			n := 0
			funcutil.Iter(enabled, func(on bool) {
				if on {
					n++
				}
			})
			fmt.Fprintf(os.Stdout, "%s is a group alias for: %s (%d of %d enabled)\n",
				name, strings.Join(ids, ", "), n, len(ids))
			continue
		}
		return fmt.Errorf("unknown rule or group %q", name)
	}
	return nil
}
