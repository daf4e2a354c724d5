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

package config

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RuleSet is the compiled activation state of every rule in the catalog.
// It is frozen after ResolveRuleSet returns and safe for concurrent readers.
type RuleSet struct {
	active map[string]bool
}

// ResolveRuleSet compiles the effective rule set from the catalog defaults
// and the two toggle lists. The disable list is applied first in declaration
// order, the enable list strictly after it, so enabling a rule always wins
// over disabling it no matter where the two entries appear in the file.
// Entries may name a rule identifier, a message code, a group alias or the
// "all" wildcard; anything else fails with an UnknownRuleError.
func ResolveRuleSet(cat *Catalog, disable []string, enable []string) (*RuleSet, error) {
	active := make(map[string]bool, len(cat.Rules()))
	for _, r := range cat.Rules() {
		active[r.ID] = !r.OptIn
	}
	if err := applyToggles(cat, active, disable, "disable", false); err != nil {
		return nil, err
	}
	if err := applyToggles(cat, active, enable, "enable", true); err != nil {
		return nil, err
	}
	return &RuleSet{active: active}, nil
}

func applyToggles(cat *Catalog, active map[string]bool, names []string, list string, state bool) error {
	for _, name := range names {
		ids, ok := cat.Resolve(name)
		if !ok {
			return &UnknownRuleError{Name: name, List: list}
		}
		for _, id := range ids {
			active[id] = state
		}
	}
	return nil
}

// IsActive reports whether diagnostics for the given rule identifier should
// be emitted. It is total: identifiers outside the catalog report false.
func (r *RuleSet) IsActive(id string) bool {
	return r.active[id]
}

// ActiveIDs returns the sorted identifiers of all active rules.
func (r *RuleSet) ActiveIDs() []string {
	var ids []string
	for id, on := range r.active {
		if on {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of rules the set has a state for.
func (r *RuleSet) Len() int {
	return len(r.active)
}

// Equal reports whether two rule sets assign the same state to every rule.
func (r *RuleSet) Equal(other *RuleSet) bool {
	return maps.Equal(r.active, other.active)
}
