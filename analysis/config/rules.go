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
	"fmt"

	"github.com/yourbasic/graph"
)

// Rule categories. A category name is also a group alias covering every rule
// in that category.
const (
	CategoryConvention = "convention"
	CategoryRefactor   = "refactor"
	CategoryWarning    = "warning"
	CategoryError      = "error"
	CategoryTypecheck  = "typecheck"
	CategoryFormat     = "format"
)

// Rule describes one diagnostic category of the analyzer: a stable symbolic
// identifier, a short message code, the category it belongs to, and whether
// the check is opt-in (inactive unless enabled explicitly).
type Rule struct {
	ID       string
	Code     string
	Category string
	OptIn    bool
	Doc      string
}

// Group is a symbolic alias expanding to a set of rule identifiers. Members
// may name rules or other groups; the expansion is resolved once when the
// catalog is built.
type Group struct {
	Name    string
	Members []string
}

// Catalog is the fixed table of every rule and group alias the analyzer
// knows. It is built once and never mutated.
type Catalog struct {
	order  []Rule
	rules  map[string]Rule
	byCode map[string]string
	groups map[string][]string
}

// NewCatalog builds a catalog from a rule table and group aliases. Group
// members naming other groups are flattened to rule identifiers; a membership
// cycle or an unknown member is an error.
func NewCatalog(rules []Rule, groups []Group) (*Catalog, error) {
	c := &Catalog{
		order:  rules,
		rules:  make(map[string]Rule, len(rules)),
		byCode: make(map[string]string, len(rules)),
		groups: make(map[string][]string, len(groups)),
	}
	for _, r := range rules {
		if _, dup := c.rules[r.ID]; dup {
			return nil, fmt.Errorf("duplicate rule %q in catalog", r.ID)
		}
		c.rules[r.ID] = r
		c.byCode[r.Code] = r.ID
	}

	// Category names act as implicit groups.
	categories := map[string][]string{}
	for _, r := range rules {
		categories[r.Category] = append(categories[r.Category], r.ID)
	}
	for name, members := range categories {
		c.groups[name] = members
	}

	if err := c.flattenGroups(groups); err != nil {
		return nil, err
	}
	return c, nil
}

// flattenGroups resolves group-to-group membership in one pass. The member
// relation between explicit groups must be acyclic; topological order is
// computed with the graph package so every member group is flattened before
// the groups that include it.
func (c *Catalog) flattenGroups(groups []Group) error {
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		if _, dup := index[g.Name]; dup {
			return fmt.Errorf("duplicate group alias %q in catalog", g.Name)
		}
		if _, isCategory := c.groups[g.Name]; isCategory {
			return fmt.Errorf("group alias %q collides with a category name", g.Name)
		}
		index[g.Name] = i
	}

	g := graph.New(len(groups))
	for i, grp := range groups {
		for _, m := range grp.Members {
			if j, ok := index[m]; ok {
				g.Add(i, j)
			}
		}
	}
	order, ok := graph.TopSort(g)
	if !ok {
		for _, comp := range graph.StrongComponents(g) {
			if len(comp) >= 2 {
				return fmt.Errorf("cyclic group alias %q in catalog", groups[comp[0]].Name)
			}
		}
		return fmt.Errorf("cyclic group alias in catalog")
	}

	// TopSort orders a group before its members; walk it backwards.
	for i := len(order) - 1; i >= 0; i-- {
		grp := groups[order[i]]
		var flat []string
		seen := map[string]bool{}
		add := func(id string) {
			if !seen[id] {
				seen[id] = true
				flat = append(flat, id)
			}
		}
		for _, m := range grp.Members {
			switch {
			case c.IsRule(m):
				add(m)
			case c.groups[m] != nil:
				for _, id := range c.groups[m] {
					add(id)
				}
			default:
				return fmt.Errorf("group alias %q has unknown member %q", grp.Name, m)
			}
		}
		c.groups[grp.Name] = flat
	}
	return nil
}

// Rule returns the catalog entry for a rule identifier or message code.
func (c *Catalog) Rule(name string) (Rule, bool) {
	if r, ok := c.rules[name]; ok {
		return r, true
	}
	if id, ok := c.byCode[name]; ok {
		return c.rules[id], true
	}
	return Rule{}, false
}

// Rules returns every rule in catalog declaration order.
func (c *Catalog) Rules() []Rule {
	return c.order
}

// IsRule reports whether name is a rule identifier (not a code or group).
func (c *Catalog) IsRule(name string) bool {
	_, ok := c.rules[name]
	return ok
}

// Resolve expands a toggle-list entry to the flat set of rule identifiers it
// stands for: the rule itself for an identifier or message code, the
// flattened members for a group alias, every rule for the "all" wildcard.
func (c *Catalog) Resolve(name string) ([]string, bool) {
	if name == RuleWildcard {
		return c.AllIDs(), true
	}
	if r, ok := c.Rule(name); ok {
		return []string{r.ID}, true
	}
	if members, ok := c.groups[name]; ok {
		return members, true
	}
	return nil, false
}

// AllIDs returns every rule identifier in catalog declaration order.
func (c *Catalog) AllIDs() []string {
	ids := make([]string, len(c.order))
	for i, r := range c.order {
		ids[i] = r.ID
	}
	return ids
}

// defaultRules is the analyzer's diagnostic table.
var defaultRules = []Rule{
	// convention
	{ID: "missing-docstring", Code: "C0111", Category: CategoryConvention, Doc: "module, class or function without a docstring"},
	{ID: "invalid-name", Code: "C0103", Category: CategoryConvention, Doc: "name does not match the naming convention for its kind"},
	{ID: "superfluous-parens", Code: "C0325", Category: CategoryConvention, Doc: "unnecessary parentheses after a keyword"},
	{ID: "bad-whitespace", Code: "C0326", Category: CategoryConvention, Doc: "wrong number of spaces around an operator or bracket"},
	{ID: "misplaced-comparison-constant", Code: "C0122", Category: CategoryConvention, Doc: "constant on the left side of a comparison"},
	{ID: "compare-to-empty-string", Code: "C1901", Category: CategoryConvention, OptIn: true, Doc: "comparison to an empty string instead of a truth check"},
	// refactor
	{ID: "too-many-branches", Code: "R0912", Category: CategoryRefactor, Doc: "function has too many branches"},
	{ID: "too-many-arguments", Code: "R0913", Category: CategoryRefactor, Doc: "function has too many arguments"},
	{ID: "too-many-locals", Code: "R0914", Category: CategoryRefactor, Doc: "function has too many local variables"},
	{ID: "too-many-statements", Code: "R0915", Category: CategoryRefactor, Doc: "function body has too many statements"},
	{ID: "too-few-public-methods", Code: "R0903", Category: CategoryRefactor, Doc: "class has too few public methods"},
	{ID: "cyclic-import", Code: "R0401", Category: CategoryRefactor, Doc: "modules import each other in a cycle"},
	{ID: "duplicate-code", Code: "R0801", Category: CategoryRefactor, OptIn: true, Doc: "identical blocks found in several modules; expensive check"},
	// warning
	{ID: "unused-variable", Code: "W0612", Category: CategoryWarning, Doc: "local variable assigned but never used"},
	{ID: "unused-import", Code: "W0611", Category: CategoryWarning, Doc: "imported name never used"},
	{ID: "unused-argument", Code: "W0613", Category: CategoryWarning, Doc: "function argument never used"},
	{ID: "broad-except", Code: "W0703", Category: CategoryWarning, Doc: "catching a too-general exception"},
	{ID: "fixme", Code: "W0511", Category: CategoryWarning, Doc: "FIXME or TODO note left in the code"},
	{ID: "redefined-builtin", Code: "W0622", Category: CategoryWarning, Doc: "name shadows a builtin"},
	{ID: "redefined-outer-name", Code: "W0621", Category: CategoryWarning, Doc: "name shadows a name from an outer scope"},
	{ID: "cell-var-from-loop", Code: "W0640", Category: CategoryWarning, Doc: "closure captures a loop variable"},
	{ID: "protected-access", Code: "W0212", Category: CategoryWarning, Doc: "access to a protected member from outside its class"},
	{ID: "attribute-defined-outside-init", Code: "W0201", Category: CategoryWarning, Doc: "attribute set outside the initializer"},
	{ID: "undefined-loop-variable", Code: "W0631", Category: CategoryWarning, Doc: "loop variable used after the loop may be undefined"},
	// error
	{ID: "undefined-variable", Code: "E0602", Category: CategoryError, Doc: "name is not defined in any reachable scope"},
	{ID: "no-name-in-module", Code: "E0611", Category: CategoryError, Doc: "imported name does not exist in the module"},
	{ID: "import-error", Code: "E0401", Category: CategoryError, Doc: "module could not be imported"},
	{ID: "raising-bad-type", Code: "E0702", Category: CategoryError, Doc: "raising something that is not an exception"},
	// typecheck
	{ID: "no-member", Code: "E1101", Category: CategoryTypecheck, Doc: "accessed member does not exist on the inferred type"},
	{ID: "not-callable", Code: "E1102", Category: CategoryTypecheck, Doc: "calling a value inferred as not callable"},
	// format
	{ID: "line-too-long", Code: "C0301", Category: CategoryFormat, Doc: "line exceeds max-line-length"},
	{ID: "too-many-lines", Code: "C0302", Category: CategoryFormat, Doc: "module exceeds max-module-lines"},
	{ID: "trailing-whitespace", Code: "C0303", Category: CategoryFormat, Doc: "line ends with whitespace"},
	{ID: "missing-final-newline", Code: "C0304", Category: CategoryFormat, Doc: "file does not end with a newline"},
	{ID: "mixed-indentation", Code: "W0312", Category: CategoryFormat, Doc: "tabs and spaces mixed in indentation"},
}

// defaultGroups are the umbrella aliases on top of the category groups.
var defaultGroups = []Group{
	{Name: "style", Members: []string{CategoryConvention, CategoryFormat}},
	{Name: "correctness", Members: []string{CategoryError, CategoryTypecheck}},
	{Name: "unused", Members: []string{"unused-variable", "unused-import", "unused-argument"}},
	{Name: "strict", Members: []string{"correctness", "unused", "broad-except"}},
}

var defaultCatalog = func() *Catalog {
	c, err := NewCatalog(defaultRules, defaultGroups)
	if err != nil {
		// the tables above are fixed at compile time
		panic(err)
	}
	return c
}()

// DefaultCatalog returns the analyzer's rule catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
