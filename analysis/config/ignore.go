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

import "golang.org/x/exp/slices"

// IgnoreRegistry is a frozen set of symbol names exempted from an analysis
// pass. The type checker consults it before emitting inference diagnostics
// for a symbol; there is no precedence logic, only membership.
type IgnoreRegistry struct {
	names map[string]struct{}
}

// NewIgnoreRegistry builds a registry from a list of names. Order and
// duplicates are irrelevant.
func NewIgnoreRegistry(names []string) *IgnoreRegistry {
	r := &IgnoreRegistry{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		r.names[n] = struct{}{}
	}
	return r
}

// Contains reports whether the symbol name is exempted.
func (r *IgnoreRegistry) Contains(symbolName string) bool {
	_, ok := r.names[symbolName]
	return ok
}

// Len returns the number of exempted names.
func (r *IgnoreRegistry) Len() int {
	return len(r.names)
}

// Names returns the exempted names, sorted.
func (r *IgnoreRegistry) Names() []string {
	names := make([]string, 0, len(r.names))
	for n := range r.names {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
