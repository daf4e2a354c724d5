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

/*
Package config implements the rule-control configuration engine of perlint.

Use [Load](filename, contents) to resolve a configuration source into an
immutable [Config]. The source is either the sectioned rc format:

	[MESSAGES CONTROL]
	disable=
	  unused-variable,
	  too-many-branches
	enable=too-many-branches

	[TYPECHECK]
	ignored-classes=Buffer,Client

or a yaml document with the same sections and keys (selected by a .yaml/.yml
filename extension).

Loading validates every key against the fixed [Schema], coerces values to
their declared kinds, and compiles three queryable objects:

  - the [RuleSet]: for every diagnostic identifier, whether it is active.
    The disable list is applied first, then the enable list, so enable always
    wins for a rule named in both. Entries may name rule identifiers, message
    codes (such as W0612), group aliases (categories like "warning" or
    umbrella aliases like "strict"), or "all".
  - the [IgnoreRegistry] instances for ignored-classes and ignored-modules,
    consulted by the type-checking pass.
  - the [Renderer] for the msg-template option, used by the reporter.

Every load error is fatal and carries the section, key and line of the
offending text; no partial configuration is ever produced. The resolved
Config is never mutated after Load returns and is safe to share across
analysis workers.
*/
package config
