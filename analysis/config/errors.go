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

import "fmt"

// atLine prefixes msg with the line number when one is known. Errors coming
// from the yaml front end carry no line information.
func atLine(line int, msg string) string {
	if line > 0 {
		return fmt.Sprintf("line %d: %s", line, msg)
	}
	return msg
}

// UnknownOptionError is returned when a key read from a configuration source
// does not resolve to any option declared in the schema. A Key equal to ""
// means the section itself is not recognized.
type UnknownOptionError struct {
	Section string
	Key     string
	Line    int
}

func (e *UnknownOptionError) Error() string {
	if e.Key == "" {
		return atLine(e.Line, fmt.Sprintf("unknown section [%s]", e.Section))
	}
	return atLine(e.Line, fmt.Sprintf("unknown option %q in section [%s]", e.Key, e.Section))
}

// InvalidValueError is returned when a raw value cannot be coerced to the type
// the schema declares for its option.
type InvalidValueError struct {
	Section string
	Key     string
	Value   string
	Reason  string
	Line    int
}

func (e *InvalidValueError) Error() string {
	return atLine(e.Line, fmt.Sprintf("invalid value %q for option %q in section [%s]: %s",
		e.Value, e.Key, e.Section, e.Reason))
}

// MalformedSectionError is returned when a line that opens a section header
// cannot be parsed as one.
type MalformedSectionError struct {
	Text string
	Line int
}

func (e *MalformedSectionError) Error() string {
	return atLine(e.Line, fmt.Sprintf("malformed section header %q", e.Text))
}

// OrphanKeyError is returned when a key/value entry appears before any section
// header.
type OrphanKeyError struct {
	Key  string
	Line int
}

func (e *OrphanKeyError) Error() string {
	return atLine(e.Line, fmt.Sprintf("option %q appears outside of any section", e.Key))
}

// UnknownRuleError is returned when an enable or disable list names an
// identifier that is neither a rule, a rule code, a group alias, nor the "all"
// wildcard.
type UnknownRuleError struct {
	Name string
	// List is the name of the toggle list the identifier appeared in,
	// "disable" or "enable".
	List string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q in the %q list of section [%s]", e.Name, e.List, SectionMessages)
}

// UnknownPlaceholderError is returned when a message template declares a
// placeholder outside the recognized field set.
type UnknownPlaceholderError struct {
	Name     string
	Template string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown placeholder %q in message template %q", e.Name, e.Template)
}

// MissingFieldError is returned at render time when the supplied fields omit a
// placeholder the template declared.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q for message template", e.Field)
}
