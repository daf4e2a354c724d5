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
	"regexp"
	"strconv"
	"strings"
)

// ValueKind is the declared type of an option's value.
type ValueKind int

const (
	// StringValue is a free-form string, trimmed
	StringValue ValueKind = iota
	// BoolValue accepts yes/no, true/false, on/off and 1/0, case-insensitive
	BoolValue
	// IntValue is a decimal integer
	IntValue
	// ListValue is a list of strings, comma- or newline-separated; trailing
	// separators are tolerated
	ListValue
	// RegexValue is a regular expression, compiled at load time
	RegexValue
	// PathValue is a filesystem path, kept relative to the config file
	PathValue
	// MapValue is a list of key:value pairs, comma- or newline-separated
	MapValue
)

func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "string"
	case BoolValue:
		return "boolean"
	case IntValue:
		return "integer"
	case ListValue:
		return "list"
	case RegexValue:
		return "regex"
	case PathValue:
		return "path"
	case MapValue:
		return "mapping"
	default:
		return "unknown"
	}
}

// OptionSpec declares one recognized (section, key) option: its value kind,
// its default, and how a coerced value is stored into a Config.
type OptionSpec struct {
	Section string
	Key     string
	Kind    ValueKind
	// Default holds the value assigned when the source does not mention the
	// option. Its dynamic type is the one Coerce produces for Kind.
	Default any

	assign func(*Config, any)
}

// Schema is the registry of every recognized section and option. It is
// populated once from a fixed table and never modified at runtime.
type Schema struct {
	order    []OptionSpec
	sections map[string]map[string]OptionSpec
}

func newSchema(specs []OptionSpec) *Schema {
	s := &Schema{order: specs, sections: map[string]map[string]OptionSpec{}}
	for _, spec := range specs {
		keys, ok := s.sections[spec.Section]
		if !ok {
			keys = map[string]OptionSpec{}
			s.sections[spec.Section] = keys
		}
		keys[spec.Key] = spec
	}
	return s
}

// Lookup resolves a (section, key) pair to its option declaration. It fails
// with an UnknownOptionError when either the section or the key is not
// recognized; the caller fills in the source line.
func (s *Schema) Lookup(section string, key string) (OptionSpec, error) {
	keys, ok := s.sections[section]
	if !ok {
		return OptionSpec{}, &UnknownOptionError{Section: section}
	}
	spec, ok := keys[key]
	if !ok {
		return OptionSpec{}, &UnknownOptionError{Section: section, Key: key}
	}
	return spec, nil
}

// Sections returns the declared section names in declaration order.
func (s *Schema) Sections() []string {
	var names []string
	seen := map[string]bool{}
	for _, spec := range s.order {
		if !seen[spec.Section] {
			seen[spec.Section] = true
			names = append(names, spec.Section)
		}
	}
	return names
}

// Coerce converts a raw textual value to the option's declared kind. It fails
// with an InvalidValueError carrying the reason; the caller fills in the
// section, key and line.
func (spec OptionSpec) Coerce(raw string) (any, error) {
	switch spec.Kind {
	case StringValue, PathValue:
		return strings.TrimSpace(raw), nil
	case BoolValue:
		b, ok := parseBoolToken(raw)
		if !ok {
			return nil, &InvalidValueError{Value: raw, Reason: "expected one of yes/no, true/false, on/off, 1/0"}
		}
		return b, nil
	case IntValue:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &InvalidValueError{Value: raw, Reason: "expected an integer"}
		}
		return n, nil
	case ListValue:
		return splitList(raw), nil
	case RegexValue:
		re, err := regexp.Compile(strings.TrimSpace(raw))
		if err != nil {
			return nil, &InvalidValueError{Value: raw, Reason: fmt.Sprintf("invalid regex: %v", err)}
		}
		return re, nil
	case MapValue:
		m := map[string]string{}
		for _, item := range splitList(raw) {
			k, v, ok := strings.Cut(item, ":")
			if !ok {
				return nil, &InvalidValueError{Value: raw, Reason: "mapping entries must be key:value"}
			}
			m[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		return m, nil
	default:
		return nil, &InvalidValueError{Value: raw, Reason: "unsupported value kind"}
	}
}

var boolTokens = map[string]bool{
	"yes": true, "true": true, "on": true, "1": true,
	"no": false, "false": false, "off": false, "0": false,
}

func parseBoolToken(raw string) (bool, bool) {
	b, ok := boolTokens[strings.ToLower(strings.TrimSpace(raw))]
	return b, ok
}

// splitList splits a raw list value on commas and newlines, trimming every
// item and dropping empty ones, so a trailing separator is harmless and a
// value spread over continuation lines is equal to its single-line form.
func splitList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' })
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// defaultSchema is the single source of truth for option validity, typing and
// defaults. To recognize a new option, add a row here and a field on the
// corresponding options struct.
var defaultSchema = newSchema([]OptionSpec{
	{Section: SectionMaster, Key: "ignore", Kind: ListValue, Default: []string{},
		assign: func(c *Config, v any) { c.Master.Ignore = v.([]string) }},
	{Section: SectionMaster, Key: "persistent", Kind: BoolValue, Default: true,
		assign: func(c *Config, v any) { c.Master.Persistent = v.(bool) }},
	{Section: SectionMaster, Key: "jobs", Kind: IntValue, Default: 1,
		assign: func(c *Config, v any) { c.Master.Jobs = v.(int) }},
	{Section: SectionMaster, Key: "unsafe-load-any-extension", Kind: BoolValue, Default: false,
		assign: func(c *Config, v any) { c.Master.UnsafeLoadAnyExtension = v.(bool) }},
	{Section: SectionMaster, Key: "log-level", Kind: IntValue, Default: int(InfoLevel),
		assign: func(c *Config, v any) { c.Master.LogLevel = v.(int) }},
	{Section: SectionMaster, Key: "silence-warn", Kind: BoolValue, Default: false,
		assign: func(c *Config, v any) { c.Master.SilenceWarn = v.(bool) }},

	{Section: SectionMessages, Key: "disable", Kind: ListValue, Default: []string{},
		assign: func(c *Config, v any) { c.Messages.Disable = v.([]string) }},
	{Section: SectionMessages, Key: "enable", Kind: ListValue, Default: []string{},
		assign: func(c *Config, v any) { c.Messages.Enable = v.([]string) }},

	{Section: SectionReports, Key: "output-format", Kind: StringValue, Default: "text",
		assign: func(c *Config, v any) { c.Reports.OutputFormat = v.(string) }},
	{Section: SectionReports, Key: "reports", Kind: BoolValue, Default: false,
		assign: func(c *Config, v any) { c.Reports.Reports = v.(bool) }},
	{Section: SectionReports, Key: "msg-template", Kind: StringValue, Default: DefaultMsgTemplate,
		assign: func(c *Config, v any) { c.Reports.MsgTemplate = v.(string) }},
	{Section: SectionReports, Key: "score", Kind: BoolValue, Default: true,
		assign: func(c *Config, v any) { c.Reports.Score = v.(bool) }},

	{Section: SectionTypecheck, Key: "ignored-classes", Kind: ListValue, Default: []string{},
		assign: func(c *Config, v any) { c.Typecheck.IgnoredClasses = v.([]string) }},
	{Section: SectionTypecheck, Key: "ignored-modules", Kind: ListValue, Default: []string{},
		assign: func(c *Config, v any) { c.Typecheck.IgnoredModules = v.([]string) }},
	{Section: SectionTypecheck, Key: "ignore-mixin-members", Kind: BoolValue, Default: true,
		assign: func(c *Config, v any) { c.Typecheck.IgnoreMixinMembers = v.(bool) }},

	{Section: SectionFormat, Key: "max-line-length", Kind: IntValue, Default: DefaultMaxLineLength,
		assign: func(c *Config, v any) { c.Format.MaxLineLength = v.(int) }},
	{Section: SectionFormat, Key: "ignore-long-lines", Kind: RegexValue, Default: regexp.MustCompile(DefaultIgnoreLongLines),
		assign: func(c *Config, v any) {
			re := v.(*regexp.Regexp)
			c.Format.IgnoreLongLines = re.String()
			c.ignoreLongLines = re
		}},
	{Section: SectionFormat, Key: "indent-string", Kind: StringValue, Default: DefaultIndentString,
		assign: func(c *Config, v any) { c.Format.IndentString = v.(string) }},
	{Section: SectionFormat, Key: "max-module-lines", Kind: IntValue, Default: DefaultMaxModuleLines,
		assign: func(c *Config, v any) { c.Format.MaxModuleLines = v.(int) }},
	{Section: SectionFormat, Key: "single-line-if-stmt", Kind: BoolValue, Default: false,
		assign: func(c *Config, v any) { c.Format.SingleLineIfStmt = v.(bool) }},

	{Section: SectionBasic, Key: "good-names", Kind: ListValue, Default: []string{"i", "j", "k", "ex", "_"},
		assign: func(c *Config, v any) { c.Basic.GoodNames = v.([]string) }},
	{Section: SectionBasic, Key: "bad-names", Kind: ListValue, Default: []string{"foo", "bar", "baz"},
		assign: func(c *Config, v any) { c.Basic.BadNames = v.([]string) }},
	{Section: SectionBasic, Key: "include-naming-hint", Kind: BoolValue, Default: false,
		assign: func(c *Config, v any) { c.Basic.IncludeNamingHint = v.(bool) }},
})

// DefaultSchema returns the registry of recognized options.
func DefaultSchema() *Schema {
	return defaultSchema
}
